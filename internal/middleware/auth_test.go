package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// dummyHandler is a placeholder that records if it was called and the context it received.
type dummyHandler struct {
	called bool
	ctx    context.Context
}

func (d *dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.called = true
	d.ctx = r.Context()
	w.WriteHeader(http.StatusOK)
}

// fakeVerifier implements TokenVerifier for testing.
type fakeVerifier struct {
	userID string
	err    error
}

func (f *fakeVerifier) Verify(token string) (string, error) {
	return f.userID, f.err
}

func TestAuth_ValidToken(t *testing.T) {
	dummy := &dummyHandler{}
	h := Auth(&fakeVerifier{userID: "u1"})(dummy)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/expenses", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	h.ServeHTTP(rec, req)

	if !dummy.called {
		t.Fatal("expected next handler to be called for a valid token")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 OK, got %d", rec.Code)
	}
	if got := GetUserIDFromContext(dummy.ctx); got != "u1" {
		t.Errorf("context user id = %q; want %q", got, "u1")
	}
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		verifier *fakeVerifier
	}{
		{"missing header", "", &fakeVerifier{userID: "u1"}},
		{"not bearer", "Basic abc123", &fakeVerifier{userID: "u1"}},
		{"bare token", "some-token", &fakeVerifier{userID: "u1"}},
		{"verify fails", "Bearer bad-token", &fakeVerifier{err: errors.New("invalid token")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dummy := &dummyHandler{}
			h := Auth(tt.verifier)(dummy)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/api/expenses", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			h.ServeHTTP(rec, req)

			if dummy.called {
				t.Error("did not expect next handler to be called")
			}
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	if got := GetUserIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty user id, got %q", got)
	}
}
