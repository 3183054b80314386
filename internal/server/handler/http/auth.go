// Package http provides HTTP handlers for user registration and login.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ankur-Sh/Expense-Tracker-Chart/internal/models"
	"go.uber.org/zap"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Register creates a user and returns a fresh identity token.
	Register(ctx context.Context, username, password string) (string, error)
	// Login authenticates credentials and returns a fresh identity token.
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthHandler handles HTTP requests for user registration and login.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
	// Logger records unexpected failures; the response body stays generic.
	Logger *zap.Logger
}

// credentialsRequest represents the JSON payload for registration and login.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// tokenResponse carries the issued token back to the client.
type tokenResponse struct {
	Token string `json:"token"`
}

// Register handles POST /api/users/register.
// It expects a JSON body with "username" and "password", creates the user,
// and responds 201 with a token (auto-login). A taken username and a
// malformed body both produce 400.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	token, err := h.AuthService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateUsername) {
			http.Error(w, "username already taken", http.StatusBadRequest)
			return
		}
		h.Logger.Error("register failed", zap.Error(err))
		http.Error(w, "registration failed", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(tokenResponse{Token: token})
}

// Login handles POST /api/users/login.
// On success it responds 200 with a token. Unknown usernames and wrong
// passwords share one response body, so the endpoint cannot be used to
// probe which usernames exist.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			writeJSONError(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		h.Logger.Error("login failed", zap.Error(err))
		writeJSONError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tokenResponse{Token: token})
}

// writeJSONError writes a JSON body of the form {"msg": "..."} with the
// given status code.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"msg": msg})
}
