// Package client implements the terminal client: session state, the HTTP
// API client, and report rendering for fetched expenses.
package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Session caches the current identity token between runs. An empty token
// means logged out; the cache is only ever cleared by an explicit logout.
type Session struct {
	// Token is the bearer token presented on every expense request.
	Token string `json:"token"`
	// Username is kept for display only; the server derives identity
	// from the token alone.
	Username string `json:"username,omitempty"`

	path string
}

// NewSession returns a Session persisted at path. If path is empty, the
// default location under the user's config directory is used.
func NewSession(path string) (*Session, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("locate config dir: %w", err)
		}
		path = filepath.Join(dir, "expense-tracker", "session.json")
	}
	return &Session{path: path}, nil
}

// Load reads the cached session from disk. A missing file is not an
// error; it simply leaves the session logged out.
func (s *Session) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, s)
}

// Save writes the session to disk, creating parent directories as needed.
func (s *Session) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear forgets the cached token and removes the file on disk.
func (s *Session) Clear() error {
	s.Token = ""
	s.Username = ""
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// LoggedIn reports whether a token is cached. The token may still be
// expired; that surfaces as a 401 on the next request.
func (s *Session) LoggedIn() bool {
	return s.Token != ""
}
