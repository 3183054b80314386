// Package service provides registration and login business logic,
// delegating persistence to a UserRepository.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ankur-Sh/Expense-Tracker-Chart/internal/models"
	"github.com/Ankur-Sh/Expense-Tracker-Chart/internal/password"
	"github.com/google/uuid"
)

// UserRepository defines the persistence operations
// required by the authentication service.
type UserRepository interface {
	// CreateUser creates a new user record. Returns
	// models.ErrDuplicateUsername if the username is taken.
	CreateUser(ctx context.Context, user models.User) error
	// UserByUsername looks up a user by username. Returns
	// models.ErrNotFound if no such user exists.
	UserByUsername(ctx context.Context, username string) (*models.User, error)
}

// TokenIssuer mints identity tokens for authenticated users.
type TokenIssuer interface {
	// Issue returns a signed token carrying the given user id.
	Issue(userID string) (string, error)
}

// AuthService implements registration and login on top of a UserRepository
// and a TokenIssuer.
type AuthService struct {
	// repo performs the data-layer operations.
	repo UserRepository
	// tokens issues identity tokens on successful authentication.
	tokens TokenIssuer
}

// NewAuthService constructs a new AuthService using the provided repository
// and token issuer.
func NewAuthService(repo UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates a user with a hashed password and immediately issues a
// token, so registration doubles as login. The plaintext password is hashed
// exactly here and nowhere else; no other write path touches the password
// field, so an already-hashed value is never re-hashed.
// Returns models.ErrValidation for empty fields and
// models.ErrDuplicateUsername for a taken username.
func (s *AuthService) Register(ctx context.Context, username, pass string) (string, error) {
	if username == "" || pass == "" {
		return "", models.ErrValidation
	}

	hash, err := password.Hash(pass)
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// Login authenticates the given credentials and returns a fresh token.
// An unknown username and a wrong password both return
// models.ErrInvalidCredentials, so the response never reveals whether
// the username exists.
func (s *AuthService) Login(ctx context.Context, username, pass string) (string, error) {
	user, err := s.repo.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", models.ErrInvalidCredentials
		}
		return "", err
	}

	if !password.Verify(pass, user.PasswordHash) {
		return "", models.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
