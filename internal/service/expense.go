// Package service provides business-logic services for authentication and
// expense management, delegating persistence to repository interfaces.
package service

import (
	"context"
	"time"

	"github.com/Ankur-Sh/Expense-Tracker-Chart/internal/models"
	"github.com/google/uuid"
)

// ExpenseRepository defines the persistence operations needed by the ExpenseService.
// Implementations must scope every lookup and mutation by the owning user id.
type ExpenseRepository interface {
	// ExpensesByOwner retrieves all expenses belonging to the specified user.
	ExpensesByOwner(ctx context.Context, userID string) ([]models.Expense, error)
	// CreateExpense persists a new expense record.
	CreateExpense(ctx context.Context, expense models.Expense) error
	// UpdateExpense mutates description and amount of an owned expense.
	// Returns models.ErrNotFound if no record matches both id and owner.
	UpdateExpense(ctx context.Context, userID, id, description string, amount float64) (*models.Expense, error)
	// DeleteExpense removes an owned expense. Returns models.ErrNotFound
	// if no record matches both id and owner.
	DeleteExpense(ctx context.Context, userID, id string) error
}

// ExpenseService implements expense CRUD for a single authenticated owner.
// It trusts the user id resolved by the auth middleware and never re-verifies
// the token itself.
type ExpenseService struct {
	// repo is the underlying persistence repository.
	repo ExpenseRepository
}

// NewExpenseService constructs an ExpenseService with the provided ExpenseRepository.
func NewExpenseService(repo ExpenseRepository) *ExpenseService {
	return &ExpenseService{repo: repo}
}

// List returns all expenses owned by userID.
func (s *ExpenseService) List(ctx context.Context, userID string) ([]models.Expense, error) {
	return s.repo.ExpensesByOwner(ctx, userID)
}

// Create persists a new expense owned by userID, assigning a fresh id and
// the current time. Returns models.ErrValidation if the description is empty
// or the amount is zero.
func (s *ExpenseService) Create(ctx context.Context, userID, description string, amount float64) (*models.Expense, error) {
	if description == "" || amount == 0 {
		return nil, models.ErrValidation
	}

	expense := models.Expense{
		ID:          uuid.NewString(),
		UserID:      userID,
		Description: description,
		Amount:      amount,
		Date:        time.Now(),
	}
	if err := s.repo.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

// Update mutates the description and amount of an expense owned by userID.
// Returns models.ErrValidation for missing fields and models.ErrNotFound
// when the record does not exist or belongs to another user.
func (s *ExpenseService) Update(ctx context.Context, userID, id, description string, amount float64) (*models.Expense, error) {
	if description == "" || amount == 0 {
		return nil, models.ErrValidation
	}
	return s.repo.UpdateExpense(ctx, userID, id, description, amount)
}

// Delete removes an expense owned by userID. Returns models.ErrNotFound
// when the record does not exist or belongs to another user.
func (s *ExpenseService) Delete(ctx context.Context, userID, id string) error {
	return s.repo.DeleteExpense(ctx, userID, id)
}
