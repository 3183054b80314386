package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Ankur-Sh/Expense-Tracker-Chart/internal/models"
)

type mockExpenseRepo struct {
	ExpensesByOwnerFunc func(ctx context.Context, userID string) ([]models.Expense, error)
	CreateExpenseFunc   func(ctx context.Context, expense models.Expense) error
	UpdateExpenseFunc   func(ctx context.Context, userID, id, description string, amount float64) (*models.Expense, error)
	DeleteExpenseFunc   func(ctx context.Context, userID, id string) error
}

func (m *mockExpenseRepo) ExpensesByOwner(ctx context.Context, userID string) ([]models.Expense, error) {
	return m.ExpensesByOwnerFunc(ctx, userID)
}
func (m *mockExpenseRepo) CreateExpense(ctx context.Context, expense models.Expense) error {
	return m.CreateExpenseFunc(ctx, expense)
}
func (m *mockExpenseRepo) UpdateExpense(ctx context.Context, userID, id, description string, amount float64) (*models.Expense, error) {
	return m.UpdateExpenseFunc(ctx, userID, id, description, amount)
}
func (m *mockExpenseRepo) DeleteExpense(ctx context.Context, userID, id string) error {
	return m.DeleteExpenseFunc(ctx, userID, id)
}

func TestCreate_Success(t *testing.T) {
	var stored models.Expense
	repo := &mockExpenseRepo{
		CreateExpenseFunc: func(ctx context.Context, expense models.Expense) error {
			stored = expense
			return nil
		},
	}
	svc := NewExpenseService(repo)

	expense, err := svc.Create(context.Background(), "u1", "Coffee", 4.5)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if expense.ID == "" {
		t.Error("expense has no server-assigned id")
	}
	if expense.Date.IsZero() {
		t.Error("expense has no server-assigned date")
	}
	if expense.UserID != "u1" {
		t.Errorf("expense owner = %q; want %q", expense.UserID, "u1")
	}
	if stored.ID != expense.ID {
		t.Errorf("stored id = %q; want %q", stored.ID, expense.ID)
	}
	if stored.Description != "Coffee" || stored.Amount != 4.5 {
		t.Errorf("stored expense = %+v; want Coffee/4.5", stored)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := NewExpenseService(&mockExpenseRepo{})

	tests := []struct {
		name        string
		description string
		amount      float64
	}{
		{"missing description", "", 4.5},
		{"missing amount", "Coffee", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "u1", tt.description, tt.amount)
			if !errors.Is(err, models.ErrValidation) {
				t.Errorf("Create error = %v; want ErrValidation", err)
			}
		})
	}
}

func TestUpdate_PassesOwnerScope(t *testing.T) {
	repo := &mockExpenseRepo{
		UpdateExpenseFunc: func(ctx context.Context, userID, id, description string, amount float64) (*models.Expense, error) {
			if userID != "u1" || id != "e1" {
				t.Errorf("UpdateExpense scoped to (%q, %q); want (u1, e1)", userID, id)
			}
			return &models.Expense{ID: id, UserID: userID, Description: description, Amount: amount}, nil
		},
	}
	svc := NewExpenseService(repo)

	expense, err := svc.Update(context.Background(), "u1", "e1", "Book", 10)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if expense.Description != "Book" || expense.Amount != 10 {
		t.Errorf("Update returned %+v; want Book/10", expense)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &mockExpenseRepo{
		UpdateExpenseFunc: func(ctx context.Context, userID, id, description string, amount float64) (*models.Expense, error) {
			return nil, models.ErrNotFound
		},
	}
	svc := NewExpenseService(repo)

	_, err := svc.Update(context.Background(), "u1", "missing", "Book", 10)
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Update error = %v; want ErrNotFound", err)
	}
}

func TestUpdate_Validation(t *testing.T) {
	svc := NewExpenseService(&mockExpenseRepo{})

	_, err := svc.Update(context.Background(), "u1", "e1", "", 10)
	if !errors.Is(err, models.ErrValidation) {
		t.Errorf("Update error = %v; want ErrValidation", err)
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{"success", nil, nil},
		{"not found", models.ErrNotFound, models.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockExpenseRepo{
				DeleteExpenseFunc: func(ctx context.Context, userID, id string) error {
					return tt.repoErr
				},
			}
			svc := NewExpenseService(repo)

			err := svc.Delete(context.Background(), "u1", "e1")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Delete error = %v; want %v", err, tt.wantErr)
			}
		})
	}
}

func TestList(t *testing.T) {
	want := []models.Expense{{ID: "e1", UserID: "u1", Description: "Coffee", Amount: 4.5}}
	repo := &mockExpenseRepo{
		ExpensesByOwnerFunc: func(ctx context.Context, userID string) ([]models.Expense, error) {
			if userID != "u1" {
				t.Errorf("ExpensesByOwner received %q; want %q", userID, "u1")
			}
			return want, nil
		},
	}
	svc := NewExpenseService(repo)

	got, err := svc.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "e1" {
		t.Errorf("List = %+v; want %+v", got, want)
	}
}
