// Package http provides HTTP handlers for owner-scoped expense CRUD.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ankur-Sh/Expense-Tracker-Chart/internal/middleware"
	"github.com/Ankur-Sh/Expense-Tracker-Chart/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ExpenseService defines the interface for expense operations required
// by the ExpenseHandler. Every method takes the owner id resolved by the
// auth middleware.
type ExpenseService interface {
	// List returns all expenses owned by userID.
	List(ctx context.Context, userID string) ([]models.Expense, error)
	// Create persists a new expense owned by userID.
	Create(ctx context.Context, userID, description string, amount float64) (*models.Expense, error)
	// Update mutates an owned expense's description and amount.
	Update(ctx context.Context, userID, id, description string, amount float64) (*models.Expense, error)
	// Delete removes an owned expense.
	Delete(ctx context.Context, userID, id string) error
}

// ExpenseHandler handles HTTP requests for expense CRUD.
type ExpenseHandler struct {
	// ExpenseService performs the underlying expense operations.
	ExpenseService ExpenseService
	// Logger records unexpected failures; the response body stays generic.
	Logger *zap.Logger
}

// expenseRequest represents the JSON payload for creating or updating an expense.
type expenseRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// List handles GET /api/expenses.
// It responds with the full list of the authenticated user's expenses.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserIDFromContext(ctx)

	expenses, err := h.ExpenseService.List(ctx, userID)
	if err != nil {
		h.Logger.Error("list expenses failed", zap.Error(err))
		http.Error(w, "error fetching expenses", http.StatusBadRequest)
		return
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(expenses)
}

// Create handles POST /api/expenses.
// It expects a JSON body with "description" and "amount" and responds 201
// with the stored record, including its server-assigned id and date.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserIDFromContext(ctx)

	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	expense, err := h.ExpenseService.Create(ctx, userID, req.Description, req.Amount)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			http.Error(w, "description and amount are required", http.StatusBadRequest)
			return
		}
		h.Logger.Error("create expense failed", zap.Error(err))
		http.Error(w, "error adding expense", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(expense)
}

// Update handles PUT /api/expenses/{id}.
// It mutates description and amount of an owned expense and responds 200
// with the updated record. A record that does not exist and a record owned
// by someone else both respond 404.
func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserIDFromContext(ctx)
	id := chi.URLParam(r, "id")

	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	expense, err := h.ExpenseService.Update(ctx, userID, id, req.Description, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrValidation):
			http.Error(w, "description and amount are required", http.StatusBadRequest)
		case errors.Is(err, models.ErrNotFound):
			http.Error(w, "expense not found", http.StatusNotFound)
		default:
			h.Logger.Error("update expense failed", zap.Error(err))
			http.Error(w, "error updating expense", http.StatusBadRequest)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(expense)
}

// Delete handles DELETE /api/expenses/{id}.
// Ownership semantics match Update: absent and not-owned are the same 404.
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserIDFromContext(ctx)
	id := chi.URLParam(r, "id")

	if err := h.ExpenseService.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}
		h.Logger.Error("delete expense failed", zap.Error(err))
		http.Error(w, "error deleting expense", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Expense deleted"})
}
