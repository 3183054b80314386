// Package repository provides persistence implementations for expense storage
// using a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Ankur-Sh/Expense-Tracker-Chart/internal/models"
)

// PostgresExpenseRepository implements expense storage against a PostgreSQL database.
// Every query is scoped by the owning user id, so a record belonging to a
// different user behaves exactly like a missing record.
type PostgresExpenseRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresExpenseRepository creates a new PostgresExpenseRepository using the
// provided *sql.DB. db must be a valid connection to a PostgreSQL instance.
func NewPostgresExpenseRepository(db *sql.DB) *PostgresExpenseRepository {
	return &PostgresExpenseRepository{DB: db}
}

// ExpensesByOwner fetches all expenses belonging to the given user, in
// insertion order.
//
//	ctx:    context for cancellation and deadlines
//	userID: identifier of the owning user
//
// Returns a slice of models.Expense or an error if the query or scanning fails.
func (r *PostgresExpenseRepository) ExpensesByOwner(ctx context.Context, userID string) ([]models.Expense, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, description, amount, date FROM expenses WHERE user_id = $1 ORDER BY date
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("ExpensesByOwner: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Amount, &e.Date); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

// CreateExpense persists a new expense record.
func (r *PostgresExpenseRepository) CreateExpense(ctx context.Context, expense models.Expense) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO expenses (id, user_id, description, amount, date) VALUES ($1, $2, $3, $4, $5)
	`, expense.ID, expense.UserID, expense.Description, expense.Amount, expense.Date)
	if err != nil {
		return fmt.Errorf("CreateExpense: %w", err)
	}
	return nil
}

// UpdateExpense mutates the description and amount of the expense with the
// given id, but only if it is owned by userID. Returns the updated record,
// or models.ErrNotFound when no row matches both id and owner.
func (r *PostgresExpenseRepository) UpdateExpense(ctx context.Context, userID, id, description string, amount float64) (*models.Expense, error) {
	var e models.Expense
	err := r.DB.QueryRowContext(ctx, `
		UPDATE expenses SET description = $1, amount = $2
		 WHERE id = $3 AND user_id = $4
		 RETURNING id, user_id, description, amount, date
	`, description, amount, id, userID).Scan(&e.ID, &e.UserID, &e.Description, &e.Amount, &e.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("UpdateExpense: %w", err)
	}
	return &e, nil
}

// DeleteExpense removes the expense with the given id if it is owned by
// userID. Returns models.ErrNotFound when no row matches both id and owner.
func (r *PostgresExpenseRepository) DeleteExpense(ctx context.Context, userID, id string) error {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM expenses WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return fmt.Errorf("DeleteExpense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("DeleteExpense: %w", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}
