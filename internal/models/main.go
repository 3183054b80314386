// Package models defines the core data structures for users and expenses.
package models

import "time"

// User represents an application user with credentials.
type User struct {
	// ID is the unique identifier for the user.
	ID string
	// Username is the login name chosen by the user.
	Username string
	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string
}

// Expense is a single spending record owned by exactly one user.
type Expense struct {
	// ID is the unique identifier for the expense.
	ID string `json:"id"`
	// UserID identifies the owning user. Never serialized to clients.
	UserID string `json:"-"`
	// Description is the free-form label of the expense. The client also
	// uses it as the category key when aggregating.
	Description string `json:"description"`
	// Amount is the expense value, treated as currency by the client.
	Amount float64 `json:"amount"`
	// Date is the server-assigned creation timestamp.
	Date time.Time `json:"date"`
}
