package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Ankur-Sh/Expense-Tracker-Chart/internal/models"
)

const (
	apiRegister = "/api/users/register"
	apiLogin    = "/api/users/login"
	apiExpenses = "/api/expenses"
)

// ErrUnauthorized is returned when the server rejects the cached token.
var ErrUnauthorized = errors.New("unauthorized: please log in again")

// API is a thin HTTP client for the expense tracker endpoints.
type API struct {
	// Client is the underlying HTTP client.
	Client *http.Client
	// BaseURL is the server base URL, without a trailing slash.
	BaseURL string
	// Session supplies the bearer token for protected endpoints.
	Session *Session
}

// credentials is the JSON payload for the register and login endpoints.
type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// expensePayload is the JSON payload for creating and updating expenses.
type expensePayload struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Register creates an account and returns the issued token.
func (a *API) Register(username, password string) (string, error) {
	return a.authenticate(apiRegister, username, password)
}

// Login authenticates and returns the issued token.
func (a *API) Login(username, password string) (string, error) {
	return a.authenticate(apiLogin, username, password)
}

func (a *API) authenticate(path, username, password string) (string, error) {
	body, _ := json.Marshal(credentials{Username: username, Password: password})
	resp, err := a.Client.Post(a.BaseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var apiErr struct {
			Msg string `json:"msg"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Msg != "" {
			return "", errors.New(apiErr.Msg)
		}
		return "", fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return result.Token, nil
}

// Expenses fetches the full list of the current user's expenses.
func (a *API) Expenses() ([]models.Expense, error) {
	resp, err := a.do(http.MethodGet, apiExpenses, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var expenses []models.Expense
	if err := json.NewDecoder(resp.Body).Decode(&expenses); err != nil {
		return nil, fmt.Errorf("decode expenses: %w", err)
	}
	return expenses, nil
}

// CreateExpense records a new expense and returns the stored record.
func (a *API) CreateExpense(description string, amount float64) (*models.Expense, error) {
	resp, err := a.do(http.MethodPost, apiExpenses, &expensePayload{Description: description, Amount: amount})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var expense models.Expense
	if err := json.NewDecoder(resp.Body).Decode(&expense); err != nil {
		return nil, fmt.Errorf("decode expense: %w", err)
	}
	return &expense, nil
}

// UpdateExpense edits an owned expense and returns the updated record.
func (a *API) UpdateExpense(id, description string, amount float64) (*models.Expense, error) {
	resp, err := a.do(http.MethodPut, apiExpenses+"/"+id, &expensePayload{Description: description, Amount: amount})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var expense models.Expense
	if err := json.NewDecoder(resp.Body).Decode(&expense); err != nil {
		return nil, fmt.Errorf("decode expense: %w", err)
	}
	return &expense, nil
}

// DeleteExpense removes an owned expense.
func (a *API) DeleteExpense(id string) error {
	resp, err := a.do(http.MethodDelete, apiExpenses+"/"+id, nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// do sends an authenticated request and normalizes error responses.
func (a *API) do(method, path string, payload any) (*http.Response, error) {
	var body *bytes.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, a.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.Session.Token)

	resp, err := a.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		resp.Body.Close()
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, errors.New("expense not found")
	case resp.StatusCode >= 400:
		resp.Body.Close()
		return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	return resp, nil
}
