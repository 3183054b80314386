// Package http provides HTTP routing and middleware configuration
// for the expense tracker service.
package http

import (
	"net/http"

	"github.com/Ankur-Sh/Expense-Tracker-Chart/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter constructs and returns an HTTP handler that serves
// the expense tracker API. It applies CORS, JSON content-type enforcement,
// and request logging globally, and bearer-token authentication on the
// expense endpoints.
//
// Parameters:
//
//	authHandler    - handler for registration and login endpoints
//	expenseHandler - handler for expense CRUD endpoints
//	verifier       - token verifier backing the auth middleware
//	logger         - structured logger for request logging middleware
//
// Routes:
//
//	POST   /api/users/register → authHandler.Register
//	POST   /api/users/login    → authHandler.Login
//	GET    /api/expenses       → expenseHandler.List   (bearer token)
//	POST   /api/expenses       → expenseHandler.Create (bearer token)
//	PUT    /api/expenses/{id}  → expenseHandler.Update (bearer token)
//	DELETE /api/expenses/{id}  → expenseHandler.Delete (bearer token)
func NewRouter(
	authHandler *AuthHandler,
	expenseHandler *ExpenseHandler,
	verifier middleware.TokenVerifier,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Browser clients call the API from another origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	// Mount API routes
	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/users/register", authHandler.Register)
		r.Post("/users/login", authHandler.Login)

		// Protected group: requires valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(verifier))

			r.Get("/expenses", expenseHandler.List)
			r.Post("/expenses", expenseHandler.Create)
			r.Put("/expenses/{id}", expenseHandler.Update)
			r.Delete("/expenses/{id}", expenseHandler.Delete)
		})
	})

	return r
}
