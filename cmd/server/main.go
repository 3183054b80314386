// Package main initializes and starts the expense tracker API server,
// setting up configuration, logging, database connections, repositories,
// services, and handlers.
package main

import (
	"cmp"
	"fmt"

	nethttp "net/http"

	"github.com/Ankur-Sh/Expense-Tracker-Chart/internal/config"
	"github.com/Ankur-Sh/Expense-Tracker-Chart/internal/db"
	"github.com/Ankur-Sh/Expense-Tracker-Chart/internal/logger"
	"github.com/Ankur-Sh/Expense-Tracker-Chart/internal/repository"
	"github.com/Ankur-Sh/Expense-Tracker-Chart/internal/server/handler/http"
	"github.com/Ankur-Sh/Expense-Tracker-Chart/internal/service"
	"github.com/Ankur-Sh/Expense-Tracker-Chart/internal/token"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()
	addr := options.Port

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// The signing secret is injected configuration, never a constant.
	if options.JWTSecret == "" {
		zapLogger.Fatal("token signing secret is required (set -s or JWT_SECRET)")
	}

	// Initialize PostgreSQL connection.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Initialize repositories for credentials and expenses.
	userRepo := repository.NewPostgresUserRepository(postgresDB)
	expenseRepo := repository.NewPostgresExpenseRepository(postgresDB)

	// Token issuer/verifier shared by the auth service and the middleware.
	tokenManager := token.NewManager(options.JWTSecret, options.TokenTTL)

	// Initialize business-logic services.
	authService := service.NewAuthService(userRepo, tokenManager)
	expenseService := service.NewExpenseService(expenseRepo)

	// Create HTTP handlers for auth and expense endpoints.
	authHandler := &http.AuthHandler{AuthService: authService, Logger: zapLogger}
	expenseHandler := &http.ExpenseHandler{ExpenseService: expenseService, Logger: zapLogger}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, expenseHandler, tokenManager, zapLogger)

	// Create and start the HTTP server.
	server := &nethttp.Server{
		Addr:    addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
