package main

import (
	"log/slog"
	"net/http"

	httphandlers "ledger/internal/interfaces/http"
	"ledger/internal/shared/config"
	"ledger/internal/shared/middleware"
)

// SetupRoutes configures all HTTP routes and returns the final handler with middleware.
func SetupRoutes(deps *Dependencies, cfg *config.Config, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("GET /health", deps.HealthHandler.HandleHealth)
	mux.HandleFunc("GET /api/reports/summary", deps.ReportHandler.HandleSummary)

	// Protected routes
	authMiddleware := middleware.Auth(deps.UserService)

	mux.Handle("GET /api/users/me", authMiddleware(http.HandlerFunc(deps.UserHandler.HandleMe)))
	mux.Handle("GET /api/accounts", authMiddleware(http.HandlerFunc(deps.AccountHandler.HandleListAccounts)))
	mux.Handle("GET /api/accounts/{id}/balance", authMiddleware(http.HandlerFunc(deps.AccountHandler.HandleGetBalance)))
	mux.Handle("GET /api/accounts/{id}/transactions", authMiddleware(http.HandlerFunc(deps.TransactionHandler.HandleListAccountTransactions)))
	mux.Handle("POST /api/transactions", authMiddleware(http.HandlerFunc(deps.TransactionHandler.HandleCreateTransaction)))
	mux.Handle("GET /api/transactions/{transaction_id}", authMiddleware(http.HandlerFunc(deps.TransactionHandler.HandleGetTransaction)))

	// JSON 404/405 for everything else
	mux.Handle("/", httphandlers.NotFoundHandler(mux))

	// Apply global middleware, outermost first
	var handler http.Handler = mux
	handler = middleware.HostGuard(cfg.Server.AllowedHosts)(handler)
	handler = middleware.SecurityHeaders(handler)
	handler = middleware.Tracing(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recover(handler)
	if cfg.Telemetry.Enabled {
		handler = middleware.Telemetry(cfg.Telemetry.ServiceName)(handler)
	}

	return handler
}
