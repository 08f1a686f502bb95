package main

import (
	"context"
	"log/slog"

	"ledger/internal/domain/account"
	"ledger/internal/domain/report"
	"ledger/internal/domain/transaction"
	"ledger/internal/domain/user"
	"ledger/internal/infrastructure/postgres"
	httphandlers "ledger/internal/interfaces/http"
	"ledger/internal/shared/config"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	DB *postgres.DB

	// Handlers
	UserHandler        *httphandlers.UserHandler
	AccountHandler     *httphandlers.AccountHandler
	TransactionHandler *httphandlers.TransactionHandler
	ReportHandler      *httphandlers.ReportHandler
	HealthHandler      *httphandlers.HealthHandler

	// Auth
	UserService *user.Service
}

// NewDependencies initializes all application dependencies.
func NewDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	// Connect to database
	db, err := postgres.New(cfg.Database.ConnectionString(), postgres.PoolConfig{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("connected to database", "host", cfg.Database.Host, "database", cfg.Database.DBName)

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		slog.Info("database schema is up to date")
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	accountRepo := postgres.NewAccountRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	ledgerStore := postgres.NewLedgerStore(db)

	// Initialize domain services
	userService := user.NewService(userRepo)
	accountService := account.NewService(accountRepo)
	transactionService := transaction.NewService(ledgerStore, transactionRepo)
	reportService := report.NewService(reportRepo)

	return &Dependencies{
		DB:                 db,
		UserHandler:        httphandlers.NewUserHandler(userService),
		AccountHandler:     httphandlers.NewAccountHandler(accountService),
		TransactionHandler: httphandlers.NewTransactionHandler(transactionService, accountService),
		ReportHandler:      httphandlers.NewReportHandler(reportService),
		HealthHandler:      httphandlers.NewHealthHandler(db, cfg.Environment),
		UserService:        userService,
	}, nil
}

// Close releases all resources held by dependencies.
func (d *Dependencies) Close() {
	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			slog.Warn("failed to close database", "error", err)
		}
	}
}
