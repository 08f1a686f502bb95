package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"ledger/internal/shared/config"
	"ledger/internal/shared/telemetry"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := cfg.Log.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var telemetryShutdown func(context.Context) error
	if cfg.Telemetry.Enabled {
		telemetryShutdown, err = telemetry.Init(ctx, telemetry.Config{
			ServiceName:  cfg.Telemetry.ServiceName,
			Environment:  cfg.Environment,
			OTLPEndpoint: cfg.Telemetry.OTLPEndpoint,
			MetricsPort:  cfg.Telemetry.MetricsPort,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize telemetry: %w", err)
		}
		slog.Info("telemetry enabled", "otlp_endpoint", cfg.Telemetry.OTLPEndpoint, "metrics_port", cfg.Telemetry.MetricsPort)
	}

	deps, err := NewDependencies(ctx, cfg)
	if err != nil {
		if telemetryShutdown != nil {
			_ = telemetryShutdown(context.Background())
		}
		return err
	}
	defer deps.Close()

	handler := SetupRoutes(deps, cfg, logger)
	srv, errCh := StartServer(cfg.Server.Addr(), handler)

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			GracefulShutdown(srv, telemetryShutdown, cfg.Server.ShutdownTimeout)
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	GracefulShutdown(srv, telemetryShutdown, cfg.Server.ShutdownTimeout)
	return nil
}
