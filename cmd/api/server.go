package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// StartServer creates the API server and starts it in the background. Listen
// failures are delivered on the returned channel.
func StartServer(addr string, handler http.Handler) (*http.Server, <-chan error) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	return srv, errCh
}

// GracefulShutdown stops accepting requests and waits for in-flight ones until
// timeout, then flushes telemetry.
func GracefulShutdown(srv *http.Server, telemetryShutdown func(context.Context) error, timeout time.Duration) {
	slog.Info("server shutting down", "timeout", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("error shutting down HTTP server", "error", err)
	}

	if telemetryShutdown != nil {
		if err := telemetryShutdown(ctx); err != nil {
			slog.Error("error shutting down telemetry", "error", err)
		}
	}

	slog.Info("server stopped")
}
