package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db          Pinger
	environment string
}

func NewHealthHandler(db Pinger, environment string) *HealthHandler {
	return &HealthHandler{db: db, environment: environment}
}

type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Database    string `json:"database"`
}

// HandleHealth always answers 200 while the process is serving; the database
// field says whether the store is reachable.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	database := "up"
	if err := h.db.PingContext(ctx); err != nil {
		slog.WarnContext(r.Context(), "health check: database unreachable", "error", err)
		database = "down"
	}

	writeJSON(w, r, http.StatusOK, HealthResponse{
		Status:      "ok",
		Environment: h.environment,
		Database:    database,
	})
}
