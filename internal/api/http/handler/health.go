package handler

import (
	"context"
	"net/http"

	"github.com/algoroadmap/roadmap-server/internal/logger"
)

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health handles the banner and readiness endpoints.
type Health struct {
	db     Pinger
	logger *logger.Logger
}

// NewHealth creates a new Health handler.
func NewHealth(db Pinger, logger *logger.Logger) *Health {
	return &Health{
		db:     db,
		logger: logger,
	}
}

// Root returns the API banner.
func (h *Health) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "Algorithms Roadmap API"})
}

// Ping reports whether the database is reachable.
func (h *Health) Ping(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		h.logger.Error("Health handler: database unreachable",
			"error", err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "database unreachable"})
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "pong"})
}
