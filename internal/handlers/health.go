package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// sessionCounter reports the number of live shopping sessions
type sessionCounter interface {
	Len() int
}

// HealthHandler provides health check endpoint
type HealthHandler struct {
	logger   *slog.Logger
	sessions sessionCounter
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(logger *slog.Logger, sessions sessionCounter) *HealthHandler {
	return &HealthHandler{
		logger:   logger,
		sessions: sessions,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
	Version        string    `json:"version"`
	ActiveSessions int       `json:"activeSessions"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:         "healthy",
		Timestamp:      time.Now().UTC(),
		Version:        "1.0.0",
		ActiveSessions: h.sessions.Len(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode health response", "error", err)
	}
}
