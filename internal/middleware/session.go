package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/fashion-store/internal/response"
	"github.com/Lixing-Zhang/fashion-store/internal/session"
)

// SessionHeader carries the shopper's session id on cart requests
const SessionHeader = "X-Session-ID"

type sessionIDKey struct{}

type sessionLookup interface {
	Get(id string) (*session.Session, error)
}

// RequireSession rejects requests without a live session.
// A missing header yields 401, an unknown or expired session 404.
func RequireSession(sessions sessionLookup, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(SessionHeader)

			if id == "" {
				response.WriteError(w, http.StatusUnauthorized, "Session ID required", logger)
				return
			}

			if _, err := sessions.Get(id); err != nil {
				if errors.Is(err, session.ErrSessionNotFound) {
					response.WriteError(w, http.StatusNotFound, "Session not found", logger)
					return
				}
				logger.Error("session lookup failed", "session_id", id, "error", err)
				response.WriteError(w, http.StatusInternalServerError, "Internal server error", logger)
				return
			}

			ctx := context.WithValue(r.Context(), sessionIDKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionIDFromContext returns the session id stored by RequireSession
func SessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey{}).(string)
	return id
}
