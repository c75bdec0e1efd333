// Package session keeps the per-visitor cart and category selection.
// Each session owns its own cart.Store; nothing is shared between sessions
// except the read-only catalog, and nothing outlives the session.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Lixing-Zhang/fashion-store/internal/cart"
	"github.com/Lixing-Zhang/fashion-store/internal/catalog"
	"github.com/Lixing-Zhang/fashion-store/internal/config"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTooManySessions = errors.New("too many active sessions")
)

// Session is one shopper's state. Actions on it are serialised.
type Session struct {
	ID string

	mu       sync.Mutex
	cart     *cart.Store
	selector *catalog.Selector
	lastSeen time.Time
}

// Do runs fn with exclusive access to the session's cart and selector.
// fn must not retain either pointer after it returns.
func (s *Session) Do(fn func(c *cart.Store, sel *catalog.Selector)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.cart, s.selector)
}

// Manager creates, finds and expires sessions
type Manager struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	idleTimeout time.Duration
	maxSessions int
	now         func() time.Time
	logger      *slog.Logger
}

// NewManager creates a session manager.
// A zero IdleTimeout disables expiry; a zero MaxSessions disables the cap.
func NewManager(cfg config.SessionConfig, logger *slog.Logger) *Manager {
	return &Manager{
		sessions:    make(map[string]*Session),
		idleTimeout: time.Duration(cfg.IdleTimeout) * time.Second,
		maxSessions: cfg.MaxSessions,
		now:         time.Now,
		logger:      logger,
	}
}

// Create starts a new session with an empty cart and no category selected
func (m *Manager) Create() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.maxSessions > 0 && len(m.sessions) >= m.maxSessions {
		return nil, ErrTooManySessions
	}

	s := &Session{
		ID:       uuid.New().String(),
		cart:     cart.NewStore(),
		selector: catalog.NewSelector(),
		lastSeen: m.now(),
	}
	m.sessions[s.ID] = s

	m.logger.Debug("session created", "session_id", s.ID, "active", len(m.sessions))
	return s, nil
}

// Get returns the session with the given id and marks it as active
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if m.expired(s, m.now()) {
		delete(m.sessions, id)
		return nil, ErrSessionNotFound
	}
	s.lastSeen = m.now()
	return s, nil
}

// Delete ends a session, discarding its cart
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)

	m.logger.Debug("session ended", "session_id", id, "active", len(m.sessions))
	return nil
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep removes sessions idle since before now-IdleTimeout and returns how many were removed
func (m *Manager) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if m.expired(s, now) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps idle sessions every interval until ctx is cancelled
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if m.idleTimeout <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(m.now()); n > 0 {
				m.logger.Info("expired idle sessions", "removed", n, "active", m.Len())
			}
		}
	}
}

func (m *Manager) expired(s *Session, now time.Time) bool {
	return m.idleTimeout > 0 && now.Sub(s.lastSeen) > m.idleTimeout
}
