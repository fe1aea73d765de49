// Package session tracks authenticated administrators for the lifetime of
// their tokens. Sessions are explicit values held by the manager; there is no
// ambient current-user state anywhere else.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/goaoxor/workbench/internal/domain/admin"
)

// ErrNotAuthenticated indicates the token doesn't belong to a live session.
var ErrNotAuthenticated = errors.New("not authenticated")

// Manager issues and resolves session tokens.
type Manager struct {
	admins *admin.Service
	logger *slog.Logger

	mu     sync.RWMutex
	active map[string]string // token -> username
}

// NewManager creates a session manager on top of the administrator service.
func NewManager(admins *admin.Service, logger *slog.Logger) *Manager {
	return &Manager{
		admins: admins,
		logger: logger,
		active: make(map[string]string),
	}
}

// Login authenticates the credentials and opens a session.
func (m *Manager) Login(ctx context.Context, username, password string) (string, *admin.Administrator, error) {
	adm, err := m.admins.Authenticate(ctx, username, password)
	if err != nil {
		return "", nil, err
	}

	token := uuid.NewString()
	m.mu.Lock()
	m.active[token] = adm.Username
	m.mu.Unlock()

	m.logger.Info("session opened", "username", adm.Username)
	return token, adm, nil
}

// Resolve maps a token to the session's username.
func (m *Manager) Resolve(token string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	username, ok := m.active[token]
	return username, ok
}

// Logout closes the session and returns the username it belonged to.
func (m *Manager) Logout(ctx context.Context, token string) (string, error) {
	m.mu.Lock()
	username, ok := m.active[token]
	delete(m.active, token)
	m.mu.Unlock()
	if !ok {
		return "", ErrNotAuthenticated
	}

	m.logger.Info("session closed", "username", username)
	return username, nil
}
