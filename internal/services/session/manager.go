package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/squadhelper/tryouts/internal/dependencies/random"
	"github.com/squadhelper/tryouts/internal/model"
	"github.com/squadhelper/tryouts/internal/services/credstore"
	"github.com/squadhelper/tryouts/internal/storage"
)

// Manager holds at most one authenticated identity at a time.
//
// The session is written to storage on every change and restored at
// construction, so it survives a process restart; absent stored state
// means logged out. Logging in again overwrites the current session and
// invalidates its token.
type Manager struct {
	storage storage.Storage
	creds   *credstore.Service
	random  random.Random
	logger  *slog.Logger

	mu      sync.RWMutex
	current *model.Session
}

// New creates a session manager, restoring any persisted session
func New(ctx context.Context, store storage.Storage, creds *credstore.Service, rnd random.Random, logger *slog.Logger) (*Manager, error) {
	m := &Manager{
		storage: store,
		creds:   creds,
		random:  rnd,
		logger:  logger,
	}

	session, err := store.GetSession(ctx)
	if err != nil {
		if !errors.Is(err, model.ErrNoSession) {
			return nil, err
		}
		return m, nil
	}
	m.current = session
	logger.Info("session restored", slog.String("username", session.Username))
	return m, nil
}

// Login sets the current session to the given identity without any
// validation; it trusts that the caller has already verified credentials.
// Any existing session is overwritten.
func (m *Manager) Login(ctx context.Context, user model.Identity) (*model.Session, error) {
	session := &model.Session{
		Identity: user,
		Token:    m.random.Token("sess_"),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	m.current = session

	m.logger.Info("user logged in",
		slog.String("username", user.Username),
		slog.String("role", string(user.Role)),
	)
	return session, nil
}

// LoginWithCredentials verifies the credentials against the credential
// store and logs the matching identity in.
//
// The HTTP surface does not call this directly; it goes through the
// two-factor flow instead, which splits the credential check from the
// final Login.
func (m *Manager) LoginWithCredentials(ctx context.Context, username, password string) (*model.Session, error) {
	user, err := m.creds.Verify(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return m.Login(ctx, user.Identity())
}

// Register creates the user record and immediately logs the new identity
// in. There is no separate confirmation step.
func (m *Manager) Register(ctx context.Context, p credstore.RegisterParams) (*model.Session, error) {
	user, err := m.creds.Register(ctx, p)
	if err != nil {
		return nil, err
	}
	return m.Login(ctx, user.Identity())
}

// Logout clears the current session
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil
	}
	if err := m.storage.ClearSession(ctx); err != nil {
		return err
	}
	m.logger.Info("user logged out", slog.String("username", m.current.Username))
	m.current = nil
	return nil
}

// Current returns the active session, or nil when logged out
func (m *Manager) Current() *model.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil
	}
	copied := *m.current
	return &copied
}

// Validate returns the session matching the given token. A token from an
// overwritten or cleared session fails with ErrInvalidSession.
func (m *Manager) Validate(token string) (*model.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil || token == "" || m.current.Token != token {
		return nil, model.ErrInvalidSession
	}
	copied := *m.current
	return &copied, nil
}

// IsAuthenticated reports whether a session is active
func (m *Manager) IsAuthenticated() bool {
	return m.Current() != nil
}

// IsAdmin reports whether the active session belongs to an admin
func (m *Manager) IsAdmin() bool {
	return m.Current().IsAdmin()
}
