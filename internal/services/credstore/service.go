package credstore

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"github.com/squadhelper/tryouts/internal/dependencies/clock"
	"github.com/squadhelper/tryouts/internal/model"
	"github.com/squadhelper/tryouts/internal/storage"
)

// Default admin credentials inserted into a fresh store.
// Deliberately fixed and well-known; this is a demo application.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
	defaultAdminEmail    = "admin@example.com"
)

// Service is the credential store: a flat collection of user records keyed
// by username with registration, existence checks and credential
// verification.
//
// Passwords are stored and compared in plaintext and ids are derived from
// the clock. Both are preserved demo shortcuts, not production behavior.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	// serializes register's check-then-insert
	mu sync.Mutex
}

// New creates a new credential store service
func New(storage storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		logger:  logger,
	}
}

// RegisterParams holds the fields for a new user record
type RegisterParams struct {
	Username string
	Password string
	Email    string
	Phone    string
	Role     model.Role
}

// Register creates a new user record. It fails with ErrDuplicateUsername
// if the username is already taken (case-sensitive exact match) and with
// ErrMissingContact if neither email nor phone is given.
func (s *Service) Register(ctx context.Context, p RegisterParams) (model.UserRecord, error) {
	if p.Email == "" && p.Phone == "" {
		return model.UserRecord{}, model.ErrMissingContact
	}

	role := p.Role
	if !role.Valid() {
		role = model.RoleUser
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.storage.GetUserByUsername(ctx, p.Username)
	if err == nil {
		return model.UserRecord{}, model.ErrDuplicateUsername
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return model.UserRecord{}, err
	}

	user := model.UserRecord{
		ID:       s.newID(""),
		Username: p.Username,
		Password: p.Password,
		Email:    p.Email,
		Phone:    p.Phone,
		Role:     role,
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		return model.UserRecord{}, err
	}

	s.logger.Info("user registered",
		slog.String("username", user.Username),
		slog.String("role", string(user.Role)),
	)
	return user, nil
}

// Verify checks a username/password pair against the store. Both fields
// must match exactly; there is no hashing.
func (s *Service) Verify(ctx context.Context, username, password string) (model.UserRecord, error) {
	user, err := s.storage.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return model.UserRecord{}, model.ErrInvalidCredentials
		}
		return model.UserRecord{}, err
	}
	if user.Password != password {
		return model.UserRecord{}, model.ErrInvalidCredentials
	}
	return user, nil
}

// Exists reports whether a record with the given username is present
func (s *Service) Exists(ctx context.Context, username string) (bool, error) {
	_, err := s.storage.GetUserByUsername(ctx, username)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, model.ErrUserNotFound) {
		return false, nil
	}
	return false, err
}

// EnsureDefaultAdmin inserts the fixed admin account if no admin record
// exists. It is idempotent and must run before any login attempt against
// a fresh store.
func (s *Service) EnsureDefaultAdmin(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Role == model.RoleAdmin {
			return nil
		}
	}

	admin := model.UserRecord{
		ID:       s.newID("admin-"),
		Username: DefaultAdminUsername,
		Password: DefaultAdminPassword,
		Email:    defaultAdminEmail,
		Role:     model.RoleAdmin,
	}
	if err := s.storage.SaveUser(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("default admin user created", slog.String("username", admin.Username))
	return nil
}

// newID builds a time-based id. Monotonic enough for this use case;
// collisions are an accepted risk in a non-production demo.
func (s *Service) newID(prefix string) model.UserID {
	return model.UserID(prefix + strconv.FormatInt(s.clock.Now().UnixMilli(), 10))
}
