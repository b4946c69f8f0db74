package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/squadhelper/tryouts/internal/dependencies/clock"
	"github.com/squadhelper/tryouts/internal/dependencies/random"
	"github.com/squadhelper/tryouts/internal/services/credstore"
	"github.com/squadhelper/tryouts/internal/services/export"
	"github.com/squadhelper/tryouts/internal/services/otp"
	"github.com/squadhelper/tryouts/internal/services/registry"
	"github.com/squadhelper/tryouts/internal/services/session"
	"github.com/squadhelper/tryouts/internal/storage"
	"github.com/squadhelper/tryouts/internal/storage/memory"
	redisstorage "github.com/squadhelper/tryouts/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	CredStore       *credstore.Service
	SessionManager  *session.Manager
	OTPService      *otp.Service
	RegistryService *registry.Service
	ExportService   *export.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired.
// It seeds the default admin account and restores any persisted session.
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(ctx, store, clock.New(), random.New(), logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(ctx context.Context, store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) (*App, error) {
	creds := credstore.New(store, clk, logger)
	if err := creds.EnsureDefaultAdmin(ctx); err != nil {
		return nil, err
	}

	sessions, err := session.New(ctx, store, creds, rnd, logger)
	if err != nil {
		return nil, err
	}

	otpService := otp.New(creds, sessions, rnd, logger)
	registryService := registry.New(store, clk, logger)
	exportService := export.New(clk)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		CredStore:       creds,
		SessionManager:  sessions,
		OTPService:      otpService,
		RegistryService: registryService,
		ExportService:   exportService,
	}, nil
}
