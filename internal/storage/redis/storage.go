package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/squadhelper/tryouts/internal/model"
	"github.com/squadhelper/tryouts/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
//
// Each logical key holds a single JSON value; collection mutations are
// read-modify-write and not transactional, matching the flat key-value
// contract the rest of the application assumes.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) getJSON(ctx context.Context, key string, dest any) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Storage) setJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, 0).Err()
}

// User operations

func (s *Storage) SaveUser(ctx context.Context, user model.UserRecord) error {
	var users []model.UserRecord
	if _, err := s.getJSON(ctx, usersKey(), &users); err != nil {
		return err
	}
	users = append(users, user)
	return s.setJSON(ctx, usersKey(), users)
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (model.UserRecord, error) {
	var users []model.UserRecord
	if _, err := s.getJSON(ctx, usersKey(), &users); err != nil {
		return model.UserRecord{}, err
	}
	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.UserRecord{}, model.ErrUserNotFound
}

func (s *Storage) ListUsers(ctx context.Context) ([]model.UserRecord, error) {
	var users []model.UserRecord
	if _, err := s.getJSON(ctx, usersKey(), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	return s.setJSON(ctx, sessionKey(), session)
}

func (s *Storage) GetSession(ctx context.Context) (*model.Session, error) {
	var session model.Session
	ok, err := s.getJSON(ctx, sessionKey(), &session)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.ErrNoSession
	}
	return &session, nil
}

func (s *Storage) ClearSession(ctx context.Context) error {
	return s.client.Del(ctx, sessionKey()).Err()
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, entry model.PlayerEntry) error {
	var players []model.PlayerEntry
	if _, err := s.getJSON(ctx, playersKey(), &players); err != nil {
		return err
	}
	players = append(players, entry)
	return s.setJSON(ctx, playersKey(), players)
}

func (s *Storage) UpdatePlayer(ctx context.Context, entry model.PlayerEntry) error {
	var players []model.PlayerEntry
	if _, err := s.getJSON(ctx, playersKey(), &players); err != nil {
		return err
	}
	for i := range players {
		if players[i].ID == entry.ID {
			players[i] = entry
			return s.setJSON(ctx, playersKey(), players)
		}
	}
	return model.ErrPlayerNotFound
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (model.PlayerEntry, error) {
	var players []model.PlayerEntry
	if _, err := s.getJSON(ctx, playersKey(), &players); err != nil {
		return model.PlayerEntry{}, err
	}
	for _, p := range players {
		if p.ID == id {
			return p, nil
		}
	}
	return model.PlayerEntry{}, model.ErrPlayerNotFound
}

func (s *Storage) ListPlayers(ctx context.Context) ([]model.PlayerEntry, error) {
	var players []model.PlayerEntry
	if _, err := s.getJSON(ctx, playersKey(), &players); err != nil {
		return nil, err
	}
	return players, nil
}

// Sport catalog operations

func (s *Storage) SaveSports(ctx context.Context, sports []string) error {
	if sports == nil {
		sports = []string{}
	}
	return s.setJSON(ctx, sportsKey(), sports)
}

func (s *Storage) ListSports(ctx context.Context) ([]string, error) {
	var sports []string
	ok, err := s.getJSON(ctx, sportsKey(), &sports)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.ErrSportsNotSeeded
	}
	return sports, nil
}
