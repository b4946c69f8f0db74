package memory

import (
	"context"
	"sync"

	"github.com/squadhelper/tryouts/internal/model"
	"github.com/squadhelper/tryouts/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Players and users are kept as slices so insertion order survives listing.
type Storage struct {
	mu sync.RWMutex

	users       []model.UserRecord
	session     *model.Session
	players     []model.PlayerEntry
	playerIndex map[model.PlayerID]int
	sports      []string
	sportsSaved bool
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		playerIndex: make(map[model.PlayerID]int),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user model.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
	return nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (model.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.UserRecord{}, model.ErrUserNotFound
}

func (s *Storage) ListUsers(ctx context.Context) ([]model.UserRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]model.UserRecord, len(s.users))
	copy(users, s.users)
	return users, nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	s.session = &copied
	return nil
}

func (s *Storage) GetSession(ctx context.Context) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil, model.ErrNoSession
	}
	copied := *s.session
	return &copied, nil
}

func (s *Storage) ClearSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, entry model.PlayerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playerIndex[entry.ID] = len(s.players)
	s.players = append(s.players, entry)
	return nil
}

func (s *Storage) UpdatePlayer(ctx context.Context, entry model.PlayerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.playerIndex[entry.ID]
	if !ok {
		return model.ErrPlayerNotFound
	}
	s.players[i] = entry
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (model.PlayerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.playerIndex[id]
	if !ok {
		return model.PlayerEntry{}, model.ErrPlayerNotFound
	}
	return s.players[i], nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]model.PlayerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]model.PlayerEntry, len(s.players))
	copy(players, s.players)
	return players, nil
}

// Sport catalog operations

func (s *Storage) SaveSports(ctx context.Context, sports []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sports = make([]string, len(sports))
	copy(s.sports, sports)
	s.sportsSaved = true
	return nil
}

func (s *Storage) ListSports(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.sportsSaved {
		return nil, model.ErrSportsNotSeeded
	}
	sports := make([]string, len(s.sports))
	copy(sports, s.sports)
	return sports, nil
}
