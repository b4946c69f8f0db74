package registry

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

// Service is the registration registry: the ordered collection of player
// entries plus the mutable sport catalog.
//
// Nothing is cached; every read goes to storage and filters are recomputed
// fresh. Insertion order is the only ordering.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	// serializes catalog check-then-write and attendance read-modify-write
	mu sync.Mutex
}

// New creates a new registration registry
func New(store storage.Storage, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		clock:   clk,
		logger:  logger,
	}
}

// AddPlayerParams holds the fields of a tryout registration submission
type AddPlayerParams struct {
	Name    string
	Age     int
	Gender  string
	Contact string
	Sport   string
	Level   model.Level
}

// AddPlayer appends a new entry to the registration sequence. The sport
// must exist in the live catalog; an unknown name fails with
// ErrSportNotFound.
func (s *Service) AddPlayer(ctx context.Context, p AddPlayerParams) (model.PlayerEntry, error) {
	level := p.Level
	if !level.Valid() {
		level = model.LevelBeginner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sports, err := s.sportsLocked(ctx)
	if err != nil {
		return model.PlayerEntry{}, err
	}
	known := false
	for _, sport := range sports {
		if sport == p.Sport {
			known = true
			break
		}
	}
	if !known {
		return model.PlayerEntry{}, model.ErrSportNotFound
	}

	entry := model.PlayerEntry{
		ID:         model.PlayerID(strconv.FormatInt(s.clock.Now().UnixMilli(), 10)),
		Name:       p.Name,
		Age:        p.Age,
		Gender:     p.Gender,
		Contact:    p.Contact,
		Sport:      p.Sport,
		Level:      level,
		Registered: true,
	}
	if err := s.storage.SavePlayer(ctx, entry); err != nil {
		return model.PlayerEntry{}, err
	}

	s.logger.Info("player registered",
		slog.String("name", entry.Name),
		slog.String("sport", entry.Sport),
		slog.String("level", string(entry.Level)),
	)
	return entry, nil
}

// Players returns all entries in insertion order
func (s *Service) Players(ctx context.Context) ([]model.PlayerEntry, error) {
	return s.storage.ListPlayers(ctx)
}

// PlayersBySport returns the entries registered for the given sport,
// preserving insertion order
func (s *Service) PlayersBySport(ctx context.Context, sport string) ([]model.PlayerEntry, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]model.PlayerEntry, 0, len(players))
	for _, p := range players {
		if p.Sport == sport {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// UpdateAttendance marks the entry with the given id present or absent.
// An unknown id fails with ErrPlayerNotFound rather than being silently
// ignored.
func (s *Service) UpdateAttendance(ctx context.Context, id model.PlayerID, present bool) (model.PlayerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return model.PlayerEntry{}, err
	}
	entry.Attendance = &present
	if err := s.storage.UpdatePlayer(ctx, entry); err != nil {
		return model.PlayerEntry{}, err
	}
	return entry, nil
}

// Sports returns the catalog, seeding the defaults on first access
func (s *Service) Sports(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sportsLocked(ctx)
}

func (s *Service) sportsLocked(ctx context.Context) ([]string, error) {
	sports, err := s.storage.ListSports(ctx)
	if err != nil {
		if !errors.Is(err, model.ErrSportsNotSeeded) {
			return nil, err
		}
		seeded := make([]string, len(model.DefaultSports))
		copy(seeded, model.DefaultSports)
		if err := s.storage.SaveSports(ctx, seeded); err != nil {
			return nil, err
		}
		return seeded, nil
	}
	return sports, nil
}

// AddSport appends a sport name to the catalog. Adding a name that is
// already present (case-sensitive) is a no-op.
func (s *Service) AddSport(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sports, err := s.sportsLocked(ctx)
	if err != nil {
		return err
	}
	for _, sport := range sports {
		if sport == name {
			return nil
		}
	}
	sports = append(sports, name)
	if err := s.storage.SaveSports(ctx, sports); err != nil {
		return err
	}
	s.logger.Info("sport added", slog.String("sport", name))
	return nil
}

// RemoveSport removes a sport name from the catalog. It fails with
// ErrSportInUse while any player entry references the sport, and with
// ErrSportNotFound if the name is not in the catalog.
func (s *Service) RemoveSport(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return err
	}
	for _, p := range players {
		if p.Sport == name {
			return model.ErrSportInUse
		}
	}

	sports, err := s.sportsLocked(ctx)
	if err != nil {
		return err
	}
	kept := make([]string, 0, len(sports))
	found := false
	for _, sport := range sports {
		if sport == name {
			found = true
			continue
		}
		kept = append(kept, sport)
	}
	if !found {
		return model.ErrSportNotFound
	}
	if err := s.storage.SaveSports(ctx, kept); err != nil {
		return err
	}
	s.logger.Info("sport removed", slog.String("sport", name))
	return nil
}
