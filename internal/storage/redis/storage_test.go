package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/squadhelper/tryouts/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// User tests

func (s *StorageSuite) TestSaveAndGetUser() {
	user := model.UserRecord{
		ID:       "user-1",
		Username: "alice",
		Password: "secret",
		Email:    "alice@example.com",
		Role:     model.RoleUser,
	}

	s.Require().NoError(s.storage.SaveUser(s.ctx, user))

	got, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(user, got)
}

func (s *StorageSuite) TestGetUserByUsernameNotFound() {
	_, err := s.storage.GetUserByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestListUsersPreservesInsertionOrder() {
	for _, name := range []string{"carol", "alice", "bob"} {
		s.Require().NoError(s.storage.SaveUser(s.ctx, model.UserRecord{
			ID:       model.UserID("id-" + name),
			Username: name,
		}))
	}

	users, err := s.storage.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 3)
	s.Equal("carol", users[0].Username)
	s.Equal("alice", users[1].Username)
	s.Equal("bob", users[2].Username)
}

func (s *StorageSuite) TestUsersStoredUnderSingleKey() {
	s.Require().NoError(s.storage.SaveUser(s.ctx, model.UserRecord{ID: "u1", Username: "alice"}))

	s.True(s.mini.Exists("tryouts:users"))
}

// Session tests

func (s *StorageSuite) TestGetSessionWhenEmpty() {
	_, err := s.storage.GetSession(s.ctx)
	s.ErrorIs(err, model.ErrNoSession)
}

func (s *StorageSuite) TestSaveAndGetSession() {
	session := &model.Session{
		Identity: model.Identity{ID: "user-1", Username: "alice", Role: model.RoleAdmin},
		Token:    "sess_abc",
	}

	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	got, err := s.storage.GetSession(s.ctx)
	s.Require().NoError(err)
	s.Equal(session, got)
	s.True(s.mini.Exists("tryouts:user"))
}

func (s *StorageSuite) TestClearSession() {
	session := &model.Session{Identity: model.Identity{Username: "alice"}, Token: "sess_1"}
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	s.Require().NoError(s.storage.ClearSession(s.ctx))

	_, err := s.storage.GetSession(s.ctx)
	s.ErrorIs(err, model.ErrNoSession)
	s.False(s.mini.Exists("tryouts:user"))
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	present := true
	entry := model.PlayerEntry{
		ID:         "1000",
		Name:       "Dana",
		Age:        17,
		Gender:     "female",
		Contact:    "dana@example.com",
		Sport:      "Tennis",
		Level:      model.LevelAdvanced,
		Registered: true,
		Attendance: &present,
	}

	s.Require().NoError(s.storage.SavePlayer(s.ctx, entry))

	got, err := s.storage.GetPlayer(s.ctx, "1000")
	s.Require().NoError(err)
	s.Equal(entry, got)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "missing")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestUpdatePlayerNotFound() {
	err := s.storage.UpdatePlayer(s.ctx, model.PlayerEntry{ID: "missing"})
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestUpdatePlayerKeepsPosition() {
	for _, id := range []string{"a", "b", "c"} {
		s.Require().NoError(s.storage.SavePlayer(s.ctx, model.PlayerEntry{
			ID:   model.PlayerID(id),
			Name: "name-" + id,
		}))
	}

	s.Require().NoError(s.storage.UpdatePlayer(s.ctx, model.PlayerEntry{ID: "b", Name: "updated"}))

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal("name-a", players[0].Name)
	s.Equal("updated", players[1].Name)
	s.Equal("name-c", players[2].Name)
}

func (s *StorageSuite) TestListPlayersEmpty() {
	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *StorageSuite) TestUnmarkedAttendanceSurvivesRoundTrip() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, model.PlayerEntry{ID: "1", Name: "Dana"}))

	got, err := s.storage.GetPlayer(s.ctx, "1")
	s.Require().NoError(err)
	s.Nil(got.Attendance)
}

// Sport catalog tests

func (s *StorageSuite) TestListSportsBeforeSeeding() {
	_, err := s.storage.ListSports(s.ctx)
	s.ErrorIs(err, model.ErrSportsNotSeeded)
}

func (s *StorageSuite) TestSaveAndListSports() {
	sports := []string{"Football", "Tennis"}
	s.Require().NoError(s.storage.SaveSports(s.ctx, sports))

	got, err := s.storage.ListSports(s.ctx)
	s.Require().NoError(err)
	s.Equal(sports, got)
	s.True(s.mini.Exists("tryouts:sports"))
}

func (s *StorageSuite) TestSaveSportsNilBecomesEmpty() {
	s.Require().NoError(s.storage.SaveSports(s.ctx, nil))

	got, err := s.storage.ListSports(s.ctx)
	s.Require().NoError(err)
	s.NotNil(got)
	s.Empty(got)
}
