package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/squadhelper/tryouts/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
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

func (s *StorageSuite) TestGetUserByUsernameIsCaseSensitive() {
	user := model.UserRecord{ID: "user-1", Username: "alice", Role: model.RoleUser}
	s.Require().NoError(s.storage.SaveUser(s.ctx, user))

	_, err := s.storage.GetUserByUsername(s.ctx, "Alice")
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

// Session tests

func (s *StorageSuite) TestGetSessionWhenEmpty() {
	_, err := s.storage.GetSession(s.ctx)
	s.ErrorIs(err, model.ErrNoSession)
}

func (s *StorageSuite) TestSaveAndGetSession() {
	session := &model.Session{
		Identity: model.Identity{ID: "user-1", Username: "alice", Role: model.RoleUser},
		Token:    "sess_abc",
	}

	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	got, err := s.storage.GetSession(s.ctx)
	s.Require().NoError(err)
	s.Equal(session, got)
}

func (s *StorageSuite) TestSaveSessionOverwrites() {
	first := &model.Session{Identity: model.Identity{Username: "alice"}, Token: "sess_1"}
	second := &model.Session{Identity: model.Identity{Username: "bob"}, Token: "sess_2"}

	s.Require().NoError(s.storage.SaveSession(s.ctx, first))
	s.Require().NoError(s.storage.SaveSession(s.ctx, second))

	got, err := s.storage.GetSession(s.ctx)
	s.Require().NoError(err)
	s.Equal("bob", got.Username)
	s.Equal("sess_2", got.Token)
}

func (s *StorageSuite) TestClearSession() {
	session := &model.Session{Identity: model.Identity{Username: "alice"}, Token: "sess_1"}
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	s.Require().NoError(s.storage.ClearSession(s.ctx))

	_, err := s.storage.GetSession(s.ctx)
	s.ErrorIs(err, model.ErrNoSession)
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	entry := model.PlayerEntry{
		ID:         "1000",
		Name:       "Dana",
		Age:        17,
		Sport:      "Tennis",
		Level:      model.LevelBeginner,
		Registered: true,
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

func (s *StorageSuite) TestUpdatePlayer() {
	entry := model.PlayerEntry{ID: "1000", Name: "Dana", Sport: "Tennis"}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, entry))

	present := true
	entry.Attendance = &present
	s.Require().NoError(s.storage.UpdatePlayer(s.ctx, entry))

	got, err := s.storage.GetPlayer(s.ctx, "1000")
	s.Require().NoError(err)
	s.Require().NotNil(got.Attendance)
	s.True(*got.Attendance)
}

func (s *StorageSuite) TestUpdatePlayerNotFound() {
	err := s.storage.UpdatePlayer(s.ctx, model.PlayerEntry{ID: "missing"})
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestUpdatePlayerKeepsPosition() {
	for i, name := range []string{"first", "second", "third"} {
		s.Require().NoError(s.storage.SavePlayer(s.ctx, model.PlayerEntry{
			ID:   model.PlayerID(string(rune('a' + i))),
			Name: name,
		}))
	}

	s.Require().NoError(s.storage.UpdatePlayer(s.ctx, model.PlayerEntry{ID: "b", Name: "updated"}))

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal("first", players[0].Name)
	s.Equal("updated", players[1].Name)
	s.Equal("third", players[2].Name)
}

func (s *StorageSuite) TestListPlayersEmpty() {
	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *StorageSuite) TestListPlayersPreservesInsertionOrder() {
	for _, id := range []string{"30", "10", "20"} {
		s.Require().NoError(s.storage.SavePlayer(s.ctx, model.PlayerEntry{ID: model.PlayerID(id)}))
	}

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal(model.PlayerID("30"), players[0].ID)
	s.Equal(model.PlayerID("10"), players[1].ID)
	s.Equal(model.PlayerID("20"), players[2].ID)
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
}

func (s *StorageSuite) TestSaveSportsEmptyIsStillSeeded() {
	s.Require().NoError(s.storage.SaveSports(s.ctx, []string{}))

	got, err := s.storage.ListSports(s.ctx)
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *StorageSuite) TestSaveSportsCopiesInput() {
	sports := []string{"Football", "Tennis"}
	s.Require().NoError(s.storage.SaveSports(s.ctx, sports))

	sports[0] = "mutated"

	got, err := s.storage.ListSports(s.ctx)
	s.Require().NoError(err)
	s.Equal("Football", got[0])
}
