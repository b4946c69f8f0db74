package credstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/squadhelper/tryouts/internal/dependencies/mocks"
	"github.com/squadhelper/tryouts/internal/model"
	"github.com/squadhelper/tryouts/internal/storage/memory"
	"github.com/squadhelper/tryouts/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	user, err := s.service.Register(s.ctx, RegisterParams{
		Username: "alice",
		Password: "secret",
		Email:    "alice@example.com",
		Role:     model.RoleUser,
	})
	s.Require().NoError(err)

	s.NotEmpty(user.ID)
	s.Equal("alice", user.Username)
	s.Equal(model.RoleUser, user.Role)
}

func (s *ServiceSuite) TestRegisterPersistsRecord() {
	_, err := s.service.Register(s.ctx, RegisterParams{
		Username: "alice",
		Password: "secret",
		Phone:    "555-0100",
	})
	s.Require().NoError(err)

	stored, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("secret", stored.Password)
	s.Equal("555-0100", stored.Phone)
}

func (s *ServiceSuite) TestRegisterIDDerivesFromClock() {
	user, err := s.service.Register(s.ctx, RegisterParams{
		Username: "alice",
		Password: "secret",
		Email:    "alice@example.com",
	})
	s.Require().NoError(err)

	expected := model.UserID("1704110400000") // 2024-01-01T12:00:00Z in millis
	s.Equal(expected, user.ID)
}

func (s *ServiceSuite) TestRegisterFailsWithoutContact() {
	_, err := s.service.Register(s.ctx, RegisterParams{
		Username: "alice",
		Password: "secret",
	})
	s.ErrorIs(err, model.ErrMissingContact)
}

func (s *ServiceSuite) TestRegisterFailsOnDuplicateUsername() {
	_, err := s.service.Register(s.ctx, RegisterParams{
		Username: "alice",
		Password: "secret",
		Email:    "alice@example.com",
	})
	s.Require().NoError(err)
	s.clock.Advance(time.Millisecond)

	_, err = s.service.Register(s.ctx, RegisterParams{
		Username: "alice",
		Password: "different",
		Email:    "other@example.com",
	})
	s.ErrorIs(err, model.ErrDuplicateUsername)
}

func (s *ServiceSuite) TestRegisterUsernameIsCaseSensitive() {
	_, err := s.service.Register(s.ctx, RegisterParams{
		Username: "alice",
		Password: "secret",
		Email:    "alice@example.com",
	})
	s.Require().NoError(err)
	s.clock.Advance(time.Millisecond)

	_, err = s.service.Register(s.ctx, RegisterParams{
		Username: "Alice",
		Password: "secret",
		Email:    "other@example.com",
	})
	s.NoError(err)
}

func (s *ServiceSuite) TestRegisterInvalidRoleDefaultsToUser() {
	user, err := s.service.Register(s.ctx, RegisterParams{
		Username: "alice",
		Password: "secret",
		Email:    "alice@example.com",
		Role:     "superuser",
	})
	s.Require().NoError(err)
	s.Equal(model.RoleUser, user.Role)
}

// Verify tests

func (s *ServiceSuite) TestVerifySucceeds() {
	_, err := s.service.Register(s.ctx, RegisterParams{
		Username: "alice",
		Password: "secret",
		Email:    "alice@example.com",
	})
	s.Require().NoError(err)

	user, err := s.service.Verify(s.ctx, "alice", "secret")
	s.Require().NoError(err)
	s.Equal("alice", user.Username)
}

func (s *ServiceSuite) TestVerifyFailsOnWrongPassword() {
	_, err := s.service.Register(s.ctx, RegisterParams{
		Username: "alice",
		Password: "secret",
		Email:    "alice@example.com",
	})
	s.Require().NoError(err)

	_, err = s.service.Verify(s.ctx, "alice", "wrong")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestVerifyFailsOnUnknownUsername() {
	_, err := s.service.Verify(s.ctx, "nobody", "secret")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestVerifyPasswordIsCaseSensitive() {
	_, err := s.service.Register(s.ctx, RegisterParams{
		Username: "alice",
		Password: "Secret",
		Email:    "alice@example.com",
	})
	s.Require().NoError(err)

	_, err = s.service.Verify(s.ctx, "alice", "secret")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

// Exists tests

func (s *ServiceSuite) TestExists() {
	exists, err := s.service.Exists(s.ctx, "alice")
	s.Require().NoError(err)
	s.False(exists)

	_, err = s.service.Register(s.ctx, RegisterParams{
		Username: "alice",
		Password: "secret",
		Email:    "alice@example.com",
	})
	s.Require().NoError(err)

	exists, err = s.service.Exists(s.ctx, "alice")
	s.Require().NoError(err)
	s.True(exists)
}

// EnsureDefaultAdmin tests

func (s *ServiceSuite) TestEnsureDefaultAdminSeedsAdmin() {
	s.Require().NoError(s.service.EnsureDefaultAdmin(s.ctx))

	admin, err := s.storage.GetUserByUsername(s.ctx, DefaultAdminUsername)
	s.Require().NoError(err)
	s.Equal(model.RoleAdmin, admin.Role)
	s.Equal(DefaultAdminPassword, admin.Password)
	s.Equal(model.UserID("admin-1704110400000"), admin.ID)
}

func (s *ServiceSuite) TestEnsureDefaultAdminIsIdempotent() {
	s.Require().NoError(s.service.EnsureDefaultAdmin(s.ctx))
	s.clock.Advance(time.Second)
	s.Require().NoError(s.service.EnsureDefaultAdmin(s.ctx))

	users, err := s.storage.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Len(users, 1)
}

func (s *ServiceSuite) TestEnsureDefaultAdminSkipsWhenAdminExists() {
	_, err := s.service.Register(s.ctx, RegisterParams{
		Username: "boss",
		Password: "secret",
		Email:    "boss@example.com",
		Role:     model.RoleAdmin,
	})
	s.Require().NoError(err)

	s.Require().NoError(s.service.EnsureDefaultAdmin(s.ctx))

	exists, err := s.service.Exists(s.ctx, DefaultAdminUsername)
	s.Require().NoError(err)
	s.False(exists)
}

func (s *ServiceSuite) TestDefaultAdminCanVerify() {
	s.Require().NoError(s.service.EnsureDefaultAdmin(s.ctx))

	user, err := s.service.Verify(s.ctx, DefaultAdminUsername, DefaultAdminPassword)
	s.Require().NoError(err)
	s.Equal(model.RoleAdmin, user.Role)
}
