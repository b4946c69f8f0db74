package otp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/squadhelper/tryouts/internal/dependencies/mocks"
	"github.com/squadhelper/tryouts/internal/model"
	"github.com/squadhelper/tryouts/internal/services/credstore"
	"github.com/squadhelper/tryouts/internal/services/session"
	"github.com/squadhelper/tryouts/internal/storage/memory"
	"github.com/squadhelper/tryouts/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage  *memory.Storage
	clock    *mocks.MockClock
	creds    *credstore.Service
	sessions *session.Manager
	service  *Service
	ctx      context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	rnd := mocks.NewMockRandom()
	s.creds = credstore.New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()

	var err error
	s.sessions, err = session.New(s.ctx, s.storage, s.creds, rnd, testutil.NopLogger())
	s.Require().NoError(err)
	s.service = New(s.creds, s.sessions, rnd, testutil.NopLogger())
}

func (s *ServiceSuite) register(username, email, phone string) {
	_, err := s.creds.Register(s.ctx, credstore.RegisterParams{
		Username: username,
		Password: "secret",
		Email:    email,
		Phone:    phone,
	})
	s.Require().NoError(err)
	s.clock.Advance(time.Millisecond)
}

// Begin tests

func (s *ServiceSuite) TestBeginSucceeds() {
	s.register("alice", "alice@example.com", "")

	challenge, err := s.service.Begin(s.ctx, "alice", "secret")
	s.Require().NoError(err)

	s.NotEmpty(challenge.ID)
	s.Equal("email", challenge.ContactHint)
}

func (s *ServiceSuite) TestBeginFailsOnBadCredentials() {
	s.register("alice", "alice@example.com", "")

	_, err := s.service.Begin(s.ctx, "alice", "wrong")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestBeginDoesNotCreateSession() {
	s.register("alice", "alice@example.com", "")

	_, err := s.service.Begin(s.ctx, "alice", "secret")
	s.Require().NoError(err)

	s.False(s.sessions.IsAuthenticated())
}

func (s *ServiceSuite) TestBeginPhoneHintWinsOverEmail() {
	s.register("alice", "alice@example.com", "555-0100")

	challenge, err := s.service.Begin(s.ctx, "alice", "secret")
	s.Require().NoError(err)
	s.Equal("phone", challenge.ContactHint)
}

// Verify tests

func (s *ServiceSuite) TestVerifyCompletesLogin() {
	s.register("alice", "alice@example.com", "")

	challenge, err := s.service.Begin(s.ctx, "alice", "secret")
	s.Require().NoError(err)

	sess, err := s.service.Verify(s.ctx, challenge.ID, "123456")
	s.Require().NoError(err)

	s.Equal("alice", sess.Username)
	s.NotEmpty(sess.Token)
	s.True(s.sessions.IsAuthenticated())
}

func (s *ServiceSuite) TestVerifyAcceptsAnySixDigitCode() {
	s.register("alice", "alice@example.com", "")

	for _, code := range []string{"000000", "999999", "424242"} {
		challenge, err := s.service.Begin(s.ctx, "alice", "secret")
		s.Require().NoError(err)

		_, err = s.service.Verify(s.ctx, challenge.ID, code)
		s.NoError(err, "code %q should be accepted", code)
	}
}

func (s *ServiceSuite) TestVerifyRejectsMalformedCodes() {
	s.register("alice", "alice@example.com", "")

	challenge, err := s.service.Begin(s.ctx, "alice", "secret")
	s.Require().NoError(err)

	for _, code := range []string{"", "12345", "1234567", "12345a", "abcdef", "12 456"} {
		_, err := s.service.Verify(s.ctx, challenge.ID, code)
		s.ErrorIs(err, model.ErrInvalidCode, "code %q should be rejected", code)
	}

	// Malformed attempts leave the challenge open
	_, err = s.service.Verify(s.ctx, challenge.ID, "123456")
	s.NoError(err)
}

func (s *ServiceSuite) TestVerifyUnknownChallenge() {
	_, err := s.service.Verify(s.ctx, "chal_missing", "123456")
	s.ErrorIs(err, model.ErrChallengeNotFound)
}

func (s *ServiceSuite) TestVerifyConsumesChallenge() {
	s.register("alice", "alice@example.com", "")

	challenge, err := s.service.Begin(s.ctx, "alice", "secret")
	s.Require().NoError(err)

	_, err = s.service.Verify(s.ctx, challenge.ID, "123456")
	s.Require().NoError(err)

	_, err = s.service.Verify(s.ctx, challenge.ID, "123456")
	s.ErrorIs(err, model.ErrChallengeNotFound)
}
