package otp

import (
	"context"
	"log/slog"
	"sync"

	"github.com/squadhelper/tryouts/internal/dependencies/random"
	"github.com/squadhelper/tryouts/internal/model"
	"github.com/squadhelper/tryouts/internal/services/credstore"
	"github.com/squadhelper/tryouts/internal/services/session"
)

// CodeLength is the number of digits in a verification code
const CodeLength = 6

// Service implements the two-step login flow: a credential check first,
// then a one-time code before the session is created.
//
// This is a demonstration stand-in, not a real OTP protocol. The code is
// "dispatched" by writing it to the log, any syntactically valid six-digit
// code is accepted as proof, and challenges never expire. Do not mistake
// it for a security boundary.
type Service struct {
	creds    *credstore.Service
	sessions *session.Manager
	random   random.Random
	logger   *slog.Logger

	mu      sync.Mutex
	pending map[string]model.Identity
}

// New creates a new two-factor login service
func New(creds *credstore.Service, sessions *session.Manager, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		creds:    creds,
		sessions: sessions,
		random:   rnd,
		logger:   logger,
		pending:  make(map[string]model.Identity),
	}
}

// Challenge is a pending verification started by a successful credential
// check. ContactHint names the channel the code was (nominally) sent to.
type Challenge struct {
	ID          string
	ContactHint string
}

// Begin verifies the credentials and opens a verification challenge.
// The generated code is logged in place of real delivery.
func (s *Service) Begin(ctx context.Context, username, password string) (Challenge, error) {
	user, err := s.creds.Verify(ctx, username, password)
	if err != nil {
		return Challenge{}, err
	}

	challenge := Challenge{
		ID:          s.random.Token("chal_"),
		ContactHint: contactHint(user),
	}
	code := s.random.Digits(CodeLength)

	s.mu.Lock()
	s.pending[challenge.ID] = user.Identity()
	s.mu.Unlock()

	// Simulated dispatch: a real implementation would send this via the
	// user's contact method.
	s.logger.Info("verification code dispatched",
		slog.String("username", user.Username),
		slog.String("via", challenge.ContactHint),
		slog.String("code", code),
	)
	return challenge, nil
}

// Verify completes a challenge and logs the user in. Any six-digit code
// passes; a code of the wrong shape fails with ErrInvalidCode and leaves
// the challenge open.
func (s *Service) Verify(ctx context.Context, challengeID, code string) (*model.Session, error) {
	if !validCode(code) {
		return nil, model.ErrInvalidCode
	}

	s.mu.Lock()
	user, ok := s.pending[challengeID]
	if ok {
		delete(s.pending, challengeID)
	}
	s.mu.Unlock()

	if !ok {
		return nil, model.ErrChallengeNotFound
	}
	return s.sessions.Login(ctx, user)
}

func validCode(code string) bool {
	if len(code) != CodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}

func contactHint(user model.UserRecord) string {
	// Phone deliberately wins over email, matching the message the
	// original app showed.
	switch {
	case user.Phone != "":
		return "phone"
	case user.Email != "":
		return "email"
	default:
		return "registered contact method"
	}
}
