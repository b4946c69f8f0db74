package storage

import (
	"context"

	"github.com/squadhelper/tryouts/internal/model"
)

// Storage defines the interface for data persistence.
//
// The persisted layout is a flat key-value store with four logical keys:
// the current session, the user collection, the player sequence, and the
// sport catalog. Writes are synchronous; a crash between an in-memory
// mutation and its persist call loses the mutation.
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user model.UserRecord) error
	GetUserByUsername(ctx context.Context, username string) (model.UserRecord, error)
	ListUsers(ctx context.Context) ([]model.UserRecord, error)

	// Session operations; at most one session is stored
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context) (*model.Session, error)
	ClearSession(ctx context.Context) error

	// Player operations; insertion order is preserved by ListPlayers
	SavePlayer(ctx context.Context, entry model.PlayerEntry) error
	UpdatePlayer(ctx context.Context, entry model.PlayerEntry) error
	GetPlayer(ctx context.Context, id model.PlayerID) (model.PlayerEntry, error)
	ListPlayers(ctx context.Context) ([]model.PlayerEntry, error)

	// Sport catalog operations
	SaveSports(ctx context.Context, sports []string) error
	ListSports(ctx context.Context) ([]string, error)
}
