package storage

import (
	"context"

	"github.com/fairhand/fairhand/internal/model"
)

// Storage defines the interface for data persistence. Everything lives for the
// process lifetime only; the server deliberately carries no durable state.
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Registered player operations
	SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error
	GetRegisteredPlayer(ctx context.Context, playerID model.PlayerID) (*model.RegisteredPlayer, error)
	GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error)

	// Match operations. The storage owns every Match; a PlayerID is only a
	// lookup key. Entries appear at login and disappear at logout.
	SaveMatch(ctx context.Context, match *model.Match) error
	GetMatch(ctx context.Context, playerID model.PlayerID) (*model.Match, error)
	DeleteMatch(ctx context.Context, playerID model.PlayerID) error
}
