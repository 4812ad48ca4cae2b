package storage

import (
	"context"

	"github.com/partygamehq/partygame-go/internal/model"
)

// Storage defines the interface for data persistence.
// Lobbies are saved whole on every mutation; there is no partial update.
//
// GetLobby may return a pointer aliasing the backend's own record, so an
// in-place mutation can become visible (or be flushed to disk by a later
// unrelated save) without SaveLobby ever being called. Callers mutate only
// under the lobby's keyed lock, only once no further failure is possible,
// and follow every mutation with SaveLobby.
type Storage interface {
	// Lobby operations
	SaveLobby(ctx context.Context, lobby *model.Lobby) error
	GetLobby(ctx context.Context, code model.LobbyCode) (*model.Lobby, error)
	DeleteLobby(ctx context.Context, code model.LobbyCode) error
	LobbyExists(ctx context.Context, code model.LobbyCode) (bool, error)

	// Word bank operations
	SaveWordBank(ctx context.Context, bank *model.WordBank) error
	GetWordBank(ctx context.Context) (*model.WordBank, error)
}
