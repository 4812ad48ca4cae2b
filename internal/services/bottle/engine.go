package bottle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/partygamehq/partygame-go/internal/dependencies/clock"
	"github.com/partygamehq/partygame-go/internal/dependencies/keylock"
	"github.com/partygamehq/partygame-go/internal/dependencies/random"
	"github.com/partygamehq/partygame-go/internal/model"
	"github.com/partygamehq/partygame-go/internal/storage"
)

// Engine runs spin-the-bottle. There is no phase machine and no secrecy:
// the latest spin result is a single attribute visible to everyone,
// overwritten on each spin.
type Engine struct {
	storage storage.Storage
	locks   *keylock.KeyedMutex
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewEngine creates a new spin-the-bottle Engine
func NewEngine(
	storage storage.Storage,
	locks *keylock.KeyedMutex,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		storage: storage,
		locks:   locks,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// Spin picks one player uniformly at random and records the result.
// Host only; needs at least two players to be worth spinning.
func (e *Engine) Spin(ctx context.Context, code model.LobbyCode, requester string) (string, error) {
	e.locks.Lock(string(code))
	defer e.locks.Unlock(string(code))

	lobby, err := e.storage.GetLobby(ctx, code)
	if err != nil {
		return "", err
	}

	if lobby.Game != model.GameSpinTheBottle {
		return "", model.ErrInvalidState
	}
	if !lobby.IsHost(requester) {
		return "", model.ErrNotHost
	}
	if len(lobby.Players) < 2 {
		return "", model.ErrInvalidState
	}

	chosen := lobby.Players[e.random.Intn(len(lobby.Players))]
	lobby.LastResult = fmt.Sprintf("The bottle points to... %s!", chosen.Name)
	lobby.UpdatedAt = e.clock.Now()

	if err := e.storage.SaveLobby(ctx, lobby); err != nil {
		return "", err
	}

	e.logger.Info("bottle spun",
		slog.String("lobby", string(code)),
		slog.String("chosen", chosen.Name),
	)

	return lobby.LastResult, nil
}
