package lobby

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/partygamehq/partygame-go/internal/dependencies/clock"
	"github.com/partygamehq/partygame-go/internal/dependencies/keylock"
	"github.com/partygamehq/partygame-go/internal/dependencies/random"
	"github.com/partygamehq/partygame-go/internal/model"
	"github.com/partygamehq/partygame-go/internal/services/imposter"
	"github.com/partygamehq/partygame-go/internal/services/view"
	"github.com/partygamehq/partygame-go/internal/storage"
)

const (
	// CodeLength is the length of generated lobby codes
	CodeLength = 6
	// CodeAlphabet is the characters used in lobby codes (avoids confusing chars)
	CodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	// maxCodeAttempts bounds the unique-code search; the code space is
	// far larger than any plausible lobby count, so hitting it means the
	// random source is broken rather than the space exhausted
	maxCodeAttempts = 100
)

// Service manages lobby lifecycle: creation, membership and views.
// It is the sole entry point for reads, so the imposter engine's lazy
// timer check runs on every view before projection.
type Service struct {
	storage        storage.Storage
	imposterEngine *imposter.Engine
	locks          *keylock.KeyedMutex
	clock          clock.Clock
	random         random.Random
	logger         *slog.Logger
}

// NewService creates a new lobby Service
func NewService(
	storage storage.Storage,
	imposterEngine *imposter.Engine,
	locks *keylock.KeyedMutex,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Service {
	return &Service{
		storage:        storage,
		imposterEngine: imposterEngine,
		locks:          locks,
		clock:          clock,
		random:         random,
		logger:         logger,
	}
}

// Create makes a new lobby hosted by hostName. The host is always the
// first member of the player list.
func (s *Service) Create(ctx context.Context, kind model.GameKind, hostName string) (*model.Lobby, error) {
	if !model.KnownGameKind(kind) {
		return nil, model.ErrUnknownGame
	}

	now := s.clock.Now()

	// Generate a unique lobby code
	var code model.LobbyCode
	for attempt := 0; ; attempt++ {
		if attempt >= maxCodeAttempts {
			return nil, fmt.Errorf("no unique lobby code after %d attempts", maxCodeAttempts)
		}
		code = model.LobbyCode(s.random.String(CodeLength, CodeAlphabet))
		exists, err := s.storage.LobbyExists(ctx, code)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
	}

	lobby := &model.Lobby{
		Code:      code,
		Game:      kind,
		Host:      hostName,
		Phase:     model.PhaseSetup,
		Players:   []model.Player{{Name: hostName}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if kind == model.GameImposter {
		lobby.Settings = model.DefaultImposterSettings()
		lobby.Votes = make(map[string][]string)
	}

	if err := s.storage.SaveLobby(ctx, lobby); err != nil {
		return nil, err
	}

	s.logger.Info("lobby created",
		slog.String("lobby", string(code)),
		slog.String("game", string(kind)),
		slog.String("host", hostName),
	)

	return lobby, nil
}

// Exists reports whether a lobby with the given code exists
func (s *Service) Exists(ctx context.Context, code model.LobbyCode) (bool, error) {
	return s.storage.LobbyExists(ctx, code)
}

// Join adds a player to a lobby. The join window closes once a round has
// started. Joining a lobby you are already in succeeds without mutation.
func (s *Service) Join(ctx context.Context, code model.LobbyCode, name string) (*model.Lobby, error) {
	s.locks.Lock(string(code))
	defer s.locks.Unlock(string(code))

	lobby, err := s.storage.GetLobby(ctx, code)
	if err != nil {
		return nil, err
	}

	if lobby.Phase != model.PhaseSetup {
		return nil, model.ErrPhaseLocked
	}

	if lobby.GetPlayer(name) != nil {
		return lobby, nil
	}

	lobby.Players = append(lobby.Players, model.Player{Name: name})
	lobby.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveLobby(ctx, lobby); err != nil {
		return nil, err
	}

	return lobby, nil
}

// Leave removes a player from a lobby. Leaving is best-effort: an unknown
// lobby or absent member is not an error. The host leaving destroys the
// lobby outright (no succession), as does the last member leaving.
func (s *Service) Leave(ctx context.Context, code model.LobbyCode, name string) error {
	s.locks.Lock(string(code))
	defer s.locks.Unlock(string(code))

	lobby, err := s.storage.GetLobby(ctx, code)
	if err != nil {
		if errors.Is(err, model.ErrLobbyNotFound) {
			return nil
		}
		return err
	}

	if name == "" {
		return nil
	}

	if lobby.IsHost(name) {
		s.logger.Info("host left, destroying lobby", slog.String("lobby", string(code)))
		return s.storage.DeleteLobby(ctx, code)
	}

	lobby.Players = slices.DeleteFunc(lobby.Players, func(p model.Player) bool {
		return p.Name == name
	})

	if len(lobby.Players) == 0 {
		return s.storage.DeleteLobby(ctx, code)
	}

	// A leaving voter's ledger entries stay; tallies only count members
	lobby.UpdatedAt = s.clock.Now()
	return s.storage.SaveLobby(ctx, lobby)
}

// View returns the phase-appropriate projection of a lobby for the
// requester, first applying any due discussion timer expiry.
func (s *Service) View(ctx context.Context, code model.LobbyCode, requester string) (*view.Lobby, error) {
	s.locks.Lock(string(code))
	defer s.locks.Unlock(string(code))

	lobby, err := s.storage.GetLobby(ctx, code)
	if err != nil {
		return nil, err
	}

	if s.imposterEngine.MaybeExpire(lobby) {
		if err := s.storage.SaveLobby(ctx, lobby); err != nil {
			return nil, err
		}
	}

	projected := view.Project(lobby, requester)
	return &projected, nil
}
