package imposter

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/partygamehq/partygame-go/internal/dependencies/clock"
	"github.com/partygamehq/partygame-go/internal/dependencies/keylock"
	"github.com/partygamehq/partygame-go/internal/dependencies/random"
	"github.com/partygamehq/partygame-go/internal/model"
	"github.com/partygamehq/partygame-go/internal/services/wordbank"
	"github.com/partygamehq/partygame-go/internal/storage"
)

// Engine owns the imposter game state machine: settings, role and word
// assignment, the discussion timer, vote collection and tallying.
type Engine struct {
	storage  storage.Storage
	wordBank *wordbank.Service
	locks    *keylock.KeyedMutex
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger
}

// NewEngine creates a new imposter Engine
func NewEngine(
	storage storage.Storage,
	wordBank *wordbank.Service,
	locks *keylock.KeyedMutex,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		storage:  storage,
		wordBank: wordBank,
		locks:    locks,
		clock:    clock,
		random:   random,
		logger:   logger,
	}
}

// EffectiveImposterCount resolves the configured settings to a concrete
// imposter count for n players. In percent mode the count is rounded from
// MaxPercent of n and clamped to [1, n-1] so at least one player on each
// side always exists. Fixed mode returns the configured count as-is;
// StartRound rejects it if it leaves no non-imposter.
func EffectiveImposterCount(settings model.ImposterSettings, n int) int {
	if settings.CountMode == model.CountModePercent {
		count := int(math.Round(float64(n) * float64(settings.MaxPercent) / 100.0))
		if count < 1 {
			count = 1
		}
		if count > n-1 {
			count = n - 1
		}
		return count
	}
	return settings.ImposterCount
}

// normalizeSettings fills defaults and validates the settings shape
func normalizeSettings(settings model.ImposterSettings) (model.ImposterSettings, error) {
	if settings.CountMode == "" {
		settings.CountMode = model.CountModeFixed
	}

	switch settings.CountMode {
	case model.CountModeFixed:
		if settings.ImposterCount < 1 {
			return settings, model.ErrInvalidSettings
		}
	case model.CountModePercent:
		if settings.MaxPercent < 1 || settings.MaxPercent > 100 {
			return settings, model.ErrInvalidSettings
		}
	default:
		return settings, model.ErrInvalidSettings
	}

	if settings.TimerSeconds < 1 {
		return settings, model.ErrInvalidSettings
	}

	return settings, nil
}

// ApplySettings replaces a lobby's settings wholesale. Host only.
func (e *Engine) ApplySettings(ctx context.Context, code model.LobbyCode, requester string, settings model.ImposterSettings) error {
	e.locks.Lock(string(code))
	defer e.locks.Unlock(string(code))

	lobby, err := e.storage.GetLobby(ctx, code)
	if err != nil {
		return err
	}

	if lobby.Game != model.GameImposter {
		return model.ErrInvalidState
	}
	if !lobby.IsHost(requester) {
		return model.ErrNotHost
	}

	settings, err = normalizeSettings(settings)
	if err != nil {
		return err
	}

	lobby.Settings = settings
	lobby.UpdatedAt = e.clock.Now()

	return e.storage.SaveLobby(ctx, lobby)
}

// StartRound validates settings against the current player count, assigns
// secret roles and words, picks a starting player and moves the lobby into
// the discussion phase. The whole assignment is one save; no partial state
// is ever observable. Restarting from any phase begins a fresh round with a
// cleared ledger and cleared secrets.
func (e *Engine) StartRound(ctx context.Context, code model.LobbyCode, requester string, settings model.ImposterSettings) error {
	e.locks.Lock(string(code))
	defer e.locks.Unlock(string(code))

	lobby, err := e.storage.GetLobby(ctx, code)
	if err != nil {
		return err
	}

	if lobby.Game != model.GameImposter {
		return model.ErrInvalidState
	}
	if !lobby.IsHost(requester) {
		return model.ErrNotHost
	}

	settings, err = normalizeSettings(settings)
	if err != nil {
		return err
	}

	playerCount := len(lobby.Players)
	effective := EffectiveImposterCount(settings, playerCount)
	if effective < 1 || playerCount <= effective {
		// At least one Normie must exist
		return model.ErrInvalidSettings
	}

	// One word pair for the round, drawn from the filtered pool.
	// Drawn before the lobby is touched: storage backends may hand out
	// the stored record itself, so a failure past the first mutation
	// would leave a half-started round observable without any save.
	pairs, err := e.wordBank.Pairs(settings.Categories)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		return model.ErrWordBankNotLoaded
	}
	pair := pairs[e.random.Intn(len(pairs))]

	sharedVariant := ""
	if settings.UseSameImposterWord && len(pair.Imposters) > 0 {
		sharedVariant = pair.Imposters[e.random.Intn(len(pair.Imposters))]
	}

	lobby.Settings = settings
	lobby.ClearRoundState()
	lobby.EffectiveImposters = effective

	// Sample imposters uniformly without replacement
	pool := make([]int, playerCount)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < effective; i++ {
		pick := e.random.Intn(len(pool))
		lobby.Players[pool[pick]].Role = model.RoleImposter
		pool = append(pool[:pick], pool[pick+1:]...)
	}
	for i := range lobby.Players {
		if lobby.Players[i].Role == "" {
			lobby.Players[i].Role = model.RoleNormie
		}
	}

	for i := range lobby.Players {
		switch lobby.Players[i].Role {
		case model.RoleNormie:
			lobby.Players[i].Word = pair.Normie
		case model.RoleImposter:
			if settings.UseSameImposterWord {
				lobby.Players[i].Word = sharedVariant
			} else if len(pair.Imposters) > 0 {
				lobby.Players[i].Word = pair.Imposters[e.random.Intn(len(pair.Imposters))]
			}
		}
	}

	lobby.StartingPlayer = lobby.Players[e.random.Intn(playerCount)].Name
	lobby.Phase = model.PhaseDiscussion
	lobby.TimerEndsAt = e.clock.Now().Add(time.Duration(settings.TimerSeconds) * time.Second)
	lobby.UpdatedAt = e.clock.Now()

	if err := e.storage.SaveLobby(ctx, lobby); err != nil {
		return err
	}

	e.logger.Info("round started",
		slog.String("lobby", string(code)),
		slog.Int("players", playerCount),
		slog.Int("imposters", effective),
		slog.Int("timer_seconds", settings.TimerSeconds),
	)

	return nil
}

// MaybeExpire flips an overdue discussion phase to voting. It mutates the
// given lobby in place and reports whether a transition happened; the caller
// owns the lobby's lock and the subsequent save. No background timer exists:
// expiry is evaluated opportunistically on every read, so a lobby nobody
// polls can sit past its deadline.
func (e *Engine) MaybeExpire(lobby *model.Lobby) bool {
	if lobby.Game != model.GameImposter || lobby.Phase != model.PhaseDiscussion {
		return false
	}
	if lobby.TimerEndsAt.IsZero() || e.clock.Now().Before(lobby.TimerEndsAt) {
		return false
	}

	lobby.Phase = model.PhaseVoting
	lobby.UpdatedAt = e.clock.Now()
	return true
}

// CastVote records a vote during the voting phase. Out-of-phase votes,
// votes beyond the per-voter cap and repeat targets are dropped without
// error; the client stays simple and the ledger stays within bounds.
// When the last allowed vote lands the round ends and tallies are computed.
func (e *Engine) CastVote(ctx context.Context, code model.LobbyCode, voter, target string) error {
	e.locks.Lock(string(code))
	defer e.locks.Unlock(string(code))

	lobby, err := e.storage.GetLobby(ctx, code)
	if err != nil {
		return err
	}

	if lobby.Game != model.GameImposter || lobby.Phase != model.PhaseVoting {
		return nil
	}
	if lobby.GetPlayer(voter) == nil || target == "" {
		return nil
	}

	if lobby.Votes == nil {
		lobby.Votes = make(map[string][]string)
	}

	recorded := lobby.Votes[voter]
	if len(recorded) >= lobby.EffectiveImposters || slices.Contains(recorded, target) {
		return nil
	}
	lobby.Votes[voter] = append(recorded, target)

	if lobby.TotalVotes() >= len(lobby.Players)*lobby.EffectiveImposters {
		e.endRound(lobby)
	}

	lobby.UpdatedAt = e.clock.Now()
	return e.storage.SaveLobby(ctx, lobby)
}

// endRound transitions to ended and computes raw vote tallies.
// Every player is listed, zero-vote players included; ties are reported
// as-is and left to the consumer.
func (e *Engine) endRound(lobby *model.Lobby) {
	lobby.Phase = model.PhaseEnded

	counts := make(map[string]int, len(lobby.Players))
	for _, p := range lobby.Players {
		counts[p.Name] = 0
	}
	for _, targets := range lobby.Votes {
		for _, target := range targets {
			if _, ok := counts[target]; ok {
				counts[target]++
			}
		}
	}
	lobby.VoteResults = counts

	e.logger.Info("round ended",
		slog.String("lobby", string(lobby.Code)),
		slog.Int("votes", lobby.TotalVotes()),
	)
}
