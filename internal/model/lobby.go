package model

import "time"

// LobbyCode is a short human-readable identifier for joining lobbies
type LobbyCode string

// GameKind identifies which game a lobby is hosting
type GameKind string

const (
	GameImposter      GameKind = "imposter"
	GameSpinTheBottle GameKind = "spin-the-bottle"
)

// KnownGameKind reports whether kind is a game this server can host
func KnownGameKind(kind GameKind) bool {
	return kind == GameImposter || kind == GameSpinTheBottle
}

// Phase is the discrete stage of an imposter round.
// Transitions are linear: setup -> discussion -> voting -> ended,
// re-entering setup only via a host-initiated new round.
type Phase string

const (
	PhaseSetup      Phase = "setup"
	PhaseDiscussion Phase = "discussion"
	PhaseVoting     Phase = "voting"
	PhaseEnded      Phase = "ended"
)

// Lobby is a group of players sharing one game session.
// It is the unit of persistence: every mutation saves the whole record.
type Lobby struct {
	Code    LobbyCode `json:"code"`
	Game    GameKind  `json:"game"`
	Host    string    `json:"host"`
	Phase   Phase     `json:"phase"`
	Players []Player  `json:"players"`

	// Imposter-game state
	Settings ImposterSettings `json:"settings"`
	// Votes is the vote ledger: voter name -> ordered distinct targets,
	// capped at EffectiveImposters entries per voter.
	Votes map[string][]string `json:"votes,omitempty"`
	// VoteResults holds raw received-vote counts once the round has ended.
	// Every player appears, zero-vote players included. Ties are not broken.
	VoteResults map[string]int `json:"voteResults,omitempty"`
	// EffectiveImposters is the imposter count resolved at round start,
	// frozen so percent-mode settings stay stable for vote capping.
	EffectiveImposters int `json:"effectiveImposters,omitempty"`
	// StartingPlayer is a presentation hint only, not an authority.
	StartingPlayer string    `json:"startingPlayer,omitempty"`
	TimerEndsAt    time.Time `json:"timerEndsAt,omitzero"`

	// Spin-the-bottle state: the latest spin, overwritten each time.
	LastResult string `json:"lastResult,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GetPlayer returns the player with the given name, or nil if absent
func (l *Lobby) GetPlayer(name string) *Player {
	for i := range l.Players {
		if l.Players[i].Name == name {
			return &l.Players[i]
		}
	}
	return nil
}

// IsHost reports whether name is this lobby's host
func (l *Lobby) IsHost(name string) bool {
	return name != "" && l.Host == name
}

// TotalVotes returns the number of votes cast across all voters
func (l *Lobby) TotalVotes() int {
	total := 0
	for _, targets := range l.Votes {
		total += len(targets)
	}
	return total
}

// ClearRoundState removes all per-round state (ledger, tallies, secrets)
// so nothing leaks into the next round
func (l *Lobby) ClearRoundState() {
	l.Votes = make(map[string][]string)
	l.VoteResults = nil
	l.EffectiveImposters = 0
	l.StartingPlayer = ""
	l.TimerEndsAt = time.Time{}
	for i := range l.Players {
		l.Players[i].Role = ""
		l.Players[i].Word = ""
	}
}
