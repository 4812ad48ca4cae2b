// Package view derives per-requester projections of lobby records.
//
// Projection is the secrecy boundary: whatever a handler serialises comes
// from here, so no client can receive another player's role or word before
// the round has ended.
package view

import (
	"time"

	"github.com/partygamehq/partygame-go/internal/model"
)

// Player is a lobby member as one particular requester may see them
type Player struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
	Word string `json:"word,omitempty"`
}

// Lobby is the phase-appropriate projection of a lobby for one requester
type Lobby struct {
	Code    string   `json:"code"`
	Game    string   `json:"game"`
	Host    string   `json:"host"`
	Phase   string   `json:"phase,omitempty"`
	Players []Player `json:"players"`
	IsHost  bool     `json:"isHost"`

	// Imposter fields
	Settings       *model.ImposterSettings `json:"settings,omitempty"`
	Me             *Player                 `json:"me,omitempty"`
	StartingPlayer string                  `json:"startingPlayer,omitempty"`
	TimerEndsAt    *time.Time              `json:"timerEndsAt,omitempty"`
	MyVotes        []string                `json:"myVotes,omitempty"`
	VoteResults    map[string]int          `json:"voteResults,omitempty"`

	// Spin-the-bottle fields
	LastResult string `json:"lastResult,omitempty"`
}

// Project computes the view of lobby for the given requester.
//
// Visibility per imposter phase:
//   - setup: players and settings, no secrets
//   - discussion: own role/word as "me", everyone else names only
//   - voting: names only plus the requester's own vote list
//   - ended: full reveal with vote tallies
//
// Spin-the-bottle lobbies look identical to every requester.
func Project(lobby *model.Lobby, requester string) Lobby {
	v := Lobby{
		Code:   string(lobby.Code),
		Game:   string(lobby.Game),
		Host:   lobby.Host,
		IsHost: lobby.IsHost(requester),
	}

	if lobby.Game == model.GameSpinTheBottle {
		v.Players = names(lobby.Players)
		v.LastResult = lobby.LastResult
		return v
	}

	v.Phase = string(lobby.Phase)
	settings := lobby.Settings
	v.Settings = &settings

	switch lobby.Phase {
	case model.PhaseDiscussion:
		v.Players = names(lobby.Players)
		v.Me = me(lobby, requester)
		v.StartingPlayer = lobby.StartingPlayer
		if !lobby.TimerEndsAt.IsZero() {
			t := lobby.TimerEndsAt
			v.TimerEndsAt = &t
		}
	case model.PhaseVoting:
		v.Players = names(lobby.Players)
		v.StartingPlayer = lobby.StartingPlayer
		if votes := lobby.Votes[requester]; len(votes) > 0 {
			v.MyVotes = append([]string(nil), votes...)
		}
	case model.PhaseEnded:
		v.Players = revealed(lobby.Players)
		v.Me = me(lobby, requester)
		v.StartingPlayer = lobby.StartingPlayer
		v.VoteResults = lobby.VoteResults
	default: // setup
		v.Players = names(lobby.Players)
	}

	return v
}

// names strips all secret fields
func names(players []model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = Player{Name: p.Name}
	}
	return out
}

// revealed keeps roles and words, for the ended phase only
func revealed(players []model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = Player{Name: p.Name, Role: string(p.Role), Word: p.Word}
	}
	return out
}

// me returns the requester's own full record, if they are a member
func me(lobby *model.Lobby, requester string) *Player {
	p := lobby.GetPlayer(requester)
	if p == nil {
		return nil
	}
	return &Player{Name: p.Name, Role: string(p.Role), Word: p.Word}
}
