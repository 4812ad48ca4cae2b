package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partygamehq/partygame-go/internal/model"
)

func imposterLobby(phase model.Phase) *model.Lobby {
	return &model.Lobby{
		Code:  "ABC123",
		Game:  model.GameImposter,
		Host:  "alice",
		Phase: phase,
		Players: []model.Player{
			{Name: "alice", Role: model.RoleImposter, Word: "calzone"},
			{Name: "bob", Role: model.RoleNormie, Word: "pizza"},
			{Name: "carol", Role: model.RoleNormie, Word: "pizza"},
		},
		Settings:           model.DefaultImposterSettings(),
		EffectiveImposters: 1,
		StartingPlayer:     "bob",
		Votes: map[string][]string{
			"alice": {"bob"},
			"bob":   {"alice"},
		},
	}
}

func TestProjectSetupHidesSecrets(t *testing.T) {
	lobby := imposterLobby(model.PhaseSetup)

	v := Project(lobby, "bob")

	assert.Equal(t, "setup", v.Phase)
	require.Len(t, v.Players, 3)
	for _, p := range v.Players {
		assert.Empty(t, p.Role)
		assert.Empty(t, p.Word)
	}
	require.NotNil(t, v.Settings)
	assert.Nil(t, v.Me)
	assert.Nil(t, v.VoteResults)
}

func TestProjectDiscussionShowsOnlyOwnSecret(t *testing.T) {
	lobby := imposterLobby(model.PhaseDiscussion)
	lobby.TimerEndsAt = time.Date(2024, 6, 1, 12, 1, 0, 0, time.UTC)

	v := Project(lobby, "bob")

	require.NotNil(t, v.Me)
	assert.Equal(t, "Normie", v.Me.Role)
	assert.Equal(t, "pizza", v.Me.Word)
	assert.Equal(t, "bob", v.StartingPlayer)
	require.NotNil(t, v.TimerEndsAt)
	assert.Equal(t, lobby.TimerEndsAt, *v.TimerEndsAt)

	for _, p := range v.Players {
		assert.Empty(t, p.Role)
		assert.Empty(t, p.Word)
	}
}

func TestProjectDiscussionNonMemberSeesNoSecret(t *testing.T) {
	lobby := imposterLobby(model.PhaseDiscussion)

	v := Project(lobby, "mallory")

	assert.Nil(t, v.Me)
	assert.False(t, v.IsHost)
	for _, p := range v.Players {
		assert.Empty(t, p.Role)
		assert.Empty(t, p.Word)
	}
}

func TestProjectVotingShowsOnlyOwnVotes(t *testing.T) {
	lobby := imposterLobby(model.PhaseVoting)

	v := Project(lobby, "bob")

	assert.Equal(t, []string{"alice"}, v.MyVotes)
	assert.Nil(t, v.VoteResults)
	assert.Nil(t, v.Me)
	for _, p := range v.Players {
		assert.Empty(t, p.Role)
		assert.Empty(t, p.Word)
	}
}

func TestProjectVotingWithoutVotes(t *testing.T) {
	lobby := imposterLobby(model.PhaseVoting)

	v := Project(lobby, "carol")

	assert.Empty(t, v.MyVotes)
}

func TestProjectEndedRevealsEverything(t *testing.T) {
	lobby := imposterLobby(model.PhaseEnded)
	lobby.VoteResults = map[string]int{"alice": 1, "bob": 1, "carol": 0}

	v := Project(lobby, "carol")

	require.Len(t, v.Players, 3)
	assert.Equal(t, "Imposter", v.Players[0].Role)
	assert.Equal(t, "calzone", v.Players[0].Word)
	assert.Equal(t, "Normie", v.Players[1].Role)
	assert.Equal(t, lobby.VoteResults, v.VoteResults)
	require.NotNil(t, v.Me)
	assert.Equal(t, "carol", v.Me.Name)
}

func TestProjectHostFlag(t *testing.T) {
	lobby := imposterLobby(model.PhaseSetup)

	assert.True(t, Project(lobby, "alice").IsHost)
	assert.False(t, Project(lobby, "bob").IsHost)
	assert.False(t, Project(lobby, "").IsHost)
}

func TestProjectSpinLobby(t *testing.T) {
	lobby := &model.Lobby{
		Code: "ABC123",
		Game: model.GameSpinTheBottle,
		Host: "alice",
		Players: []model.Player{
			{Name: "alice"},
			{Name: "bob"},
		},
		LastResult: "The bottle points to... bob!",
	}

	v := Project(lobby, "bob")

	assert.Equal(t, "spin-the-bottle", v.Game)
	assert.Empty(t, v.Phase)
	assert.Equal(t, "The bottle points to... bob!", v.LastResult)
	assert.Nil(t, v.Settings)
}
