package bottle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/partygamehq/partygame-go/internal/dependencies/keylock"
	"github.com/partygamehq/partygame-go/internal/dependencies/mocks"
	"github.com/partygamehq/partygame-go/internal/model"
	"github.com/partygamehq/partygame-go/internal/storage/memory"
	"github.com/partygamehq/partygame-go/internal/testutil"
)

type EngineSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	engine  *Engine
	ctx     context.Context
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.engine = NewEngine(s.storage, keylock.New(), s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *EngineSuite) createLobby(names ...string) *model.Lobby {
	players := make([]model.Player, len(names))
	for i, name := range names {
		players[i] = model.Player{Name: name}
	}

	lobby := &model.Lobby{
		Code:    "BTL111",
		Game:    model.GameSpinTheBottle,
		Host:    names[0],
		Players: players,
	}
	s.Require().NoError(s.storage.SaveLobby(s.ctx, lobby))
	return lobby
}

func (s *EngineSuite) TestSpinPicksAPlayer() {
	s.createLobby("alice", "bob", "carol")
	s.random.QueueIntn(1)

	result, err := s.engine.Spin(s.ctx, "BTL111", "alice")
	s.Require().NoError(err)

	s.Equal("The bottle points to... bob!", result)

	lobby, err := s.storage.GetLobby(s.ctx, "BTL111")
	s.Require().NoError(err)
	s.Equal(result, lobby.LastResult)
}

func (s *EngineSuite) TestSpinOverwritesPreviousResult() {
	s.createLobby("alice", "bob")
	s.random.QueueIntn(1, 0)

	_, err := s.engine.Spin(s.ctx, "BTL111", "alice")
	s.Require().NoError(err)
	result, err := s.engine.Spin(s.ctx, "BTL111", "alice")
	s.Require().NoError(err)

	s.Equal("The bottle points to... alice!", result)
}

func (s *EngineSuite) TestSpinRequiresHost() {
	s.createLobby("alice", "bob")

	_, err := s.engine.Spin(s.ctx, "BTL111", "bob")
	s.ErrorIs(err, model.ErrNotHost)

	lobby, err := s.storage.GetLobby(s.ctx, "BTL111")
	s.Require().NoError(err)
	s.Empty(lobby.LastResult)
}

func (s *EngineSuite) TestSpinNeedsTwoPlayers() {
	s.createLobby("alice")

	_, err := s.engine.Spin(s.ctx, "BTL111", "alice")
	s.ErrorIs(err, model.ErrInvalidState)
}

func (s *EngineSuite) TestSpinWrongGame() {
	lobby := s.createLobby("alice", "bob")
	lobby.Game = model.GameImposter
	s.Require().NoError(s.storage.SaveLobby(s.ctx, lobby))

	_, err := s.engine.Spin(s.ctx, "BTL111", "alice")
	s.ErrorIs(err, model.ErrInvalidState)
}

func (s *EngineSuite) TestSpinUnknownLobby() {
	_, err := s.engine.Spin(s.ctx, "NOPE", "alice")
	s.ErrorIs(err, model.ErrLobbyNotFound)
}
