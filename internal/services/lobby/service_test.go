package lobby

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/partygamehq/partygame-go/internal/dependencies/keylock"
	"github.com/partygamehq/partygame-go/internal/dependencies/mocks"
	"github.com/partygamehq/partygame-go/internal/model"
	"github.com/partygamehq/partygame-go/internal/services/imposter"
	"github.com/partygamehq/partygame-go/internal/services/wordbank"
	"github.com/partygamehq/partygame-go/internal/storage/memory"
	"github.com/partygamehq/partygame-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage  *memory.Storage
	wordBank *wordbank.Service
	engine   *imposter.Engine
	clock    *mocks.MockClock
	random   *mocks.MockRandom
	service  *Service
	ctx      context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	logger := testutil.NopLogger()
	s.wordBank = wordbank.New(s.storage, logger)
	locks := keylock.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.engine = imposter.NewEngine(s.storage, s.wordBank, locks, s.clock, s.random, logger)
	s.service = NewService(s.storage, s.engine, locks, s.clock, s.random, logger)
	s.ctx = context.Background()

	_ = s.wordBank.LoadBank(&model.WordBank{
		Pairs: []model.WordPair{
			{Normie: "pizza", Imposters: []string{"calzone"}},
		},
	})
}

// Create tests

func (s *ServiceSuite) TestCreateImposterLobby() {
	s.random.QueueString("ABC123")

	lobby, err := s.service.Create(s.ctx, model.GameImposter, "alice")
	s.Require().NoError(err)

	s.Equal(model.LobbyCode("ABC123"), lobby.Code)
	s.Equal(model.PhaseSetup, lobby.Phase)
	s.Equal("alice", lobby.Host)
	s.Len(lobby.Players, 1)
	s.Equal("alice", lobby.Players[0].Name)
	s.Equal(model.DefaultImposterSettings(), lobby.Settings)
}

func (s *ServiceSuite) TestCreateSpinLobby() {
	s.random.QueueString("ABC123")

	lobby, err := s.service.Create(s.ctx, model.GameSpinTheBottle, "alice")
	s.Require().NoError(err)

	s.Equal(model.GameSpinTheBottle, lobby.Game)
	s.Nil(lobby.Votes)
}

func (s *ServiceSuite) TestCreateUnknownGame() {
	_, err := s.service.Create(s.ctx, "charades", "alice")
	s.ErrorIs(err, model.ErrUnknownGame)
}

func (s *ServiceSuite) TestCreateRetriesOnCodeCollision() {
	s.random.QueueString("ABC123", "ABC123", "XYZ789")

	first, err := s.service.Create(s.ctx, model.GameImposter, "alice")
	s.Require().NoError(err)
	second, err := s.service.Create(s.ctx, model.GameImposter, "bob")
	s.Require().NoError(err)

	s.Equal(model.LobbyCode("ABC123"), first.Code)
	s.Equal(model.LobbyCode("XYZ789"), second.Code)
}

func (s *ServiceSuite) TestCreateGivesUpWhenCodesNeverUnique() {
	s.random.QueueString("ABC123")
	_, err := s.service.Create(s.ctx, model.GameImposter, "alice")
	s.Require().NoError(err)

	// A random source that only ever repeats the taken code must fail,
	// not loop forever
	for i := 0; i < maxCodeAttempts; i++ {
		s.random.QueueString("ABC123")
	}
	_, err = s.service.Create(s.ctx, model.GameImposter, "bob")
	s.Error(err)
}

func (s *ServiceSuite) TestCreateIsPersisted() {
	s.random.QueueString("ABC123")

	_, err := s.service.Create(s.ctx, model.GameImposter, "alice")
	s.Require().NoError(err)

	exists, err := s.service.Exists(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.True(exists)
}

// Join tests

func (s *ServiceSuite) TestJoinAddsPlayer() {
	s.random.QueueString("ABC123")
	_, _ = s.service.Create(s.ctx, model.GameImposter, "alice")

	lobby, err := s.service.Join(s.ctx, "ABC123", "bob")
	s.Require().NoError(err)

	s.Len(lobby.Players, 2)
	s.Equal("bob", lobby.Players[1].Name)
}

func (s *ServiceSuite) TestJoinIsIdempotent() {
	s.random.QueueString("ABC123")
	_, _ = s.service.Create(s.ctx, model.GameImposter, "alice")
	_, _ = s.service.Join(s.ctx, "ABC123", "bob")

	lobby, err := s.service.Join(s.ctx, "ABC123", "bob")
	s.Require().NoError(err)
	s.Len(lobby.Players, 2)
}

func (s *ServiceSuite) TestJoinUnknownLobby() {
	_, err := s.service.Join(s.ctx, "NOPE", "bob")
	s.ErrorIs(err, model.ErrLobbyNotFound)
}

func (s *ServiceSuite) TestJoinClosedAfterRoundStart() {
	s.random.QueueString("ABC123")
	_, _ = s.service.Create(s.ctx, model.GameImposter, "alice")
	_, _ = s.service.Join(s.ctx, "ABC123", "bob")
	_, _ = s.service.Join(s.ctx, "ABC123", "carol")
	s.Require().NoError(s.engine.StartRound(s.ctx, "ABC123", "alice", model.DefaultImposterSettings()))

	_, err := s.service.Join(s.ctx, "ABC123", "dave")
	s.ErrorIs(err, model.ErrPhaseLocked)
}

// Leave tests

func (s *ServiceSuite) TestLeaveRemovesPlayer() {
	s.random.QueueString("ABC123")
	_, _ = s.service.Create(s.ctx, model.GameImposter, "alice")
	_, _ = s.service.Join(s.ctx, "ABC123", "bob")

	s.Require().NoError(s.service.Leave(s.ctx, "ABC123", "bob"))

	lobby, err := s.storage.GetLobby(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Len(lobby.Players, 1)
}

func (s *ServiceSuite) TestHostLeavingDestroysLobby() {
	s.random.QueueString("ABC123")
	_, _ = s.service.Create(s.ctx, model.GameImposter, "alice")
	_, _ = s.service.Join(s.ctx, "ABC123", "bob")

	s.Require().NoError(s.service.Leave(s.ctx, "ABC123", "alice"))

	exists, err := s.service.Exists(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *ServiceSuite) TestLeaveUnknownLobbyIsFine() {
	s.NoError(s.service.Leave(s.ctx, "NOPE", "bob"))
}

func (s *ServiceSuite) TestLeaveAbsentMemberIsFine() {
	s.random.QueueString("ABC123")
	_, _ = s.service.Create(s.ctx, model.GameImposter, "alice")

	s.NoError(s.service.Leave(s.ctx, "ABC123", "mallory"))

	lobby, err := s.storage.GetLobby(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Len(lobby.Players, 1)
}

// View tests

func (s *ServiceSuite) TestViewAppliesTimerExpiry() {
	s.random.QueueString("ABC123")
	_, _ = s.service.Create(s.ctx, model.GameImposter, "alice")
	_, _ = s.service.Join(s.ctx, "ABC123", "bob")
	_, _ = s.service.Join(s.ctx, "ABC123", "carol")
	s.Require().NoError(s.engine.StartRound(s.ctx, "ABC123", "alice", model.DefaultImposterSettings()))

	s.clock.Advance(61 * time.Second)

	v, err := s.service.View(s.ctx, "ABC123", "alice")
	s.Require().NoError(err)
	s.Equal(string(model.PhaseVoting), v.Phase)

	// The transition is persisted, not just projected
	lobby, err := s.storage.GetLobby(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Equal(model.PhaseVoting, lobby.Phase)
}

func (s *ServiceSuite) TestViewUnknownLobby() {
	_, err := s.service.View(s.ctx, "NOPE", "alice")
	s.ErrorIs(err, model.ErrLobbyNotFound)
}
