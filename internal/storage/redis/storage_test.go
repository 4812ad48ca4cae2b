package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/partygamehq/partygame-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := goredis.NewClient(&goredis.Options{Addr: s.mini.Addr()})
	cfg := DefaultConfig()
	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TestSaveAndGetLobby() {
	lobby := &model.Lobby{
		Code:  "ABC123",
		Game:  model.GameImposter,
		Host:  "alice",
		Phase: model.PhaseSetup,
		Players: []model.Player{
			{Name: "alice"},
		},
		Votes: map[string][]string{"alice": {"bob"}},
	}
	s.Require().NoError(s.storage.SaveLobby(s.ctx, lobby))

	got, err := s.storage.GetLobby(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Equal(lobby, got)
}

func (s *StorageSuite) TestGetMissingLobby() {
	_, err := s.storage.GetLobby(s.ctx, "NOPE")
	s.ErrorIs(err, model.ErrLobbyNotFound)
}

func (s *StorageSuite) TestDeleteLobby() {
	s.Require().NoError(s.storage.SaveLobby(s.ctx, &model.Lobby{Code: "ABC123"}))
	s.Require().NoError(s.storage.DeleteLobby(s.ctx, "ABC123"))

	_, err := s.storage.GetLobby(s.ctx, "ABC123")
	s.ErrorIs(err, model.ErrLobbyNotFound)
}

func (s *StorageSuite) TestLobbyExists() {
	exists, err := s.storage.LobbyExists(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.False(exists)

	s.Require().NoError(s.storage.SaveLobby(s.ctx, &model.Lobby{Code: "ABC123"}))

	exists, err = s.storage.LobbyExists(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestKeysAreNamespaced() {
	s.Require().NoError(s.storage.SaveLobby(s.ctx, &model.Lobby{Code: "ABC123"}))
	s.True(s.mini.Exists("partygame:lobby:ABC123"))
}

func (s *StorageSuite) TestLobbyTTLIsSet() {
	s.Require().NoError(s.storage.SaveLobby(s.ctx, &model.Lobby{Code: "ABC123"}))
	s.Equal(24*time.Hour, s.mini.TTL("partygame:lobby:ABC123"))
}

func (s *StorageSuite) TestLobbyExpires() {
	s.Require().NoError(s.storage.SaveLobby(s.ctx, &model.Lobby{Code: "ABC123"}))

	s.mini.FastForward(25 * time.Hour)

	_, err := s.storage.GetLobby(s.ctx, "ABC123")
	s.ErrorIs(err, model.ErrLobbyNotFound)
}

func (s *StorageSuite) TestSaveRefreshesTTL() {
	s.Require().NoError(s.storage.SaveLobby(s.ctx, &model.Lobby{Code: "ABC123"}))

	s.mini.FastForward(12 * time.Hour)
	s.Require().NoError(s.storage.SaveLobby(s.ctx, &model.Lobby{Code: "ABC123"}))

	s.Equal(24*time.Hour, s.mini.TTL("partygame:lobby:ABC123"))
}

func (s *StorageSuite) TestWordBankHasNoTTL() {
	bank := &model.WordBank{
		Pairs: []model.WordPair{{Normie: "pizza", Imposters: []string{"calzone"}}},
	}
	s.Require().NoError(s.storage.SaveWordBank(s.ctx, bank))

	s.mini.FastForward(100 * time.Hour)

	got, err := s.storage.GetWordBank(s.ctx)
	s.Require().NoError(err)
	s.Equal(bank, got)
}

func (s *StorageSuite) TestMissingWordBank() {
	_, err := s.storage.GetWordBank(s.ctx)
	s.ErrorIs(err, model.ErrWordBankNotLoaded)
}
