package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/partygamehq/partygame-go/internal/model"
	"github.com/partygamehq/partygame-go/internal/testutil"
)

type StorageSuite struct {
	suite.Suite
	path    string
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "db.json")
	s.storage = New(s.path, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *StorageSuite) TestSaveAndGetLobby() {
	lobby := &model.Lobby{Code: "ABC123", Game: model.GameImposter, Host: "alice"}
	s.Require().NoError(s.storage.SaveLobby(s.ctx, lobby))

	got, err := s.storage.GetLobby(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Equal(lobby.Code, got.Code)
	s.Equal(lobby.Host, got.Host)
}

func (s *StorageSuite) TestGetMissingLobby() {
	_, err := s.storage.GetLobby(s.ctx, "NOPE")
	s.ErrorIs(err, model.ErrLobbyNotFound)
}

func (s *StorageSuite) TestSnapshotSurvivesRestart() {
	lobby := &model.Lobby{
		Code:  "ABC123",
		Game:  model.GameImposter,
		Host:  "alice",
		Phase: model.PhaseVoting,
		Players: []model.Player{
			{Name: "alice", Role: model.RoleImposter, Word: "calzone"},
		},
		Votes: map[string][]string{"alice": {"bob"}},
	}
	s.Require().NoError(s.storage.SaveLobby(s.ctx, lobby))

	reopened := New(s.path, testutil.NopLogger())
	got, err := reopened.GetLobby(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Equal(model.PhaseVoting, got.Phase)
	s.Equal(model.RoleImposter, got.Players[0].Role)
	s.Equal([]string{"bob"}, got.Votes["alice"])
}

func (s *StorageSuite) TestDeleteLobbyPersists() {
	s.Require().NoError(s.storage.SaveLobby(s.ctx, &model.Lobby{Code: "ABC123"}))
	s.Require().NoError(s.storage.DeleteLobby(s.ctx, "ABC123"))

	reopened := New(s.path, testutil.NopLogger())
	_, err := reopened.GetLobby(s.ctx, "ABC123")
	s.ErrorIs(err, model.ErrLobbyNotFound)
}

func (s *StorageSuite) TestMissingSnapshotStartsEmpty() {
	exists, err := s.storage.LobbyExists(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *StorageSuite) TestCorruptSnapshotStartsEmpty() {
	s.Require().NoError(os.WriteFile(s.path, []byte("{not json"), 0644))

	storage := New(s.path, testutil.NopLogger())
	exists, err := storage.LobbyExists(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.False(exists)

	// And it can still save afterwards
	s.NoError(storage.SaveLobby(s.ctx, &model.Lobby{Code: "ABC123"}))
}

func (s *StorageSuite) TestWordBankPersists() {
	bank := &model.WordBank{
		Pairs: []model.WordPair{{Normie: "pizza", Imposters: []string{"calzone"}}},
	}
	s.Require().NoError(s.storage.SaveWordBank(s.ctx, bank))

	reopened := New(s.path, testutil.NopLogger())
	got, err := reopened.GetWordBank(s.ctx)
	s.Require().NoError(err)
	s.Equal(bank, got)
}

func (s *StorageSuite) TestMissingWordBank() {
	_, err := s.storage.GetWordBank(s.ctx)
	s.ErrorIs(err, model.ErrWordBankNotLoaded)
}
