// Package file implements storage as a single JSON snapshot on disk.
//
// The whole lobby map is rewritten on every mutating call. This is the
// simplest durable backend for a single-process host; for anything bigger
// use the redis backend.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/partygamehq/partygame-go/internal/model"
	"github.com/partygamehq/partygame-go/internal/storage"
)

// snapshot is the on-disk layout
type snapshot struct {
	Lobbies  map[model.LobbyCode]*model.Lobby `json:"lobbies"`
	WordBank *model.WordBank                  `json:"wordBank,omitempty"`
}

// Storage is a file-backed implementation of the storage interface
type Storage struct {
	path   string
	logger *slog.Logger

	mu       sync.RWMutex
	lobbies  map[model.LobbyCode]*model.Lobby
	wordBank *model.WordBank
}

// New creates a file storage backed by the snapshot at path.
// A missing or unreadable snapshot is not an error; the store starts empty.
func New(path string, logger *slog.Logger) *Storage {
	s := &Storage{
		path:    path,
		logger:  logger,
		lobbies: make(map[model.LobbyCode]*model.Lobby),
	}
	s.load()
	return s
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("could not read snapshot, starting empty",
				slog.String("path", s.path),
				slog.String("error", err.Error()),
			)
		}
		return
	}
	if len(data) == 0 {
		return
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Warn("could not parse snapshot, starting empty",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
		return
	}

	if snap.Lobbies != nil {
		s.lobbies = snap.Lobbies
	}
	s.wordBank = snap.WordBank
}

// persist writes the whole snapshot. Callers must hold the write lock.
// Write-then-rename so a crash mid-write never corrupts the snapshot.
func (s *Storage) persist() error {
	snap := snapshot{
		Lobbies:  s.lobbies,
		WordBank: s.wordBank,
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".snapshot-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Lobby operations

func (s *Storage) SaveLobby(ctx context.Context, lobby *model.Lobby) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lobbies[lobby.Code] = lobby
	return s.persist()
}

func (s *Storage) GetLobby(ctx context.Context, code model.LobbyCode) (*model.Lobby, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lobby, ok := s.lobbies[code]
	if !ok {
		return nil, model.ErrLobbyNotFound
	}
	return lobby, nil
}

func (s *Storage) DeleteLobby(ctx context.Context, code model.LobbyCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lobbies, code)
	return s.persist()
}

func (s *Storage) LobbyExists(ctx context.Context, code model.LobbyCode) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.lobbies[code]
	return ok, nil
}

// Word bank operations

func (s *Storage) SaveWordBank(ctx context.Context, bank *model.WordBank) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wordBank = bank
	return s.persist()
}

func (s *Storage) GetWordBank(ctx context.Context) (*model.WordBank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.wordBank == nil {
		return nil, model.ErrWordBankNotLoaded
	}
	return s.wordBank, nil
}
