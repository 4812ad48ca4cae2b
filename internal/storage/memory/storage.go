package memory

import (
	"context"
	"sync"

	"github.com/partygamehq/partygame-go/internal/model"
	"github.com/partygamehq/partygame-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	lobbies  map[model.LobbyCode]*model.Lobby
	wordBank *model.WordBank
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		lobbies: make(map[model.LobbyCode]*model.Lobby),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Lobby operations

func (s *Storage) SaveLobby(ctx context.Context, lobby *model.Lobby) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lobbies[lobby.Code] = lobby
	return nil
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
	return nil
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
	return nil
}

func (s *Storage) GetWordBank(ctx context.Context) (*model.WordBank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.wordBank == nil {
		return nil, model.ErrWordBankNotLoaded
	}
	return s.wordBank, nil
}
