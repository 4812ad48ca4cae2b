package wordbank

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sync"

	"github.com/partygamehq/partygame-go/internal/model"
	"github.com/partygamehq/partygame-go/internal/storage"
)

// Service supplies (normal word, imposter variants) pairs grouped by category.
// The bank is static reference data: loaded once, read on every round start.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.RWMutex
	bank   *model.WordBank
	loaded bool
}

// New creates a new word bank service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// LoadFromFile loads the word bank from a JSON file and persists it to
// storage for future use
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var bank model.WordBank
	if err := json.Unmarshal(data, &bank); err != nil {
		return err
	}

	if err := s.storage.SaveWordBank(ctx, &bank); err != nil {
		return err
	}

	return s.LoadBank(&bank)
}

// LoadFromStorage loads a previously persisted word bank
func (s *Service) LoadFromStorage(ctx context.Context) error {
	bank, err := s.storage.GetWordBank(ctx)
	if err != nil {
		return err
	}
	return s.LoadBank(bank)
}

// LoadBank directly loads a word bank (useful for testing)
func (s *Service) LoadBank(bank *model.WordBank) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bank = bank
	s.loaded = true
	return nil
}

// IsLoaded returns whether the word bank has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Categories returns the category list for settings UIs
func (s *Service) Categories() []model.WordCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.bank == nil {
		return nil
	}
	categories := make([]model.WordCategory, len(s.bank.Categories))
	copy(categories, s.bank.Categories)
	return categories
}

// Pairs returns the word pairs matching the given category filter.
// An empty filter means all pairs. A filter matching nothing falls back
// to the full pool so a round can always start.
func (s *Service) Pairs(filter []string) ([]model.WordPair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded || s.bank == nil {
		return nil, model.ErrWordBankNotLoaded
	}

	if len(filter) == 0 {
		return s.allPairs(), nil
	}

	wanted := make(map[string]struct{}, len(filter))
	for _, id := range filter {
		wanted[id] = struct{}{}
	}

	var pairs []model.WordPair
	for _, p := range s.bank.Pairs {
		if _, ok := wanted[p.Category]; ok {
			pairs = append(pairs, p)
		}
	}

	if len(pairs) == 0 {
		s.logger.Warn("category filter matched no pairs, using full pool",
			slog.Any("filter", filter),
		)
		return s.allPairs(), nil
	}

	return pairs, nil
}

func (s *Service) allPairs() []model.WordPair {
	pairs := make([]model.WordPair, len(s.bank.Pairs))
	copy(pairs, s.bank.Pairs)
	return pairs
}
