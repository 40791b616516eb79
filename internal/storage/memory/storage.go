package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mcoot/wordcapture/internal/model"
	"github.com/mcoot/wordcapture/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Values are copied on the way in and out so callers never share state.
type Storage struct {
	mu sync.RWMutex

	analyses        map[string]model.Analysis
	games           map[model.GameID]model.Game
	dictionaryWords []string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		analyses: make(map[string]model.Analysis),
		games:    make(map[model.GameID]model.Game),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Analysis operations

func (s *Storage) SaveAnalysis(ctx context.Context, analysis *model.Analysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *analysis
	stored.Suggestions = slices.Clone(analysis.Suggestions)
	stored.Cached = false
	s.analyses[analysis.Key] = stored
	return nil
}

func (s *Storage) GetAnalysis(ctx context.Context, key string) (*model.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.analyses[key]
	if !ok {
		return nil, model.ErrAnalysisNotFound
	}
	stored.Suggestions = slices.Clone(stored.Suggestions)
	return &stored, nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *game
	stored.Moves = slices.Clone(game.Moves)
	s.games[game.ID] = stored
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	stored.Moves = slices.Clone(stored.Moves)
	return &stored, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

func (s *Storage) GameExists(ctx context.Context, id model.GameID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.games[id]
	return ok, nil
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dictionaryWords == nil {
		return nil, model.ErrDictionaryNotLoaded
	}
	return slices.Clone(s.dictionaryWords), nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dictionaryWords = make([]string, len(words))
	copy(s.dictionaryWords, words)
	return nil
}
