package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/samber/lo"

	"github.com/mcoot/wordcapture/internal/model"
	"github.com/mcoot/wordcapture/internal/storage"
)

// MinWordLength is the shortest playable word
const MinWordLength = 2

// Service holds the word list. Line order is the commonness rank: the first
// word loaded is the most common.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu          sync.RWMutex
	words       []string       // ordered by rank
	ranks       map[string]int // word -> rank
	fingerprint uint64
	loaded      bool
}

// New creates a new DictionaryService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger.With(slog.String("component", "dictionary")),
		ranks:   make(map[string]int),
	}
}

// LoadFromStorage loads dictionary words from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadFromFile loads dictionary words from a file (one word per line, most
// common first)
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading dictionary %s: %w", path, err)
	}

	// Save to storage for future use
	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		return err
	}

	return s.loadWords(words)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(words)
}

func (s *Service) loadWords(words []string) error {
	ordered := Normalize(words)
	ranks := make(map[string]int, len(ordered))
	digest := xxhash.New()
	for rank, word := range ordered {
		ranks[word] = rank
		_, _ = digest.WriteString(word)
		_, _ = digest.WriteString("\n")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = ordered
	s.ranks = ranks
	s.fingerprint = digest.Sum64()
	s.loaded = true

	s.logger.Info("dictionary loaded",
		slog.Int("words", len(ordered)),
		slog.Int("skipped", len(words)-len(ordered)),
	)
	return nil
}

// Normalize lower-cases and trims words, drops anything that is not a
// playable a-z word, and keeps only the first occurrence of each word
func Normalize(words []string) []string {
	ordered := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		word := strings.ToLower(strings.TrimSpace(w))
		if !isPlayable(word) {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		ordered = append(ordered, word)
	}
	return ordered
}

// isPlayable reports whether word is at least MinWordLength letters of a-z
func isPlayable(word string) bool {
	if len(word) < MinWordLength {
		return false
	}
	for _, r := range word {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// IsValidWord checks if a word exists in the dictionary
func (s *Service) IsValidWord(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return false
	}

	_, ok := s.ranks[strings.ToLower(word)]
	return ok
}

// Rank returns the commonness rank of a word, or false if it is not loaded
func (s *Service) Rank(word string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rank, ok := s.ranks[strings.ToLower(word)]
	return rank, ok
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// Fingerprint identifies the loaded word list. It changes whenever a
// different list is loaded.
func (s *Service) Fingerprint() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fingerprint
}

// Candidates returns the words that could physically be placed on board:
// length between MinWordLength and the board size, and no letter needed more
// times than the board holds it. Words in exclude, and any word that is a
// prefix of an excluded word, are left out. Results are ordered by rank.
func (s *Service) Candidates(board model.Board, exclude []string) ([]model.WordEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, model.ErrDictionaryNotLoaded
	}

	return candidates(s.words, board, exclude), nil
}

// CandidatesFrom applies the Candidates filter to a caller-supplied word
// list. The list is normalized first and ranked by its order.
func CandidatesFrom(words []string, board model.Board, exclude []string) []model.WordEntry {
	return candidates(Normalize(words), board, exclude)
}

func candidates(words []string, board model.Board, exclude []string) []model.WordEntry {
	available := letterCounts([]rune(board.String()))
	excluded := lo.Map(exclude, func(w string, _ int) string { return strings.ToLower(w) })

	var out []model.WordEntry
	for rank, word := range words {
		if len(word) > board.Size() {
			continue
		}
		if !fits(letterCounts([]rune(word)), available) {
			continue
		}
		if lo.SomeBy(excluded, func(e string) bool { return strings.HasPrefix(e, word) }) {
			continue
		}
		out = append(out, model.NewWordEntry(word, rank))
	}
	return out
}

func letterCounts(letters []rune) [26]int {
	var counts [26]int
	for _, r := range letters {
		if r >= 'a' && r <= 'z' {
			counts[r-'a']++
		}
	}
	return counts
}

func fits(need, have [26]int) bool {
	for i := range need {
		if need[i] > have[i] {
			return false
		}
	}
	return true
}

// Interface check
type ServiceInterface interface {
	IsValidWord(word string) bool
	Rank(word string) (int, bool)
	IsLoaded() bool
	WordCount() int
	Fingerprint() uint64
	Candidates(board model.Board, exclude []string) ([]model.WordEntry, error)
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadWords(words []string) error
}

var _ ServiceInterface = (*Service)(nil)

// ErrDictionaryNotLoaded is returned when operations are attempted before loading
var ErrDictionaryNotLoaded = model.ErrDictionaryNotLoaded
