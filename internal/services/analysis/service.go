package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/mcoot/wordcapture/internal/dependencies/clock"
	"github.com/mcoot/wordcapture/internal/model"
	"github.com/mcoot/wordcapture/internal/services/board"
	"github.com/mcoot/wordcapture/internal/services/dictionary"
	"github.com/mcoot/wordcapture/internal/services/movegen"
	"github.com/mcoot/wordcapture/internal/services/placement"
	"github.com/mcoot/wordcapture/internal/services/scoring"
	"github.com/mcoot/wordcapture/internal/storage"
)

// Request describes one position to analyze from the mover's perspective
type Request struct {
	Board  string     // row-major letters
	Ours   model.Mask // squares held by the side to move
	Theirs model.Mask // squares held by the opponent
	// Words replaces the dictionary when non-empty; its order is the rank
	Words []string
	// Exclude lists words already played
	Exclude []string
}

// Service turns a board position into ranked move suggestions
type Service struct {
	board      *board.Service
	dictionary dictionary.ServiceInterface
	generator  *movegen.Generator
	scoring    *scoring.Service
	storage    storage.Storage
	clock      clock.Clock
	logger     *slog.Logger
}

// New creates a new AnalysisService
func New(
	boardSvc *board.Service,
	dict dictionary.ServiceInterface,
	generator *movegen.Generator,
	scorer *scoring.Service,
	storage storage.Storage,
	clk clock.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		board:      boardSvc,
		dictionary: dict,
		generator:  generator,
		scoring:    scorer,
		storage:    storage,
		clock:      clk,
		logger:     logger.With(slog.String("component", "analysis")),
	}
}

// Analyze validates the request, enumerates every placement of every
// candidate word and returns the ranked suggestions. Results are cached by
// request key.
func (s *Service) Analyze(ctx context.Context, req Request) (*model.Analysis, error) {
	b, err := s.board.Parse(req.Board)
	if err != nil {
		return nil, err
	}
	if err := s.board.ValidateMasks(req.Ours, req.Theirs); err != nil {
		return nil, err
	}

	if len(req.Words) == 0 && !s.dictionary.IsLoaded() {
		return nil, model.ErrDictionaryNotLoaded
	}

	key := s.cacheKey(b, req)
	if cached, err := s.storage.GetAnalysis(ctx, key); err == nil {
		cached.Cached = true
		s.logger.Debug("analysis cache hit", slog.String("key", key))
		return cached, nil
	} else if !errors.Is(err, model.ErrAnalysisNotFound) {
		s.logger.Warn("analysis cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	start := time.Now()

	var words []model.WordEntry
	if len(req.Words) > 0 {
		words = dictionary.CandidatesFrom(req.Words, b, req.Exclude)
	} else {
		words, err = s.dictionary.Candidates(b, req.Exclude)
		if err != nil {
			return nil, err
		}
	}

	raw, err := s.generator.GenerateMoves(ctx, b, placement.BuildPositionMap(b), words)
	if err != nil {
		return nil, fmt.Errorf("generating moves: %w", err)
	}
	suggestions := s.scoring.TopMoves(raw, req.Ours, req.Theirs)

	analysis := &model.Analysis{
		Key:            key,
		Board:          b.String(),
		Rows:           b.Rows,
		Cols:           b.Cols,
		Ours:           req.Ours,
		Theirs:         req.Theirs,
		CandidateCount: len(words),
		RawMoveCount:   len(raw),
		Suggestions:    suggestions,
		CreatedAt:      s.clock.Now(),
	}

	s.logger.Info("analysis complete",
		slog.String("key", key),
		slog.Int("candidates", len(words)),
		slog.Int("raw_moves", len(raw)),
		slog.Int("suggestions", len(suggestions)),
		slog.Duration("elapsed", time.Since(start)),
	)

	if err := s.storage.SaveAnalysis(ctx, analysis); err != nil {
		s.logger.Warn("analysis cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return analysis, nil
}

// cacheKey hashes everything that can change the result: geometry, letters,
// ownership, the word source and the exclusions
func (s *Service) cacheKey(b model.Board, req Request) string {
	rules := s.board.Rules()
	d := xxhash.New()
	write := func(parts ...string) {
		for _, p := range parts {
			_, _ = d.WriteString(p)
			_, _ = d.WriteString("|")
		}
	}

	write(strconv.Itoa(rules.Rows()), strconv.Itoa(rules.Cols()), strconv.Itoa(rules.WinThreshold()))
	write(b.String(), strconv.FormatUint(uint64(req.Ours), 16), strconv.FormatUint(uint64(req.Theirs), 16))
	if len(req.Words) > 0 {
		write("words")
		write(dictionary.Normalize(req.Words)...)
	} else {
		write("dictionary", strconv.FormatUint(s.dictionary.Fingerprint(), 16))
	}

	exclude := make([]string, len(req.Exclude))
	for i, w := range req.Exclude {
		exclude[i] = strings.ToLower(w)
	}
	slices.Sort(exclude)
	write("exclude")
	write(exclude...)

	return strconv.FormatUint(d.Sum64(), 16)
}

// Interface for dependency injection
type ServiceInterface interface {
	Analyze(ctx context.Context, req Request) (*model.Analysis, error)
}

var _ ServiceInterface = (*Service)(nil)
