// Package movegen turns a word list into every physical placement of each
// word on a board.
package movegen

import (
	"context"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/mcoot/wordcapture/internal/model"
	"github.com/mcoot/wordcapture/internal/services/placement"
)

// Config holds move generator settings
type Config struct {
	// Workers is the number of words evaluated concurrently. Values below 2
	// run sequentially.
	Workers int
}

// DefaultConfig returns the default generator configuration
func DefaultConfig() Config {
	return Config{
		Workers: 1,
	}
}

// Generator produces raw candidate moves
type Generator struct {
	cfg    Config
	logger *slog.Logger
}

// New creates a new Generator
func New(cfg Config, logger *slog.Logger) *Generator {
	return &Generator{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "movegen")),
	}
}

// GenerateMoves returns every placement of every word, grouped by word in
// word-list order. Words that cannot be placed contribute nothing.
func (g *Generator) GenerateMoves(ctx context.Context, board model.Board, positions *placement.PositionMap, words []model.WordEntry) ([]model.RawMove, error) {
	var (
		moves []model.RawMove
		err   error
	)
	if g.cfg.Workers > 1 && len(words) > 1 {
		moves, err = g.generateParallel(ctx, board, positions, words)
	} else {
		moves, err = g.generateSequential(ctx, board, positions, words)
	}
	if err != nil {
		return nil, err
	}

	g.logger.Debug("moves generated",
		slog.Int("board_size", board.Size()),
		slog.Int("words", len(words)),
		slog.Int("moves", len(moves)),
	)
	return moves, nil
}

func (g *Generator) generateSequential(ctx context.Context, board model.Board, positions *placement.PositionMap, words []model.WordEntry) ([]model.RawMove, error) {
	var moves []model.RawMove
	for _, w := range words {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		moves = appendWordMoves(moves, board, positions, w)
	}
	return moves, nil
}

func (g *Generator) generateParallel(ctx context.Context, board model.Board, positions *placement.PositionMap, words []model.WordEntry) ([]model.RawMove, error) {
	perWord := make([][]model.RawMove, len(words))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Workers)
	for i, w := range words {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			perWord[i] = appendWordMoves(nil, board, positions, w)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return slices.Concat(perWord...), nil
}

// MovesForWord returns every placement of a single word
func MovesForWord(board model.Board, positions *placement.PositionMap, word model.WordEntry) []model.RawMove {
	return appendWordMoves(nil, board, positions, word)
}

func appendWordMoves(dst []model.RawMove, board model.Board, positions *placement.PositionMap, word model.WordEntry) []model.RawMove {
	if len(word.Letters) == 0 || len(word.Letters) > board.Size() {
		return dst
	}

	groups := placementGroups(positions, word)
	for m := range placement.CartesianCombine(groups) {
		dst = append(dst, model.RawMove{Word: word, Placement: m})
	}
	return dst
}

// placementGroups builds one group per distinct letter, in order of first
// appearance in the word
func placementGroups(positions *placement.PositionMap, word model.WordEntry) [][]model.Mask {
	var (
		order  []rune
		counts = make(map[rune]int, len(word.Letters))
	)
	for _, r := range word.Letters {
		if counts[r] == 0 {
			order = append(order, r)
		}
		counts[r]++
	}

	groups := make([][]model.Mask, 0, len(order))
	for _, r := range order {
		group := slices.Collect(placement.CombinationsOfSize(positions.Positions(r), counts[r]))
		if len(group) == 0 {
			// the word cannot be placed; an empty group empties the product
			return [][]model.Mask{nil}
		}
		groups = append(groups, group)
	}
	return groups
}
