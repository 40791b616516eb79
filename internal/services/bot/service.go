package bot

import (
	"context"
	"log/slog"

	"github.com/mcoot/wordcapture/internal/dependencies/random"
	"github.com/mcoot/wordcapture/internal/model"
	"github.com/mcoot/wordcapture/internal/services/game"
)

// MaxBotIterations is a safety limit for the Playout loop
const MaxBotIterations = 1000

// BotActionType represents the type of action a bot took
type BotActionType string

const (
	ActionPlay         BotActionType = "play"
	ActionPass         BotActionType = "pass"
	ActionGameComplete BotActionType = "game_complete"
)

// BotAction represents a single action taken by a bot during Playout
type BotAction struct {
	Type      BotActionType
	Side      model.Side
	Word      string
	Placement model.Mask
}

// PlayoutOptions selects which sides the bot plays and how
type PlayoutOptions struct {
	// Sides maps each bot-controlled side to a strategy name. The playout
	// stops when a side without a strategy is to move.
	Sides map[model.Side]string
	// MaxTurns bounds the number of moves made; zero means MaxBotIterations
	MaxTurns int
	// Seed makes random strategies reproducible when set
	Seed *uint64
}

// Service plays turns on behalf of bot sides
type Service struct {
	gameController game.ControllerInterface
	random         random.Random
	logger         *slog.Logger
}

// NewService creates a new bot Service
func NewService(gameController game.ControllerInterface, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		gameController: gameController,
		random:         rnd,
		logger:         logger.With(slog.String("component", "bot-service")),
	}
}

// Playout executes bot moves in a cascading loop: ask the advisor, let the
// side's strategy choose, then play or pass. It returns all actions taken.
func (s *Service) Playout(ctx context.Context, gameID model.GameID, opts PlayoutOptions) ([]BotAction, error) {
	rnd := s.random
	if opts.Seed != nil {
		rnd = random.NewSeeded(*opts.Seed)
	}

	strategies := make(map[model.Side]Strategy, len(opts.Sides))
	for side, name := range opts.Sides {
		if !side.Valid() {
			return nil, model.ErrInvalidSide
		}
		st, err := NewStrategy(name, rnd)
		if err != nil {
			return nil, err
		}
		strategies[side] = st
	}

	maxTurns := opts.MaxTurns
	if maxTurns <= 0 || maxTurns > MaxBotIterations {
		maxTurns = MaxBotIterations
	}

	var actions []BotAction
	for turns := 0; turns < maxTurns; turns++ {
		if err := ctx.Err(); err != nil {
			return actions, err
		}

		g, err := s.gameController.GetGame(ctx, gameID)
		if err != nil {
			return actions, err
		}
		if g.IsComplete() {
			break
		}

		strategy, ok := strategies[g.ToMove]
		if !ok {
			break // Human's turn
		}

		action, err := s.takeTurn(ctx, g, strategy)
		if err != nil {
			return actions, err
		}
		actions = append(actions, action)

		g, err = s.gameController.GetGame(ctx, gameID)
		if err != nil {
			return actions, err
		}
		if g.IsComplete() {
			actions = append(actions, BotAction{Type: ActionGameComplete, Side: g.Winner})
			break
		}
	}

	s.logger.Info("playout finished",
		slog.String("game_id", string(gameID)),
		slog.Int("actions", len(actions)),
	)

	return actions, nil
}

// takeTurn plays one move for the side to move
func (s *Service) takeTurn(ctx context.Context, g *model.Game, strategy Strategy) (BotAction, error) {
	result, err := s.gameController.Suggest(ctx, g.ID)
	if err != nil {
		return BotAction{}, err
	}

	move, ok := strategy.ChooseMove(g, result.Suggestions)
	if !ok {
		if _, err := s.gameController.Pass(ctx, g.ID, g.ToMove); err != nil {
			return BotAction{}, err
		}
		return BotAction{Type: ActionPass, Side: g.ToMove}, nil
	}

	if _, err := s.gameController.PlayWord(ctx, g.ID, g.ToMove, move.Word, move.Placement); err != nil {
		return BotAction{}, err
	}

	s.logger.Debug("bot played",
		slog.String("game_id", string(g.ID)),
		slog.String("side", string(g.ToMove)),
		slog.String("word", move.Word),
	)

	return BotAction{
		Type:      ActionPlay,
		Side:      g.ToMove,
		Word:      move.Word,
		Placement: move.Placement,
	}, nil
}
