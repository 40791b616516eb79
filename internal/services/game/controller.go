package game

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"github.com/mcoot/wordcapture/internal/bitboard"
	"github.com/mcoot/wordcapture/internal/dependencies/clock"
	"github.com/mcoot/wordcapture/internal/dependencies/random"
	"github.com/mcoot/wordcapture/internal/model"
	"github.com/mcoot/wordcapture/internal/services/analysis"
	"github.com/mcoot/wordcapture/internal/services/board"
	"github.com/mcoot/wordcapture/internal/services/dictionary"
	"github.com/mcoot/wordcapture/internal/services/scoring"
	"github.com/mcoot/wordcapture/internal/storage"
)

const (
	gameIDLength   = 12
	gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	maxIDAttempts  = 10

	// passesToEnd is the number of consecutive passes that finish a game
	passesToEnd = 2
)

// Controller manages the game state machine and turn flow
type Controller struct {
	storage    storage.Storage
	board      *board.Service
	dictionary dictionary.ServiceInterface
	analysis   analysis.ServiceInterface
	clock      clock.Clock
	random     random.Random
	logger     *slog.Logger
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	boardService *board.Service,
	dictService dictionary.ServiceInterface,
	analysisService analysis.ServiceInterface,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:    storage,
		board:      boardService,
		dictionary: dictService,
		analysis:   analysisService,
		clock:      clock,
		random:     random,
		logger:     logger.With(slog.String("component", "game")),
	}
}

// CreateGame starts a game on the given letters, or on a random board when
// letters is empty. Blue moves first.
func (c *Controller) CreateGame(ctx context.Context, letters string) (*model.Game, error) {
	var (
		b   model.Board
		err error
	)
	if strings.TrimSpace(letters) == "" {
		b = c.board.Random()
	} else if b, err = c.board.Parse(letters); err != nil {
		return nil, err
	}

	gameID, err := c.newGameID(ctx)
	if err != nil {
		return nil, err
	}

	rules := c.board.Rules()
	now := c.clock.Now()
	game := &model.Game{
		ID:           gameID,
		Rows:         rules.Rows(),
		Cols:         rules.Cols(),
		WinThreshold: rules.WinThreshold(),
		Letters:      b.String(),
		State:        model.GameStateInProgress,
		ToMove:       model.SideBlue,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(gameID)),
		slog.String("board", game.Letters),
	)

	return game, nil
}

// newGameID draws random IDs until one is unused
func (c *Controller) newGameID(ctx context.Context) (model.GameID, error) {
	for range maxIDAttempts {
		id := model.GameID(c.random.String(gameIDLength, gameIDAlphabet))
		exists, err := c.storage.GameExists(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
	return "", fmt.Errorf("no free game id after %d attempts", maxIDAttempts)
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// DeleteGame removes a game
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	if _, err := c.storage.GetGame(ctx, gameID); err != nil {
		return err
	}
	return c.storage.DeleteGame(ctx, gameID)
}

// loadForTurn fetches a game and checks that side may act now
func (c *Controller) loadForTurn(ctx context.Context, gameID model.GameID, side model.Side) (*model.Game, model.Rules, error) {
	if !side.Valid() {
		return nil, model.Rules{}, model.ErrInvalidSide
	}

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, model.Rules{}, err
	}
	if game.IsComplete() {
		return nil, model.Rules{}, model.ErrGameComplete
	}
	if game.ToMove != side {
		return nil, model.Rules{}, model.ErrNotPlayerTurn
	}

	rules, err := RulesFor(game)
	if err != nil {
		return nil, model.Rules{}, err
	}
	return game, rules, nil
}

// RulesFor rebuilds the geometry a game was created with
func RulesFor(game *model.Game) (model.Rules, error) {
	return model.NewRules(game.Rows, game.Cols, game.WinThreshold)
}

// BoardFor rebuilds a game's letter grid
func BoardFor(game *model.Game) model.Board {
	return model.NewBoard(game.Rows, game.Cols, []rune(game.Letters))
}

// PlayWord plays word on the squares in placement for side. The capture
// rule is the one the advisor scores with: every placed square becomes the
// mover's unless the opponent holds it protected.
func (c *Controller) PlayWord(ctx context.Context, gameID model.GameID, side model.Side, word string, placement model.Mask) (*model.Game, error) {
	game, rules, err := c.loadForTurn(ctx, gameID, side)
	if err != nil {
		return nil, err
	}

	word = strings.ToLower(strings.TrimSpace(word))
	if !c.dictionary.IsLoaded() {
		return nil, model.ErrDictionaryNotLoaded
	}
	if !c.dictionary.IsValidWord(word) {
		return nil, model.ErrWordNotInDictionary
	}
	if lo.SomeBy(game.PlayedWords(), func(played string) bool { return strings.HasPrefix(played, word) }) {
		return nil, model.ErrWordAlreadyPlayed
	}
	if !rules.FullBoard().Contains(placement) {
		return nil, model.ErrInvalidMask
	}
	if !board.PlacementSpells(BoardFor(game), word, placement) {
		return nil, model.ErrPlacementMismatch
	}

	opponent := side.Opponent()
	newOurs, newTheirs := scoring.ApplyCapture(rules, placement, game.Owned(side), game.Owned(opponent))
	game.SetOwned(side, newOurs)
	game.SetOwned(opponent, newTheirs)

	now := c.clock.Now()
	game.Moves = append(game.Moves, model.PlayedMove{
		Side:      side,
		Word:      word,
		Placement: placement,
		PlayedAt:  now,
	})
	game.ConsecutivePasses = 0
	game.ToMove = opponent
	game.UpdatedAt = now

	if game.Blue|game.Red == rules.FullBoard() {
		c.finish(game)
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("word played",
		slog.String("game_id", string(game.ID)),
		slog.String("side", string(side)),
		slog.String("word", word),
		slog.Int("blue", bitboard.Count(game.Blue)),
		slog.Int("red", bitboard.Count(game.Red)),
	)

	return game, nil
}

// Pass gives up side's turn. The game ends after consecutive passes by both
// sides.
func (c *Controller) Pass(ctx context.Context, gameID model.GameID, side model.Side) (*model.Game, error) {
	game, _, err := c.loadForTurn(ctx, gameID, side)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	game.Moves = append(game.Moves, model.PlayedMove{Side: side, PlayedAt: now})
	game.ConsecutivePasses++
	game.ToMove = side.Opponent()
	game.UpdatedAt = now

	if game.ConsecutivePasses >= passesToEnd {
		c.finish(game)
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("turn passed",
		slog.String("game_id", string(game.ID)),
		slog.String("side", string(side)),
	)

	return game, nil
}

// finish completes the game. The larger holding wins and equal holdings
// draw; on a full board the winner always holds at least a majority.
func (c *Controller) finish(game *model.Game) {
	blue := bitboard.Count(game.Blue)
	red := bitboard.Count(game.Red)

	switch {
	case blue > red:
		game.Winner = model.SideBlue
	case red > blue:
		game.Winner = model.SideRed
	default:
		game.Winner = ""
	}
	game.State = model.GameStateComplete

	c.logger.Info("game completed",
		slog.String("game_id", string(game.ID)),
		slog.String("winner", string(game.Winner)),
		slog.Int("blue", blue),
		slog.Int("red", red),
		slog.Int("moves", len(game.Moves)),
	)
}

// Suggest analyzes the position for the side to move
func (c *Controller) Suggest(ctx context.Context, gameID model.GameID) (*model.Analysis, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.IsComplete() {
		return nil, model.ErrGameComplete
	}

	return c.analysis.Analyze(ctx, analysis.Request{
		Board:   game.Letters,
		Ours:    game.Owned(game.ToMove),
		Theirs:  game.Owned(game.ToMove.Opponent()),
		Exclude: game.PlayedWords(),
	})
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, letters string) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, gameID model.GameID) error
	PlayWord(ctx context.Context, gameID model.GameID, side model.Side, word string, placement model.Mask) (*model.Game, error)
	Pass(ctx context.Context, gameID model.GameID, side model.Side) (*model.Game, error)
	Suggest(ctx context.Context, gameID model.GameID) (*model.Analysis, error)
}

var _ ControllerInterface = (*Controller)(nil)
