package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordcapture/internal/dependencies/mocks"
	"github.com/mcoot/wordcapture/internal/model"
	"github.com/mcoot/wordcapture/internal/services/analysis"
	"github.com/mcoot/wordcapture/internal/services/board"
	"github.com/mcoot/wordcapture/internal/services/dictionary"
	"github.com/mcoot/wordcapture/internal/services/movegen"
	"github.com/mcoot/wordcapture/internal/services/scoring"
	"github.com/mcoot/wordcapture/internal/storage/memory"
	"github.com/mcoot/wordcapture/internal/testutil"
)

// The test board is 2x2:
//
//	a b
//	c b
const testLetters = "abcb"

type ControllerSuite struct {
	suite.Suite
	storage     *memory.Storage
	dictService *dictionary.Service
	clock       *mocks.MockClock
	random      *mocks.MockRandom
	controller  *Controller
	ctx         context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	rules, err := model.NewRules(2, 2, 3)
	s.Require().NoError(err)

	logger := testutil.NopLogger()
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.dictService = dictionary.New(s.storage, logger)

	boardService := board.New(rules, s.random)
	analysisService := analysis.New(
		boardService,
		s.dictService,
		movegen.New(movegen.DefaultConfig(), logger),
		scoring.New(rules),
		s.storage,
		s.clock,
		logger,
	)
	s.controller = NewController(s.storage, boardService, s.dictService, analysisService, s.clock, s.random, logger)
	s.ctx = context.Background()

	s.Require().NoError(s.dictService.LoadWords([]string{"cab", "ab", "ba", "bc", "cb", "abc"}))
}

func (s *ControllerSuite) newGame() *model.Game {
	s.random.QueueString("GAME12345678")
	game, err := s.controller.CreateGame(s.ctx, testLetters)
	s.Require().NoError(err)
	return game
}

func (s *ControllerSuite) play(game *model.Game, side model.Side, word string, placement model.Mask) *model.Game {
	updated, err := s.controller.PlayWord(s.ctx, game.ID, side, word, placement)
	s.Require().NoError(err)
	return updated
}

// CreateGame tests

func (s *ControllerSuite) TestCreateGameSucceeds() {
	game := s.newGame()

	s.Equal(model.GameID("GAME12345678"), game.ID)
	s.Equal(model.GameStateInProgress, game.State)
	s.Equal(model.SideBlue, game.ToMove)
	s.Equal(testLetters, game.Letters)
	s.Equal(2, game.Rows)
	s.Equal(2, game.Cols)
	s.Equal(3, game.WinThreshold)
	s.Zero(game.Blue)
	s.Zero(game.Red)
	s.Equal(s.clock.CurrentTime, game.CreatedAt)

	stored, err := s.controller.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(game.Letters, stored.Letters)
}

func (s *ControllerSuite) TestCreateGameWithRandomBoard() {
	s.random.QueueString("RANDOM")
	game, err := s.controller.CreateGame(s.ctx, "")
	s.Require().NoError(err)

	// unqueued Intn draws pick the first letter of the bag
	s.Equal("aaaa", game.Letters)
}

func (s *ControllerSuite) TestCreateGameInvalidBoard() {
	_, err := s.controller.CreateGame(s.ctx, "abc")
	s.ErrorIs(err, model.ErrInvalidBoard)

	_, err = s.controller.CreateGame(s.ctx, "ab1c")
	s.ErrorIs(err, model.ErrInvalidLetter)
}

func (s *ControllerSuite) TestCreateGameSkipsUsedID() {
	s.random.QueueString("TAKEN", "TAKEN", "FREE")
	first, err := s.controller.CreateGame(s.ctx, testLetters)
	s.Require().NoError(err)
	second, err := s.controller.CreateGame(s.ctx, testLetters)
	s.Require().NoError(err)

	s.Equal(model.GameID("TAKEN"), first.ID)
	s.Equal(model.GameID("FREE"), second.ID)
}

func (s *ControllerSuite) TestGetGameNotFound() {
	_, err := s.controller.GetGame(s.ctx, "missing")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestDeleteGame() {
	game := s.newGame()

	s.Require().NoError(s.controller.DeleteGame(s.ctx, game.ID))

	_, err := s.controller.GetGame(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameNotFound)
	s.ErrorIs(s.controller.DeleteGame(s.ctx, game.ID), model.ErrGameNotFound)
}

// PlayWord tests

func (s *ControllerSuite) TestPlayWordClaimsSquares() {
	game := s.newGame()
	s.clock.Advance(time.Minute)

	game = s.play(game, model.SideBlue, "AB", 0b0011)

	s.Equal(model.Mask(0b0011), game.Blue)
	s.Zero(game.Red)
	s.Equal(model.SideRed, game.ToMove)
	s.Require().Len(game.Moves, 1)
	s.Equal("ab", game.Moves[0].Word)
	s.Equal(model.SideBlue, game.Moves[0].Side)
	s.Equal(s.clock.CurrentTime, game.UpdatedAt)
	s.False(game.IsComplete())
}

func (s *ControllerSuite) TestPlayWordCapturesUnprotectedSquares() {
	game := s.newGame()
	game = s.play(game, model.SideBlue, "ab", 0b0011)

	game = s.play(game, model.SideRed, "cb", 0b0110)

	s.Equal(model.Mask(0b0110), game.Red)
	s.Equal(model.Mask(0b0001), game.Blue)
}

func (s *ControllerSuite) TestPlayWordCannotCaptureProtectedSquares() {
	game := s.newGame()
	// blue holds a, b and c; square 0 has both neighbours blue
	game = s.play(game, model.SideBlue, "abc", 0b0111)

	game = s.play(game, model.SideRed, "ba", 0b0011)

	s.Equal(model.Mask(0b0010), game.Red)
	s.Equal(model.Mask(0b0101), game.Blue)
}

func (s *ControllerSuite) TestPlayWordEndsGameWhenBoardFull() {
	game := s.newGame()
	game = s.play(game, model.SideBlue, "ab", 0b0011)

	game = s.play(game, model.SideRed, "cab", 0b1101)

	s.True(game.IsComplete())
	s.Equal(model.Mask(0b1101), game.Red)
	s.Equal(model.Mask(0b0010), game.Blue)
	s.Equal(model.SideRed, game.Winner)

	_, err := s.controller.PlayWord(s.ctx, game.ID, model.SideBlue, "ba", 0b0011)
	s.ErrorIs(err, model.ErrGameComplete)
}

func (s *ControllerSuite) TestPlayWordFullBoardDraw() {
	game := s.newGame()
	game = s.play(game, model.SideBlue, "ab", 0b0011)

	game = s.play(game, model.SideRed, "cb", 0b1100)

	s.True(game.IsComplete())
	s.Equal(model.Side(""), game.Winner)
}

func (s *ControllerSuite) TestPlayWordWrongTurn() {
	game := s.newGame()

	_, err := s.controller.PlayWord(s.ctx, game.ID, model.SideRed, "ab", 0b0011)
	s.ErrorIs(err, model.ErrNotPlayerTurn)
}

func (s *ControllerSuite) TestPlayWordInvalidSide() {
	game := s.newGame()

	_, err := s.controller.PlayWord(s.ctx, game.ID, "green", "ab", 0b0011)
	s.ErrorIs(err, model.ErrInvalidSide)
}

func (s *ControllerSuite) TestPlayWordGameNotFound() {
	_, err := s.controller.PlayWord(s.ctx, "missing", model.SideBlue, "ab", 0b0011)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestPlayWordNotInDictionary() {
	game := s.newGame()

	_, err := s.controller.PlayWord(s.ctx, game.ID, model.SideBlue, "bb", 0b1010)
	s.ErrorIs(err, model.ErrWordNotInDictionary)
}

func (s *ControllerSuite) TestPlayWordPlacementMismatch() {
	game := s.newGame()

	_, err := s.controller.PlayWord(s.ctx, game.ID, model.SideBlue, "ab", 0b0101)
	s.ErrorIs(err, model.ErrPlacementMismatch)
}

func (s *ControllerSuite) TestPlayWordPlacementOffBoard() {
	game := s.newGame()

	_, err := s.controller.PlayWord(s.ctx, game.ID, model.SideBlue, "ab", model.Bit(5)|1)
	s.ErrorIs(err, model.ErrInvalidMask)
}

func (s *ControllerSuite) TestPlayWordAlreadyPlayed() {
	game := s.newGame()
	game = s.play(game, model.SideBlue, "abc", 0b0111)

	_, err := s.controller.PlayWord(s.ctx, game.ID, model.SideRed, "abc", 0b0111)
	s.ErrorIs(err, model.ErrWordAlreadyPlayed)

	// a prefix of a played word is also spent
	_, err = s.controller.PlayWord(s.ctx, game.ID, model.SideRed, "ab", 0b0011)
	s.ErrorIs(err, model.ErrWordAlreadyPlayed)
}

func (s *ControllerSuite) TestPlayWordDictionaryNotLoaded() {
	s.dictService = dictionary.New(s.storage, testutil.NopLogger())
	s.controller.dictionary = s.dictService
	game := s.newGame()

	_, err := s.controller.PlayWord(s.ctx, game.ID, model.SideBlue, "ab", 0b0011)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

// Pass tests

func (s *ControllerSuite) TestPassSwitchesTurn() {
	game := s.newGame()

	game, err := s.controller.Pass(s.ctx, game.ID, model.SideBlue)
	s.Require().NoError(err)

	s.Equal(model.SideRed, game.ToMove)
	s.Equal(1, game.ConsecutivePasses)
	s.Require().Len(game.Moves, 1)
	s.True(game.Moves[0].IsPass())
	s.False(game.IsComplete())
}

func (s *ControllerSuite) TestTwoPassesEndGame() {
	game := s.newGame()
	game = s.play(game, model.SideBlue, "ab", 0b0011)

	_, err := s.controller.Pass(s.ctx, game.ID, model.SideRed)
	s.Require().NoError(err)
	game, err = s.controller.Pass(s.ctx, game.ID, model.SideBlue)
	s.Require().NoError(err)

	s.True(game.IsComplete())
	s.Equal(model.SideBlue, game.Winner)
}

func (s *ControllerSuite) TestPlayResetsPassCount() {
	game := s.newGame()

	_, err := s.controller.Pass(s.ctx, game.ID, model.SideBlue)
	s.Require().NoError(err)
	game = s.play(game, model.SideRed, "ab", 0b0011)
	s.Equal(0, game.ConsecutivePasses)

	game, err = s.controller.Pass(s.ctx, game.ID, model.SideBlue)
	s.Require().NoError(err)
	s.False(game.IsComplete())
}

func (s *ControllerSuite) TestPassWrongTurn() {
	game := s.newGame()

	_, err := s.controller.Pass(s.ctx, game.ID, model.SideRed)
	s.ErrorIs(err, model.ErrNotPlayerTurn)
}

// Suggest tests

func (s *ControllerSuite) TestSuggestForSideToMove() {
	game := s.newGame()

	result, err := s.controller.Suggest(s.ctx, game.ID)
	s.Require().NoError(err)
	s.NotEmpty(result.Suggestions)
	s.Zero(result.Ours)
	s.Zero(result.Theirs)
}

func (s *ControllerSuite) TestSuggestUsesMoverPerspectiveAndExcludesPlayed() {
	game := s.newGame()
	game = s.play(game, model.SideBlue, "abc", 0b0111)

	result, err := s.controller.Suggest(s.ctx, game.ID)
	s.Require().NoError(err)

	s.Equal(game.Red, result.Ours)
	s.Equal(game.Blue, result.Theirs)
	for _, sg := range result.Suggestions {
		s.NotContains([]string{"abc", "ab"}, sg.Word)
	}
}

func (s *ControllerSuite) TestSuggestedMoveIsPlayable() {
	game := s.newGame()

	result, err := s.controller.Suggest(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Require().NotEmpty(result.Suggestions)

	best := result.Suggestions[0]
	game = s.play(game, model.SideBlue, best.Word, best.Placement)
	s.Equal(best.NewOurs, game.Blue)
	s.Equal(best.NewTheirs, game.Red)
}

func (s *ControllerSuite) TestSuggestOnCompleteGame() {
	game := s.newGame()
	game = s.play(game, model.SideBlue, "ab", 0b0011)
	game = s.play(game, model.SideRed, "cb", 0b1100)
	s.Require().True(game.IsComplete())

	_, err := s.controller.Suggest(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameComplete)
}
