// Package storagetest holds the behaviour every Storage implementation must share.
package storagetest

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordcapture/internal/model"
	"github.com/mcoot/wordcapture/internal/storage"
)

// Suite runs against whatever Storage the embedding suite assigns in SetupTest
type Suite struct {
	suite.Suite
	Storage storage.Storage
	Ctx     context.Context
}

var created = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func sampleAnalysis(key string) *model.Analysis {
	return &model.Analysis{
		Key:            key,
		Board:          "abcb",
		Rows:           2,
		Cols:           2,
		Ours:           0b0001,
		Theirs:         0b1000,
		CandidateCount: 3,
		RawMoveCount:   5,
		Suggestions: []model.Suggestion{
			{Word: "cab", Placement: 0b0111, NewOurs: 0b0111, NewTheirs: 0b1000},
			{Word: "ab", Placement: 0b0011, NewOurs: 0b0011, NewTheirs: 0b1000, GameEnder: model.GameEnderNone},
		},
		CreatedAt: created,
	}
}

func sampleGame(id model.GameID) *model.Game {
	return &model.Game{
		ID:           id,
		Rows:         2,
		Cols:         2,
		WinThreshold: 3,
		Letters:      "abcb",
		State:        model.GameStateInProgress,
		Blue:         0b0111,
		ToMove:       model.SideRed,
		Moves: []model.PlayedMove{
			{Side: model.SideBlue, Word: "cab", Placement: 0b0111, PlayedAt: created},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

// Analysis tests

func (s *Suite) TestSaveAndGetAnalysis() {
	analysis := sampleAnalysis("k1")
	s.Require().NoError(s.Storage.SaveAnalysis(s.Ctx, analysis))

	got, err := s.Storage.GetAnalysis(s.Ctx, "k1")
	s.Require().NoError(err)
	s.Equal(analysis.Board, got.Board)
	s.Equal(analysis.Ours, got.Ours)
	s.Equal(analysis.Theirs, got.Theirs)
	s.Equal(analysis.Suggestions, got.Suggestions)
	s.Equal(analysis.RawMoveCount, got.RawMoveCount)
	s.True(analysis.CreatedAt.Equal(got.CreatedAt))
	s.False(got.Cached)
}

func (s *Suite) TestGetAnalysisNotFound() {
	_, err := s.Storage.GetAnalysis(s.Ctx, "missing")
	s.ErrorIs(err, model.ErrAnalysisNotFound)
}

func (s *Suite) TestSaveAnalysisOverwrites() {
	first := sampleAnalysis("k1")
	s.Require().NoError(s.Storage.SaveAnalysis(s.Ctx, first))

	second := sampleAnalysis("k1")
	second.Suggestions = nil
	s.Require().NoError(s.Storage.SaveAnalysis(s.Ctx, second))

	got, err := s.Storage.GetAnalysis(s.Ctx, "k1")
	s.Require().NoError(err)
	s.Empty(got.Suggestions)
}

// Game tests

func (s *Suite) TestSaveAndGetGame() {
	game := sampleGame("g1")
	s.Require().NoError(s.Storage.SaveGame(s.Ctx, game))

	got, err := s.Storage.GetGame(s.Ctx, "g1")
	s.Require().NoError(err)
	s.Equal(game.ID, got.ID)
	s.Equal(game.Letters, got.Letters)
	s.Equal(game.Blue, got.Blue)
	s.Equal(game.ToMove, got.ToMove)
	s.Require().Len(got.Moves, 1)
	s.Equal("cab", got.Moves[0].Word)
	s.True(game.CreatedAt.Equal(got.CreatedAt))
}

func (s *Suite) TestGetGameNotFound() {
	_, err := s.Storage.GetGame(s.Ctx, "missing")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *Suite) TestSavedGameIsIsolatedFromCaller() {
	game := sampleGame("g1")
	s.Require().NoError(s.Storage.SaveGame(s.Ctx, game))

	game.Moves = append(game.Moves, model.PlayedMove{Side: model.SideRed})
	game.Red = 0b1000

	got, err := s.Storage.GetGame(s.Ctx, "g1")
	s.Require().NoError(err)
	s.Len(got.Moves, 1)
	s.Equal(model.Mask(0), got.Red)
}

func (s *Suite) TestDeleteGame() {
	s.Require().NoError(s.Storage.SaveGame(s.Ctx, sampleGame("g1")))

	exists, err := s.Storage.GameExists(s.Ctx, "g1")
	s.Require().NoError(err)
	s.True(exists)

	s.Require().NoError(s.Storage.DeleteGame(s.Ctx, "g1"))

	exists, err = s.Storage.GameExists(s.Ctx, "g1")
	s.Require().NoError(err)
	s.False(exists)

	_, err = s.Storage.GetGame(s.Ctx, "g1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *Suite) TestDeleteMissingGame() {
	s.NoError(s.Storage.DeleteGame(s.Ctx, "missing"))
}

// Dictionary tests

func (s *Suite) TestDictionaryNotLoaded() {
	_, err := s.Storage.GetDictionaryWords(s.Ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *Suite) TestDictionaryPreservesOrder() {
	words := []string{"the", "of", "and", "cab", "ab"}
	s.Require().NoError(s.Storage.SaveDictionaryWords(s.Ctx, words))

	got, err := s.Storage.GetDictionaryWords(s.Ctx)
	s.Require().NoError(err)
	s.Equal(words, got)
}

func (s *Suite) TestDictionaryReplaced() {
	s.Require().NoError(s.Storage.SaveDictionaryWords(s.Ctx, []string{"old", "words"}))
	s.Require().NoError(s.Storage.SaveDictionaryWords(s.Ctx, []string{"new"}))

	got, err := s.Storage.GetDictionaryWords(s.Ctx)
	s.Require().NoError(err)
	s.Equal([]string{"new"}, got)
}

func (s *Suite) TestEmptyDictionaryIsLoaded() {
	s.Require().NoError(s.Storage.SaveDictionaryWords(s.Ctx, []string{}))

	got, err := s.Storage.GetDictionaryWords(s.Ctx)
	s.Require().NoError(err)
	s.Empty(got)
}
