package bot_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordcapture/internal/dependencies/mocks"
	"github.com/mcoot/wordcapture/internal/model"
	"github.com/mcoot/wordcapture/internal/services/bot"
)

type StrategySuite struct {
	suite.Suite
	mockRandom  *mocks.MockRandom
	suggestions []model.Suggestion
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategySuite))
}

func (s *StrategySuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
	s.suggestions = []model.Suggestion{
		{Word: "cab", Placement: 0b0111},
		{Word: "ab", Placement: 0b0011},
		{Word: "bc", Placement: 0b0110},
	}
}

func (s *StrategySuite) TestTopPicksFirst() {
	move, ok := bot.TopStrategy{}.ChooseMove(&model.Game{}, s.suggestions)
	s.True(ok)
	s.Equal("cab", move.Word)
}

func (s *StrategySuite) TestTopPassesWithoutSuggestions() {
	_, ok := bot.TopStrategy{}.ChooseMove(&model.Game{}, nil)
	s.False(ok)
}

func (s *StrategySuite) TestRandomPicksIndex() {
	strategy := bot.NewRandomStrategy(s.mockRandom)
	s.mockRandom.QueueIntn(2)

	move, ok := strategy.ChooseMove(&model.Game{}, s.suggestions)
	s.True(ok)
	s.Equal("bc", move.Word)
	s.Equal([]int{3}, s.mockRandom.Calls)
}

func (s *StrategySuite) TestRandomTakesWinningMove() {
	strategy := bot.NewRandomStrategy(s.mockRandom)
	s.suggestions[0].GameEnder = model.GameEnderWin

	move, ok := strategy.ChooseMove(&model.Game{}, s.suggestions)
	s.True(ok)
	s.Equal("cab", move.Word)
	s.Empty(s.mockRandom.Calls)
}

func (s *StrategySuite) TestRandomPassesWithoutSuggestions() {
	_, ok := bot.NewRandomStrategy(s.mockRandom).ChooseMove(&model.Game{}, []model.Suggestion{})
	s.False(ok)
}

func (s *StrategySuite) TestNewStrategy() {
	for _, name := range model.ValidBotStrategies() {
		st, err := bot.NewStrategy(name, s.mockRandom)
		s.Require().NoError(err, name)
		s.NotNil(st)
	}

	_, err := bot.NewStrategy("minimax", s.mockRandom)
	s.ErrorIs(err, model.ErrUnknownStrategy)
}
