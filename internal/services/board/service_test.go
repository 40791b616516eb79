package board

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordcapture/internal/dependencies/mocks"
	"github.com/mcoot/wordcapture/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.service = New(model.DefaultRules(), s.random)
}

// Parse tests

func (s *ServiceSuite) TestParseSucceeds() {
	board, err := s.service.Parse("ABCDE fghij\nKLMNO\npqrst uvwxy")
	s.Require().NoError(err)

	s.Equal(5, board.Rows)
	s.Equal(5, board.Cols)
	s.Equal(25, board.Size())
	s.Equal("abcdefghijklmnopqrstuvwxy", board.String())
	s.Equal('m', board.Get(model.Position{Row: 2, Col: 2}))
	s.Equal([]string{"ABCDE", "FGHIJ", "KLMNO", "PQRST", "UVWXY"}, board.RowStrings())
}

func (s *ServiceSuite) TestParseWrongLength() {
	_, err := s.service.Parse("abcd")
	s.ErrorIs(err, model.ErrInvalidBoard)
}

func (s *ServiceSuite) TestParseInvalidLetter() {
	_, err := s.service.Parse("abcdefghijklmnopqrstuvwx1")
	s.ErrorIs(err, model.ErrInvalidLetter)
}

func (s *ServiceSuite) TestRandomUsesBag() {
	// index 0 is 'a', the last index is 'z'
	s.random.QueueIntn(0, len(letterBag)-1)

	board := s.service.Random()

	s.Equal(25, board.Size())
	s.Equal('a', board.Letter(0))
	s.Equal('z', board.Letter(1))
	// unqueued draws fall back to index 0
	s.Equal('a', board.Letter(24))
}

// Letter validation tests

func (s *ServiceSuite) TestValidateLetterUppercase() {
	for letter := 'A'; letter <= 'Z'; letter++ {
		s.NoError(ValidateLetter(letter), "letter %c should be valid", letter)
	}
}

func (s *ServiceSuite) TestValidateLetterLowercase() {
	for letter := 'a'; letter <= 'z'; letter++ {
		s.NoError(ValidateLetter(letter), "letter %c should be valid", letter)
	}
}

func (s *ServiceSuite) TestValidateLetterInvalid() {
	for _, letter := range []rune{'0', '9', '!', ' ', 'é'} {
		s.ErrorIs(ValidateLetter(letter), model.ErrInvalidLetter, "letter %c should be invalid", letter)
	}
}

// Mask validation tests

func (s *ServiceSuite) TestValidateMasks() {
	s.NoError(s.service.ValidateMasks(0, 0))
	s.NoError(s.service.ValidateMasks(0b0011, 0b1100))
	s.NoError(s.service.ValidateMasks(model.DefaultRules().FullBoard(), 0))
}

func (s *ServiceSuite) TestValidateMasksOffBoard() {
	s.ErrorIs(s.service.ValidateMasks(model.Bit(25), 0), model.ErrInvalidMask)
	s.ErrorIs(s.service.ValidateMasks(0, model.Bit(40)), model.ErrInvalidMask)
}

func (s *ServiceSuite) TestValidateMasksOverlap() {
	s.ErrorIs(s.service.ValidateMasks(0b0110, 0b0100), model.ErrOverlappingMasks)
}

// Placement tests

func (s *ServiceSuite) TestPlacementSpells() {
	board := model.NewBoard(2, 2, []rune("abcb"))

	s.True(PlacementSpells(board, "cab", 0b0111))
	s.True(PlacementSpells(board, "CAB", 0b1101))
	s.False(PlacementSpells(board, "cab", 0b1010))
	s.False(PlacementSpells(board, "cab", 0b1111))
	s.True(PlacementSpells(board, "abcb", 0b1111))
}

func (s *ServiceSuite) TestPositionsRoundTrip() {
	m := model.Bit(0) | model.Bit(7) | model.Bit(24)

	positions := s.service.Positions(m)
	s.Equal([]model.Position{{Row: 0, Col: 0}, {Row: 1, Col: 2}, {Row: 4, Col: 4}}, positions)

	back, err := s.service.MaskOf(positions)
	s.Require().NoError(err)
	s.Equal(m, back)
}

func (s *ServiceSuite) TestMaskOfInvalidPosition() {
	_, err := s.service.MaskOf([]model.Position{{Row: 5, Col: 0}})
	s.ErrorIs(err, model.ErrInvalidPosition)
}
