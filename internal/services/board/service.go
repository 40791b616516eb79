package board

import (
	"slices"
	"strings"
	"unicode"

	"github.com/mcoot/wordcapture/internal/dependencies/random"
	"github.com/mcoot/wordcapture/internal/model"
)

// letterBag weights random board letters by ordinary English tile frequency
const letterBag = "aaaaaaaaabbccddddeeeeeeeeeeeeffggghhiiiiiiiiijkllllmmnnnnnnooooooooppqrrrrrrssssttttttuuuuvvwwxyyz"

// Service provides board parsing and validation for a fixed geometry
type Service struct {
	rules  model.Rules
	random random.Random
}

// New creates a new BoardService
func New(rules model.Rules, rnd random.Random) *Service {
	return &Service{
		rules:  rules,
		random: rnd,
	}
}

// Rules returns the geometry boards are validated against
func (s *Service) Rules() model.Rules {
	return s.rules
}

// Parse builds a board from row-major letters. Case is ignored and
// whitespace is skipped so boards may be written one row per line.
func (s *Service) Parse(letters string) (model.Board, error) {
	var cells []rune
	for _, r := range letters {
		if unicode.IsSpace(r) {
			continue
		}
		if err := ValidateLetter(r); err != nil {
			return model.Board{}, err
		}
		cells = append(cells, unicode.ToLower(r))
	}
	if len(cells) != s.rules.BoardSize() {
		return model.Board{}, model.ErrInvalidBoard
	}
	return model.NewBoard(s.rules.Rows(), s.rules.Cols(), cells), nil
}

// Random generates a board by drawing each square from the letter bag
func (s *Service) Random() model.Board {
	cells := make([]rune, s.rules.BoardSize())
	for i := range cells {
		cells[i] = rune(letterBag[s.random.Intn(len(letterBag))])
	}
	return model.NewBoard(s.rules.Rows(), s.rules.Cols(), cells)
}

// ValidateLetter checks if a letter is a valid A-Z character
func ValidateLetter(letter rune) error {
	upper := unicode.ToUpper(letter)
	if upper < 'A' || upper > 'Z' {
		return model.ErrInvalidLetter
	}
	return nil
}

// ValidateMasks checks that both ownership masks lie on the board and do not
// claim the same square
func (s *Service) ValidateMasks(ours, theirs model.Mask) error {
	full := s.rules.FullBoard()
	if !full.Contains(ours) || !full.Contains(theirs) {
		return model.ErrInvalidMask
	}
	if ours.Overlaps(theirs) {
		return model.ErrOverlappingMasks
	}
	return nil
}

// PlacementSpells reports whether the letters under placement are exactly
// the letters of word, in any order
func PlacementSpells(board model.Board, word string, placement model.Mask) bool {
	under := board.LettersAt(placement)
	want := []rune(strings.ToLower(word))
	if len(under) != len(want) {
		return false
	}
	slices.Sort(under)
	slices.Sort(want)
	return slices.Equal(under, want)
}

// Positions converts a mask into row/column positions in square order
func (s *Service) Positions(m model.Mask) []model.Position {
	var out []model.Position
	for i := 0; i < s.rules.BoardSize(); i++ {
		if m&model.Bit(i) != 0 {
			out = append(out, s.rules.PositionOf(i))
		}
	}
	return out
}

// MaskOf converts row/column positions into a mask
func (s *Service) MaskOf(positions []model.Position) (model.Mask, error) {
	var m model.Mask
	for _, pos := range positions {
		i := s.rules.IndexOf(pos)
		if i < 0 {
			return 0, model.ErrInvalidPosition
		}
		m |= model.Bit(i)
	}
	return m, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Parse(letters string) (model.Board, error)
	Random() model.Board
	ValidateMasks(ours, theirs model.Mask) error
	Positions(m model.Mask) []model.Position
	MaskOf(positions []model.Position) (model.Mask, error)
}

var _ ServiceInterface = (*Service)(nil)
