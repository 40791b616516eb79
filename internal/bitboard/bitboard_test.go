package bitboard

import (
	"slices"
	"testing"

	"github.com/matryer/is"

	"github.com/mcoot/wordcapture/internal/model"
)

func TestCount(t *testing.T) {
	is := is.New(t)
	is.Equal(Count(0), 0)
	is.Equal(Count(0b1011), 3)
	is.Equal(Count(model.DefaultRules().FullBoard()), 25)
	is.Equal(Count(^model.Mask(0)), 64)
}

func TestSquares(t *testing.T) {
	is := is.New(t)
	is.Equal(slices.Collect(Squares(0b100101)), []int{0, 2, 5})
	is.Equal(len(slices.Collect(Squares(0))), 0)

	// early break
	var first []int
	for i := range Squares(0b1110) {
		first = append(first, i)
		break
	}
	is.Equal(first, []int{1})
}

func TestNeighborsOnDefaultBoard(t *testing.T) {
	is := is.New(t)
	rules := model.DefaultRules()

	// corner 0 touches 1 and 5
	is.Equal(rules.Neighbors(0), model.Bit(1)|model.Bit(5))
	// centre 12 touches 7, 11, 13, 17
	is.Equal(rules.Neighbors(12), model.Bit(7)|model.Bit(11)|model.Bit(13)|model.Bit(17))
	// right edge 9 touches 4, 8, 14
	is.Equal(rules.Neighbors(9), model.Bit(4)|model.Bit(8)|model.Bit(14))
	is.Equal(rules.Neighbors(25), model.Mask(0))
}

func TestProtectedEmptyAndFull(t *testing.T) {
	is := is.New(t)
	rules := model.DefaultRules()

	is.Equal(Protected(rules, 0), model.Mask(0))
	is.Equal(Protected(rules, rules.FullBoard()), rules.FullBoard())
}

func TestProtectedCorner(t *testing.T) {
	is := is.New(t)
	rules := model.DefaultRules()

	// squares 0, 1, 5 protect the corner only
	owned := model.Bit(0) | model.Bit(1) | model.Bit(5)
	is.Equal(Protected(rules, owned), model.Bit(0))

	// a lone square with an unowned neighbour is not protected
	is.Equal(Protected(rules, model.Bit(12)), model.Mask(0))
}

func TestProtectedIsSubsetOfOwned(t *testing.T) {
	is := is.New(t)
	rules := model.DefaultRules()

	masks := []model.Mask{0x1, 0x63, 0x1F, 0x3FF, 0x1555555, 0xAAAAAA, 0x739CE7, rules.FullBoard()}
	for _, m := range masks {
		p := Protected(rules, m)
		is.True(m.Contains(p))
	}
}

func TestVulnerability(t *testing.T) {
	is := is.New(t)
	rules := model.DefaultRules()

	// protected squares never have unowned neighbours
	owned := model.Bit(0) | model.Bit(1) | model.Bit(5)
	is.Equal(Vulnerability(rules, Protected(rules, owned), owned), 0)

	// centre square alone: four open neighbours
	is.Equal(Vulnerability(rules, model.Bit(12), model.Bit(12)), 4)

	// square 1 in owned {0,1,5}: neighbours 0, 2, 6 -> 2 and 6 are open
	is.Equal(Vulnerability(rules, model.Bit(1), owned), 2)
}

func TestNonSquareRules(t *testing.T) {
	is := is.New(t)
	rules, err := model.NewRules(2, 3, 4)
	is.NoErr(err)

	is.Equal(rules.BoardSize(), 6)
	is.Equal(rules.FullBoard(), model.Mask(0b111111))
	// square 4 is row 1 col 1: neighbours 1, 3, 5
	is.Equal(rules.Neighbors(4), model.Bit(1)|model.Bit(3)|model.Bit(5))

	_, err = model.NewRules(9, 9, 41)
	is.True(err != nil)
	_, err = model.NewRules(2, 2, 5)
	is.True(err != nil)
}
