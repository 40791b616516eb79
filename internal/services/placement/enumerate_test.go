package placement

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordcapture/internal/bitboard"
	"github.com/mcoot/wordcapture/internal/model"
)

func bitsOf(indices ...int) []model.Mask {
	out := make([]model.Mask, 0, len(indices))
	for _, i := range indices {
		out = append(out, model.Bit(i))
	}
	return out
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}
	return result
}

func TestCombinationsOfSizeCounts(t *testing.T) {
	positions := bitsOf(0, 3, 7, 11, 19, 24)

	for k := 1; k <= len(positions); k++ {
		masks := slices.Collect(CombinationsOfSize(positions, k))
		assert.Len(t, masks, binomial(len(positions), k), "k=%d", k)

		seen := make(map[model.Mask]bool)
		for _, m := range masks {
			assert.Equal(t, k, bitboard.Count(m))
			assert.False(t, seen[m], "duplicate mask %b", m)
			seen[m] = true
			for i := range bitboard.Squares(m) {
				assert.Contains(t, positions, model.Bit(i))
			}
		}
	}
}

func TestCombinationsOfSizeLexicographicOrder(t *testing.T) {
	positions := []model.Mask{1, 2, 4, 8}

	masks := slices.Collect(CombinationsOfSize(positions, 2))
	assert.Equal(t, []model.Mask{1 | 2, 1 | 4, 1 | 8, 2 | 4, 2 | 8, 4 | 8}, masks)
}

func TestCombinationsOfSizeEdgeCases(t *testing.T) {
	positions := []model.Mask{1, 2, 4}

	assert.Empty(t, slices.Collect(CombinationsOfSize(positions, 0)))
	assert.Empty(t, slices.Collect(CombinationsOfSize(positions, 4)))
	assert.Empty(t, slices.Collect(CombinationsOfSize(nil, 1)))
	assert.Equal(t, []model.Mask{7}, slices.Collect(CombinationsOfSize(positions, 3)))
}

func TestCombinationsOfSizeIsRestartable(t *testing.T) {
	seq := CombinationsOfSize([]model.Mask{1, 2, 4, 8}, 3)

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)

	var partial []model.Mask
	for m := range seq {
		partial = append(partial, m)
		if len(partial) == 2 {
			break
		}
	}
	assert.Equal(t, first[:2], partial)
}

func TestCartesianCombine(t *testing.T) {
	got := slices.Collect(CartesianCombine([][]model.Mask{{1}, {2, 4}}))
	assert.Equal(t, []model.Mask{3, 5}, got)
}

func TestCartesianCombineFirstGroupVariesSlowest(t *testing.T) {
	got := slices.Collect(CartesianCombine([][]model.Mask{{1, 2}, {4, 8}, {16}}))
	assert.Equal(t, []model.Mask{1 | 4 | 16, 1 | 8 | 16, 2 | 4 | 16, 2 | 8 | 16}, got)
}

func TestCartesianCombineEmpty(t *testing.T) {
	assert.Empty(t, slices.Collect(CartesianCombine(nil)))
	assert.Empty(t, slices.Collect(CartesianCombine([][]model.Mask{{1}, {}})))
}

func TestBuildPositionMap(t *testing.T) {
	board := model.NewBoard(2, 2, []rune("abcb"))

	pm := BuildPositionMap(board)
	assert.Equal(t, []model.Mask{1}, pm.Positions('a'))
	assert.Equal(t, []model.Mask{2, 8}, pm.Positions('b'))
	assert.Equal(t, []model.Mask{4}, pm.Positions('c'))
	assert.Nil(t, pm.Positions('z'))
	assert.Nil(t, pm.Positions('?'))
}

func TestBuildPositionMapOrdersByPosition(t *testing.T) {
	letters := []rune("eaeaeaeaeaeaeaeaeaeaeaeae")
	require.Len(t, letters, 25)

	pm := BuildPositionMap(model.NewBoard(5, 5, letters))
	es := pm.Positions('e')
	require.Len(t, es, 13)
	for i := 1; i < len(es); i++ {
		assert.Less(t, uint64(es[i-1]), uint64(es[i]))
	}
}
