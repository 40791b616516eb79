package placement

import (
	"iter"

	"github.com/mcoot/wordcapture/internal/model"
)

// CombinationsOfSize yields every mask formed by OR-ing k distinct elements
// of positions, in lexicographic order of the chosen indices. It yields
// nothing when k is zero or larger than len(positions).
func CombinationsOfSize(positions []model.Mask, k int) iter.Seq[model.Mask] {
	return func(yield func(model.Mask) bool) {
		n := len(positions)
		if k <= 0 || k > n {
			return
		}

		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}

		for {
			var m model.Mask
			for _, i := range idx {
				m |= positions[i]
			}
			if !yield(m) {
				return
			}

			// advance the rightmost index that still has room
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}

// CartesianCombine yields the OR of one choice from each group, for every
// combination of choices. The first group varies slowest. It yields nothing
// when groups is empty or any group is empty.
func CartesianCombine(groups [][]model.Mask) iter.Seq[model.Mask] {
	return func(yield func(model.Mask) bool) {
		if len(groups) == 0 {
			return
		}
		for _, g := range groups {
			if len(g) == 0 {
				return
			}
		}

		choice := make([]int, len(groups))
		for {
			var m model.Mask
			for g, c := range choice {
				m |= groups[g][c]
			}
			if !yield(m) {
				return
			}

			g := len(groups) - 1
			for g >= 0 {
				choice[g]++
				if choice[g] < len(groups[g]) {
					break
				}
				choice[g] = 0
				g--
			}
			if g < 0 {
				return
			}
		}
	}
}
