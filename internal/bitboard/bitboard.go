// Package bitboard holds the bit-level primitives shared by the move
// generator and scorer: population counts, square iteration, and the
// protected-square and vulnerability calculations over a Rules adjacency table.
package bitboard

import (
	"iter"
	"math/bits"

	"github.com/mcoot/wordcapture/internal/model"
)

// Count returns the number of squares set in m
func Count(m model.Mask) int {
	return bits.OnesCount64(uint64(m))
}

// Squares yields the index of every set square in m, lowest first
func Squares(m model.Mask) iter.Seq[int] {
	return func(yield func(int) bool) {
		for m != 0 {
			i := bits.TrailingZeros64(uint64(m))
			if !yield(i) {
				return
			}
			m &= m - 1
		}
	}
}

// Protected returns the subset of owned whose every neighbour is also owned
func Protected(rules model.Rules, owned model.Mask) model.Mask {
	var protected model.Mask
	for i := range Squares(owned) {
		if owned.Contains(rules.Neighbors(i)) {
			protected |= model.Bit(i)
		}
	}
	return protected
}

// Vulnerability sums, over each square in mask, the neighbours of that
// square not held in owned. Lower is a more compact shape.
func Vulnerability(rules model.Rules, mask, owned model.Mask) int {
	total := 0
	for i := range Squares(mask) {
		total += Count(rules.Neighbors(i) &^ owned)
	}
	return total
}
