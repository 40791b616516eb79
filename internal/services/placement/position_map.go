// Package placement enumerates the ways a word's letters can be laid onto
// board squares.
package placement

import "github.com/mcoot/wordcapture/internal/model"

// AlphabetSize is the number of distinct letters a board may hold
const AlphabetSize = 26

// PositionMap lists, for each letter a-z, the single-square masks where that
// letter occurs, in ascending square order
type PositionMap [AlphabetSize][]model.Mask

// BuildPositionMap indexes the board's letters. Squares holding anything
// other than a-z are left out of the map.
func BuildPositionMap(board model.Board) *PositionMap {
	var pm PositionMap
	for i, r := range board.Letters {
		idx, ok := letterIndex(r)
		if !ok {
			continue
		}
		pm[idx] = append(pm[idx], model.Bit(i))
	}
	return &pm
}

// Positions returns the squares holding letter, or nil if the letter is not
// on the board
func (pm *PositionMap) Positions(letter rune) []model.Mask {
	idx, ok := letterIndex(letter)
	if !ok {
		return nil
	}
	return pm[idx]
}

func letterIndex(r rune) (int, bool) {
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return int(r - 'a'), true
}
