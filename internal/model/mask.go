package model

// MaxSquares is the largest board a Mask can describe
const MaxSquares = 64

// Mask is a set of board squares. Square i is represented by bit 1<<i.
type Mask uint64

// Bit returns the single-square mask for square index i
func Bit(i int) Mask {
	return Mask(1) << uint(i)
}

// Contains returns true if every square in other is also in m
func (m Mask) Contains(other Mask) bool {
	return m&other == other
}

// Overlaps returns true if m and other share at least one square
func (m Mask) Overlaps(other Mask) bool {
	return m&other != 0
}
