package model

import "strings"

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Board is the letter layout of a game, stored row-major
type Board struct {
	Rows    int
	Cols    int
	Letters []rune // lower-case a-z, len == Rows*Cols
}

// NewBoard creates a board from row-major letters
func NewBoard(rows, cols int, letters []rune) Board {
	cp := make([]rune, len(letters))
	copy(cp, letters)
	return Board{
		Rows:    rows,
		Cols:    cols,
		Letters: cp,
	}
}

// Size returns the number of squares on the board
func (b Board) Size() int {
	return len(b.Letters)
}

// Letter returns the letter at square index i, or 0 if out of range
func (b Board) Letter(i int) rune {
	if i < 0 || i >= len(b.Letters) {
		return 0
	}
	return b.Letters[i]
}

// Get returns the letter at the given position, or 0 if out of range
func (b Board) Get(pos Position) rune {
	if pos.Row < 0 || pos.Row >= b.Rows || pos.Col < 0 || pos.Col >= b.Cols {
		return 0
	}
	return b.Letter(pos.Row*b.Cols + pos.Col)
}

// LettersAt returns the letters under the set squares of m, in square order
func (b Board) LettersAt(m Mask) []rune {
	var out []rune
	for i, r := range b.Letters {
		if m&Bit(i) != 0 {
			out = append(out, r)
		}
	}
	return out
}

// String returns the letters as a single row-major string
func (b Board) String() string {
	return string(b.Letters)
}

// RowStrings returns the board as one upper-case string per row
func (b Board) RowStrings() []string {
	rows := make([]string, 0, b.Rows)
	for row := 0; row < b.Rows; row++ {
		start := row * b.Cols
		end := start + b.Cols
		if end > len(b.Letters) {
			end = len(b.Letters)
		}
		rows = append(rows, strings.ToUpper(string(b.Letters[start:end])))
	}
	return rows
}
