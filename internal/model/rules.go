package model

// Default board geometry
const (
	DefaultRows = 5
	DefaultCols = 5
)

// Rules holds the immutable constants of a board geometry: its size, the
// number of squares the mover needs to win once the board is full, and the
// adjacency table. Construct with NewRules; the zero value is not usable.
type Rules struct {
	rows         int
	cols         int
	winThreshold int
	fullBoard    Mask
	adjacency    [MaxSquares]Mask
}

// NewRules builds the rules for a rows x cols grid. Adjacency is orthogonal
// (up, down, left, right).
func NewRules(rows, cols, winThreshold int) (Rules, error) {
	size := rows * cols
	if rows <= 0 || cols <= 0 || size > MaxSquares {
		return Rules{}, ErrInvalidRules
	}
	if winThreshold <= 0 || winThreshold > size {
		return Rules{}, ErrInvalidRules
	}

	r := Rules{
		rows:         rows,
		cols:         cols,
		winThreshold: winThreshold,
	}
	if size == MaxSquares {
		r.fullBoard = ^Mask(0)
	} else {
		r.fullBoard = Bit(size) - 1
	}

	for i := 0; i < size; i++ {
		row, col := i/cols, i%cols
		var adj Mask
		if row > 0 {
			adj |= Bit(i - cols)
		}
		if row < rows-1 {
			adj |= Bit(i + cols)
		}
		if col > 0 {
			adj |= Bit(i - 1)
		}
		if col < cols-1 {
			adj |= Bit(i + 1)
		}
		r.adjacency[i] = adj
	}

	return r, nil
}

// DefaultRules returns the conventional 5x5 board where 13 squares wins
func DefaultRules() Rules {
	r, _ := NewRules(DefaultRows, DefaultCols, MajorityThreshold(DefaultRows*DefaultCols))
	return r
}

// MajorityThreshold returns the smallest square count that is a strict
// majority of size
func MajorityThreshold(size int) int {
	return size/2 + 1
}

// Rows returns the number of board rows
func (r Rules) Rows() int { return r.rows }

// Cols returns the number of board columns
func (r Rules) Cols() int { return r.cols }

// BoardSize returns the number of squares on the board
func (r Rules) BoardSize() int { return r.rows * r.cols }

// WinThreshold returns the square count the mover needs to win on a full board
func (r Rules) WinThreshold() int { return r.winThreshold }

// FullBoard returns the mask with every square set
func (r Rules) FullBoard() Mask { return r.fullBoard }

// Neighbors returns the adjacency mask for square index i
func (r Rules) Neighbors(i int) Mask {
	if i < 0 || i >= r.BoardSize() {
		return 0
	}
	return r.adjacency[i]
}

// PositionOf converts a square index into a row/column position
func (r Rules) PositionOf(i int) Position {
	return Position{Row: i / r.cols, Col: i % r.cols}
}

// IndexOf converts a row/column position into a square index, or -1 if the
// position is off the board
func (r Rules) IndexOf(pos Position) int {
	if pos.Row < 0 || pos.Row >= r.rows || pos.Col < 0 || pos.Col >= r.cols {
		return -1
	}
	return pos.Row*r.cols + pos.Col
}
