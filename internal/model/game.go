package model

import "time"

// GameID uniquely identifies a game
type GameID string

// Side identifies one of the two players
type Side string

const (
	SideBlue Side = "blue" // moves first
	SideRed  Side = "red"
)

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideBlue {
		return SideRed
	}
	return SideBlue
}

// Valid returns true for a known side
func (s Side) Valid() bool {
	return s == SideBlue || s == SideRed
}

// GameState represents the current phase of a game
type GameState string

const (
	GameStateInProgress GameState = "in_progress"
	GameStateComplete   GameState = "complete"
)

// PlayedMove is one entry in a game's move history
type PlayedMove struct {
	Side      Side
	Word      string // empty for a pass
	Placement Mask
	PlayedAt  time.Time
}

// IsPass returns true if the move was a pass
func (m PlayedMove) IsPass() bool {
	return m.Word == ""
}

// Game is a two-sided capture game played on a fixed board
type Game struct {
	ID           GameID
	Rows         int
	Cols         int
	WinThreshold int
	Letters      string
	State        GameState

	Blue   Mask
	Red    Mask
	ToMove Side

	Moves             []PlayedMove
	ConsecutivePasses int
	Winner            Side // empty while in progress or on a draw

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Owned returns the squares held by the given side
func (g *Game) Owned(side Side) Mask {
	if side == SideBlue {
		return g.Blue
	}
	return g.Red
}

// SetOwned replaces the squares held by the given side
func (g *Game) SetOwned(side Side, m Mask) {
	if side == SideBlue {
		g.Blue = m
	} else {
		g.Red = m
	}
}

// PlayedWords returns the words played so far, in order
func (g *Game) PlayedWords() []string {
	var words []string
	for _, m := range g.Moves {
		if !m.IsPass() {
			words = append(words, m.Word)
		}
	}
	return words
}

// IsComplete returns true if the game has finished
func (g *Game) IsComplete() bool {
	return g.State == GameStateComplete
}
