package model

// RawMove is one concrete placement of a word on the board.
// The placement has exactly len(Word.Letters) squares set.
type RawMove struct {
	Word      WordEntry
	Placement Mask
}

// ScoredMove is a RawMove together with the board state it produces
type ScoredMove struct {
	RawMove

	NewOurs            Mask
	NewTheirs          Mask
	NewOursProtected   Mask
	NewTheirsProtected Mask

	OursCount            int
	TheirsCount          int
	OursProtectedCount   int
	TheirsProtectedCount int

	ProtectedDiff int
	CountDiff     int
	Vulnerability int
	GameEnder     int // +1 win, -1 loss, 0 board not full
}

// Total is the combined protected and count advantage of the move
func (m ScoredMove) Total() int {
	return m.ProtectedDiff + m.CountDiff
}

// Game-ending outcomes for a move
const (
	GameEnderLoss = -1
	GameEnderNone = 0
	GameEnderWin  = 1
)

// Suggestion is a ranked candidate move returned to callers
type Suggestion struct {
	Word      string `json:"word"`
	Placement Mask   `json:"placement"`
	NewOurs   Mask   `json:"new_ours"`
	NewTheirs Mask   `json:"new_theirs"`
	GameEnder int    `json:"game_ender"`
}
