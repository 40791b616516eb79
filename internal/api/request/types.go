package request

// Square is a row/column board position
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// AnalyzeRequest is the request body for analyzing a position.
// Ownership may be given as bitmasks or as square lists; lists take
// precedence when present.
type AnalyzeRequest struct {
	Board         string   `json:"board"`
	Ours          uint64   `json:"ours,omitempty"`
	Theirs        uint64   `json:"theirs,omitempty"`
	OursSquares   []Square `json:"ours_squares,omitempty"`
	TheirsSquares []Square `json:"theirs_squares,omitempty"`
	Words         []string `json:"words,omitempty"`
	Exclude       []string `json:"exclude,omitempty"`
}

// CreateGameRequest is the request body for creating a game. An empty board
// requests a random one.
type CreateGameRequest struct {
	Board string `json:"board,omitempty"`
}

// PlayRequest is the request body for playing a word
type PlayRequest struct {
	Side      string   `json:"side"`
	Word      string   `json:"word"`
	Placement uint64   `json:"placement,omitempty"`
	Squares   []Square `json:"squares,omitempty"`
}

// PassRequest is the request body for passing a turn
type PassRequest struct {
	Side string `json:"side"`
}

// PlayoutRequest is the request body for letting bots play. A side with no
// strategy is left for a human.
type PlayoutRequest struct {
	Blue     string  `json:"blue,omitempty"`
	Red      string  `json:"red,omitempty"`
	MaxTurns int     `json:"max_turns,omitempty"`
	Seed     *uint64 `json:"seed,omitempty"`
}
