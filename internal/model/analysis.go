package model

import "time"

// Analysis is the stored result of ranking moves for one board position
type Analysis struct {
	Key            string
	Board          string
	Rows           int
	Cols           int
	Ours           Mask
	Theirs         Mask
	CandidateCount int // words considered
	RawMoveCount   int // placements enumerated
	Suggestions    []Suggestion
	CreatedAt      time.Time
	Cached         bool `json:"-"`
}
