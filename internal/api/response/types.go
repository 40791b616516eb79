package response

import (
	"time"

	"github.com/mcoot/wordcapture/internal/api/request"
	"github.com/mcoot/wordcapture/internal/bitboard"
	"github.com/mcoot/wordcapture/internal/model"
	"github.com/mcoot/wordcapture/internal/services/bot"
)

// Square is a row/column board position
type Square = request.Square

// squaresOf lists the squares of m in row-major order
func squaresOf(cols int, m model.Mask) []Square {
	squares := make([]Square, 0, bitboard.Count(m))
	for i := range bitboard.Squares(m) {
		squares = append(squares, Square{Row: i / cols, Col: i % cols})
	}
	return squares
}

// Health is the response for the health endpoint
type Health struct {
	Status          string `json:"status"`
	DictionaryWords int    `json:"dictionary_words"`
	Rows            int    `json:"rows"`
	Cols            int    `json:"cols"`
}

// Suggestion represents one ranked move
type Suggestion struct {
	Word      string   `json:"word"`
	Placement uint64   `json:"placement"`
	Squares   []Square `json:"squares"`
	Ours      uint64   `json:"ours"`
	Theirs    uint64   `json:"theirs"`
	GameEnder int      `json:"game_ender"`
}

// SuggestionFromModel converts model.Suggestion
func SuggestionFromModel(cols int, s model.Suggestion) Suggestion {
	return Suggestion{
		Word:      s.Word,
		Placement: uint64(s.Placement),
		Squares:   squaresOf(cols, s.Placement),
		Ours:      uint64(s.NewOurs),
		Theirs:    uint64(s.NewTheirs),
		GameEnder: s.GameEnder,
	}
}

// Analysis is the response for an analyzed position
type Analysis struct {
	Board       string       `json:"board"`
	Rows        int          `json:"rows"`
	Cols        int          `json:"cols"`
	Ours        uint64       `json:"ours"`
	Theirs      uint64       `json:"theirs"`
	Suggestions []Suggestion `json:"suggestions"`
	Candidates  int          `json:"candidates"`
	RawMoves    int          `json:"raw_moves"`
	Cached      bool         `json:"cached"`
}

// AnalysisFromModel converts model.Analysis
func AnalysisFromModel(a *model.Analysis) Analysis {
	suggestions := make([]Suggestion, len(a.Suggestions))
	for i, s := range a.Suggestions {
		suggestions[i] = SuggestionFromModel(a.Cols, s)
	}
	return Analysis{
		Board:       a.Board,
		Rows:        a.Rows,
		Cols:        a.Cols,
		Ours:        uint64(a.Ours),
		Theirs:      uint64(a.Theirs),
		Suggestions: suggestions,
		Candidates:  a.CandidateCount,
		RawMoves:    a.RawMoveCount,
		Cached:      a.Cached,
	}
}

// Move represents one entry in a game's history
type Move struct {
	Side      string    `json:"side"`
	Word      string    `json:"word,omitempty"`
	Placement uint64    `json:"placement,omitempty"`
	Pass      bool      `json:"pass,omitempty"`
	PlayedAt  time.Time `json:"played_at"`
}

// Game represents the current game state
type Game struct {
	ID           string    `json:"id"`
	State        string    `json:"state"`
	Rows         int       `json:"rows"`
	Cols         int       `json:"cols"`
	WinThreshold int       `json:"win_threshold"`
	Board        []string  `json:"board"`
	Blue         uint64    `json:"blue"`
	Red          uint64    `json:"red"`
	BlueCount    int       `json:"blue_count"`
	RedCount     int       `json:"red_count"`
	ToMove       string    `json:"to_move"`
	Winner       *string   `json:"winner,omitempty"`
	Moves        []Move    `json:"moves"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GameFromModel converts model.Game to response Game
func GameFromModel(g *model.Game) Game {
	b := model.NewBoard(g.Rows, g.Cols, []rune(g.Letters))

	moves := make([]Move, len(g.Moves))
	for i, m := range g.Moves {
		moves[i] = Move{
			Side:      string(m.Side),
			Word:      m.Word,
			Placement: uint64(m.Placement),
			Pass:      m.IsPass(),
			PlayedAt:  m.PlayedAt,
		}
	}

	var winner *string
	if g.IsComplete() {
		w := string(g.Winner)
		if w == "" {
			w = "draw"
		}
		winner = &w
	}

	return Game{
		ID:           string(g.ID),
		State:        string(g.State),
		Rows:         g.Rows,
		Cols:         g.Cols,
		WinThreshold: g.WinThreshold,
		Board:        b.RowStrings(),
		Blue:         uint64(g.Blue),
		Red:          uint64(g.Red),
		BlueCount:    bitboard.Count(g.Blue),
		RedCount:     bitboard.Count(g.Red),
		ToMove:       string(g.ToMove),
		Winner:       winner,
		Moves:        moves,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

// BotAction represents a move the bot made during a playout
type BotAction struct {
	Type      string `json:"type"`
	Side      string `json:"side,omitempty"`
	Word      string `json:"word,omitempty"`
	Placement uint64 `json:"placement,omitempty"`
}

// Playout is the response after letting bots play
type Playout struct {
	Actions []BotAction `json:"actions"`
	Game    Game        `json:"game"`
}

// PlayoutFromModel converts bot actions and the resulting game
func PlayoutFromModel(actions []bot.BotAction, g *model.Game) Playout {
	out := make([]BotAction, len(actions))
	for i, a := range actions {
		out[i] = BotAction{
			Type:      string(a.Type),
			Side:      string(a.Side),
			Word:      a.Word,
			Placement: uint64(a.Placement),
		}
	}
	return Playout{Actions: out, Game: GameFromModel(g)}
}
