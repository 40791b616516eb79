package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mcoot/wordcapture/internal/api/response"
	"github.com/mcoot/wordcapture/internal/bitboard"
	"github.com/mcoot/wordcapture/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to stdout
func NewOutput(format string) *Output {
	return &Output{format: format, w: os.Stdout}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Analysis:
		o.printAnalysis(v)
	case response.Game:
		o.printGame(v)
	case response.Playout:
		o.printPlayout(v)
	case response.Health:
		o.printHealth(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printAnalysis(a response.Analysis) {
	fmt.Fprintln(o.w, "Position (ours in parentheses, theirs in brackets):")
	o.printBoard(splitRows(a.Board, a.Cols), a.Ours, a.Theirs)

	cached := ""
	if a.Cached {
		cached = " (cached)"
	}
	fmt.Fprintf(o.w, "\n%d candidate words, %d placements%s\n", a.Candidates, a.RawMoves, cached)

	if len(a.Suggestions) == 0 {
		fmt.Fprintln(o.w, "No moves available; pass.")
		return
	}

	fmt.Fprintln(o.w, "\nSuggestions:")
	for i, s := range a.Suggestions {
		fmt.Fprintf(o.w, "%3d. %-12s ours %2d  theirs %2d%s  %s\n",
			i+1, s.Word,
			bitboard.Count(model.Mask(s.Ours)),
			bitboard.Count(model.Mask(s.Theirs)),
			enderLabel(s.GameEnder),
			formatSquares(s.Squares),
		)
	}

	if o.verbose() {
		top := a.Suggestions[0]
		fmt.Fprintf(o.w, "\nAfter %s:\n", top.Word)
		o.printBoard(splitRows(a.Board, a.Cols), top.Ours, top.Theirs)
	}
}

func (o *Output) printGame(g response.Game) {
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	fmt.Fprintf(o.w, "State: %s\n", g.State)
	fmt.Fprintf(o.w, "Blue: %d  Red: %d  (%d to win)\n", g.BlueCount, g.RedCount, g.WinThreshold)

	if g.Winner != nil {
		fmt.Fprintf(o.w, "Winner: %s\n", *g.Winner)
	} else {
		fmt.Fprintf(o.w, "To move: %s\n", g.ToMove)
	}

	fmt.Fprintln(o.w, "\nBoard (blue in parentheses, red in brackets):")
	o.printBoard(g.Board, g.Blue, g.Red)

	if len(g.Moves) > 0 {
		fmt.Fprintln(o.w, "\nMoves:")
		for i, m := range g.Moves {
			if m.Pass {
				fmt.Fprintf(o.w, "%3d. %-4s pass\n", i+1, m.Side)
			} else {
				fmt.Fprintf(o.w, "%3d. %-4s %s\n", i+1, m.Side, m.Word)
			}
		}
	}
}

func (o *Output) printPlayout(p response.Playout) {
	for _, a := range p.Actions {
		switch a.Type {
		case "play":
			fmt.Fprintf(o.w, "%s played %s\n", a.Side, a.Word)
		case "pass":
			fmt.Fprintf(o.w, "%s passed\n", a.Side)
		case "game_complete":
			fmt.Fprintln(o.w, "Game complete!")
		}
	}
	fmt.Fprintln(o.w)
	o.printGame(p.Game)
}

func (o *Output) printHealth(h response.Health) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
	fmt.Fprintf(o.w, "Board: %dx%d\n", h.Rows, h.Cols)
	fmt.Fprintf(o.w, "Dictionary: %d words\n", h.DictionaryWords)
}

// printBoard draws the letter grid, marking squares in first with
// parentheses and squares in second with brackets
func (o *Output) printBoard(rows []string, first, second uint64) {
	if len(rows) == 0 {
		return
	}
	cols := len(rows[0])

	// Print column headers
	fmt.Fprint(o.w, "    ")
	for col := 0; col < cols; col++ {
		fmt.Fprintf(o.w, " %d ", col)
	}
	fmt.Fprintln(o.w)

	border := "   +" + strings.Repeat("---", cols) + "+"
	fmt.Fprintln(o.w, border)

	for row, letters := range rows {
		fmt.Fprintf(o.w, " %d |", row)
		for col, letter := range letters {
			bit := uint64(1) << (row*cols + col)
			switch {
			case first&bit != 0:
				fmt.Fprintf(o.w, "(%c)", letter-'a'+'A')
			case second&bit != 0:
				fmt.Fprintf(o.w, "[%c]", letter-'a'+'A')
			default:
				fmt.Fprintf(o.w, " %c ", letter)
			}
		}
		fmt.Fprintln(o.w, "|")
	}

	fmt.Fprintln(o.w, border)
}

func (o *Output) verbose() bool {
	return cfg != nil && cfg.Verbose
}

func splitRows(letters string, cols int) []string {
	if cols <= 0 {
		return nil
	}
	var rows []string
	for len(letters) >= cols {
		rows = append(rows, letters[:cols])
		letters = letters[cols:]
	}
	return rows
}

func enderLabel(ender int) string {
	switch ender {
	case model.GameEnderWin:
		return "  wins"
	case model.GameEnderLoss:
		return "  loses"
	default:
		return ""
	}
}

func formatSquares(squares []response.Square) string {
	parts := make([]string, len(squares))
	for i, sq := range squares {
		parts[i] = fmt.Sprintf("%d,%d", sq.Row, sq.Col)
	}
	return strings.Join(parts, " ")
}
