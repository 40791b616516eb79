package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcoot/wordcapture/internal/api/request"
)

// parseSquare parses a "row,col" argument
func parseSquare(arg string) (request.Square, error) {
	rowStr, colStr, ok := strings.Cut(arg, ",")
	if !ok {
		return request.Square{}, fmt.Errorf("square %q must be row,col", arg)
	}

	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return request.Square{}, fmt.Errorf("invalid row in %q: %w", arg, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return request.Square{}, fmt.Errorf("invalid col in %q: %w", arg, err)
	}

	return request.Square{Row: row, Col: col}, nil
}

func parseSquares(args []string) ([]request.Square, error) {
	squares := make([]request.Square, 0, len(args))
	for _, arg := range args {
		sq, err := parseSquare(arg)
		if err != nil {
			return nil, err
		}
		squares = append(squares, sq)
	}
	return squares, nil
}
