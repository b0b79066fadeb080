package othello

import (
	"fmt"
	"strings"

	"github.com/lgbarn/othello-player/internal/errors"
)

// InitialDiagram is the diagram of the standard starting position.
const InitialDiagram = "......../......../......../...OX.../...XO.../......../......../........"

// ParseBoard creates a board from a diagram: eight rows of eight characters,
// 'X' for black, 'O' for white and '.' for empty, row 1 first. Rows are
// separated by '/' or newlines; surrounding whitespace is ignored.
func ParseBoard(diagram string) (*Board, error) {
	rows := splitRows(diagram)
	if len(rows) != BoardSize {
		return nil, fmt.Errorf("%d rows, want %d: %w", len(rows), BoardSize, errors.ErrInvalidPosition)
	}

	board := NewBoard()
	for row, text := range rows {
		if len(text) != BoardSize {
			return nil, fmt.Errorf("row %d has %d squares, want %d: %w",
				row+1, len(text), BoardSize, errors.ErrInvalidPosition)
		}
		for col := 0; col < BoardSize; col++ {
			disc, ok := discFromLetter(text[col])
			if !ok {
				return nil, fmt.Errorf("invalid square character %q at %s: %w",
					text[col], NewMove(row, col), errors.ErrInvalidPosition)
			}
			board.Squares[row][col] = disc
		}
	}
	return board, nil
}

// FormatBoard returns the diagram of a board with rows joined by sep.
func FormatBoard(b *Board, sep string) string {
	rows := make([]string, BoardSize)
	var line [BoardSize]byte
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			line[col] = b.Squares[row][col].Letter()
		}
		rows[row] = string(line[:])
	}
	return strings.Join(rows, sep)
}

// splitRows splits a diagram into non-empty trimmed rows.
func splitRows(diagram string) []string {
	fields := strings.FieldsFunc(diagram, func(r rune) bool {
		return r == '/' || r == '\n' || r == '\r'
	})
	rows := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			rows = append(rows, f)
		}
	}
	return rows
}

func discFromLetter(c byte) (Disc, bool) {
	switch c {
	case 'X', 'x', 'B', 'b':
		return BlackDisc, true
	case 'O', 'o', 'W', 'w':
		return WhiteDisc, true
	case '.', '-':
		return Empty, true
	default:
		return Empty, false
	}
}
