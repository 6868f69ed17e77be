// Package render draws a board as side-by-side vertical shelves.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/garlicgarrison/shelf-sort/shelves"
)

// Renderer writes a read-only view of the board.
type Renderer interface {
	Render(w io.Writer, height int, board shelves.Board) error
}

// Text is the plain renderer, one five character cell per shelf.
type Text struct{}

func (Text) Render(w io.Writer, height int, board shelves.Board) error {
	_, err := io.WriteString(w, TextString(height, board))
	return err
}

func TextString(height int, board shelves.Board) string {
	var sb strings.Builder
	for row := height - 1; row >= 0; row-- {
		for _, s := range board {
			sb.WriteString("| ")
			sb.WriteString(cell(s, row))
			sb.WriteRune(' ')
		}
		sb.WriteString("|\n")
	}

	sb.WriteString(strings.Repeat("-", len(board)*5+1))
	sb.WriteRune('\n')
	for i := range board {
		sb.WriteString(fmt.Sprintf("| %s ", label(i)))
	}
	sb.WriteString("|\n\n")
	return sb.String()
}

// cell is the two character content of a shelf at row, blank above its top.
func cell(s shelves.Shelf, row int) string {
	if row >= len(s) {
		return "  "
	}
	return fmt.Sprintf("%02d", int(s[row]))
}

func label(i int) string {
	return fmt.Sprintf("%02d", i+1)
}
