package render

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garlicgarrison/shelf-sort/shelves"
)

func TestText(t *testing.T) {
	board := shelves.Board{
		{1, 1, 1},
		{2, 3},
		{},
	}

	var buf bytes.Buffer
	require.NoError(t, Text{}.Render(&buf, 3, board))

	want := "" +
		"| 01 |    |    |\n" +
		"| 01 | 03 |    |\n" +
		"| 01 | 02 |    |\n" +
		"----------------\n" +
		"| 01 | 02 | 03 |\n\n"
	assert.Equal(t, want, buf.String())
}

func TestTextDoesNotMutate(t *testing.T) {
	board := shelves.Board{{12, 3}, {}}
	before := board.Clone()

	out := TextString(2, board)
	assert.Contains(t, out, "| 03 |    |\n| 12 |    |\n")
	assert.Equal(t, before, board)
}

func TestStyledMatchesTextLayout(t *testing.T) {
	board := shelves.Board{
		{1, 2},
		{4},
		{},
	}

	s := NewStyled()
	s.Highlight[1] = true
	out := s.String(2, board)
	assert.Equal(t, TextString(2, board), ansi.Strip(out))
}

func TestColorOf(t *testing.T) {
	assert.Equal(t, Palette[0], ColorOf(1))
	assert.Equal(t, Palette[1], ColorOf(2))
	assert.Equal(t, Palette[0], ColorOf(shelves.Color(len(Palette)+1)))
}
