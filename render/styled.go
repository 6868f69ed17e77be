package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/garlicgarrison/shelf-sort/shelves"
)

// Palette maps color ids to terminal colors. Id n uses entry (n-1) mod len.
var Palette = []lipgloss.Color{
	lipgloss.Color("#f2f2f2"), // white
	lipgloss.Color("#e53935"), // red
	lipgloss.Color("#c8a24a"), // ochre
	lipgloss.Color("#2196F3"), // blue
	lipgloss.Color("#ff8a65"), // orange
	lipgloss.Color("#9333ea"), // purple
	lipgloss.Color("#ec4899"), // pink
	lipgloss.Color("#FFC107"), // yellow
	lipgloss.Color("#6b7280"), // gray
	lipgloss.Color("#8BC34A"), // lime
	lipgloss.Color("#4db6ac"), // teal
	lipgloss.Color("#06b6d4"), // cyan
}

func ColorOf(c shelves.Color) lipgloss.Color {
	i := (int(c) - 1) % len(Palette)
	if i < 0 {
		i += len(Palette)
	}
	return Palette[i]
}

// Styled draws the same layout as Text with every book tinted by its color id.
type Styled struct {
	Frame    lipgloss.Style
	Selected lipgloss.Style

	// Highlight marks shelf indexes drawn with the Selected style.
	Highlight map[int]bool
}

func NewStyled() *Styled {
	return &Styled{
		Frame:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		Selected:  lipgloss.NewStyle().Bold(true).Reverse(true),
		Highlight: map[int]bool{},
	}
}

func (s *Styled) Render(w io.Writer, height int, board shelves.Board) error {
	_, err := io.WriteString(w, s.String(height, board))
	return err
}

func (s *Styled) String(height int, board shelves.Board) string {
	bar := s.Frame.Render("|")

	var sb strings.Builder
	for row := height - 1; row >= 0; row-- {
		for _, shelf := range board {
			sb.WriteString(bar)
			sb.WriteRune(' ')
			if row < len(shelf) {
				sb.WriteString(s.book(shelf[row]))
			} else {
				sb.WriteString("  ")
			}
			sb.WriteRune(' ')
		}
		sb.WriteString(bar)
		sb.WriteRune('\n')
	}

	sb.WriteString(s.Frame.Render(strings.Repeat("-", len(board)*5+1)))
	sb.WriteRune('\n')
	for i := range board {
		sb.WriteString(bar)
		sb.WriteRune(' ')
		if s.Highlight[i] {
			sb.WriteString(s.Selected.Render(label(i)))
		} else {
			sb.WriteString(label(i))
		}
		sb.WriteRune(' ')
	}
	sb.WriteString(bar)
	sb.WriteString("\n\n")
	return sb.String()
}

func (s *Styled) book(c shelves.Color) string {
	return lipgloss.NewStyle().Foreground(ColorOf(c)).Render(cell(shelves.Shelf{c}, 0))
}
