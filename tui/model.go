// Package tui is an interactive terminal front-end for a game session.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/garlicgarrison/shelf-sort/game"
	"github.com/garlicgarrison/shelf-sort/render"
	"github.com/garlicgarrison/shelf-sort/shelves"
	"github.com/garlicgarrison/shelf-sort/solver"
)

const hintTimeout = 2 * time.Second

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
)

type Model struct {
	session  *game.Session
	renderer *render.Styled

	cursor   int
	selected int // -1 while no source shelf is picked
	status   string
	failed   bool
	quitting bool
}

// hintMsg carries a solver suggestion for the board as it was after moves
// moves.
type hintMsg struct {
	moves int
	move  shelves.Move
	err   error
}

func New(s *game.Session) Model {
	return Model{
		session:  s,
		renderer: render.NewStyled(),
		selected: -1,
		status:   "Pick a shelf to move from.",
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hintMsg:
		// a move landed while the solver ran
		if msg.moves != m.session.Moves() {
			return m, nil
		}
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("No hint: %v", msg.err), true)
		} else {
			m.setStatus(fmt.Sprintf("Try %s.", msg.move), false)
		}
		return m, nil
	case tea.KeyMsg:
		return m.key(msg)
	}
	return m, nil
}

func (m Model) key(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	quantity := m.session.Config().Quantity
	switch k := key.String(); k {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "left", "h":
		m.cursor = (m.cursor + quantity - 1) % quantity
	case "right", "l":
		m.cursor = (m.cursor + 1) % quantity
	case "esc":
		m.selected = -1
		m.setStatus("Selection cleared.", false)
	case "?":
		m.setStatus("Looking for a hint...", false)
		return m, m.hint()
	case "enter", " ":
		return m.pick()
	default:
		if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
			if i := int(k[0] - '1'); i < quantity {
				m.cursor = i
			}
		}
	}
	return m, nil
}

func (m Model) pick() (tea.Model, tea.Cmd) {
	if m.session.Finished() {
		return m, tea.Quit
	}

	if m.selected < 0 {
		m.selected = m.cursor
		m.setStatus(fmt.Sprintf("Moving from shelf %d, pick a target.", m.cursor+1), false)
		return m, nil
	}

	mv := shelves.Move{From: m.selected, To: m.cursor}
	m.selected = -1
	if err := m.session.Play(mv); err != nil {
		m.setStatus(fmt.Sprintf("Cannot move %s: %v", mv, err), true)
		return m, nil
	}

	if m.session.Finished() {
		m.setStatus(game.FinishedMessage, false)
		return m, nil
	}
	m.setStatus(fmt.Sprintf("Moved %s.", mv), false)
	return m, nil
}

// hint searches a snapshot of the board off the event loop.
func (m Model) hint() tea.Cmd {
	height := m.session.Config().Height
	board := m.session.Board()
	moves := m.session.Moves()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), hintTimeout)
		defer cancel()

		mv, err := solver.Hint(ctx, height, board, solver.DefaultLimit)
		return hintMsg{moves: moves, move: mv, err: err}
	}
}

func (m *Model) setStatus(s string, failed bool) {
	m.status = s
	m.failed = failed
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	highlight := map[int]bool{m.cursor: true}
	if m.selected >= 0 {
		highlight[m.selected] = true
	}
	m.renderer.Highlight = highlight

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Shelf sort - %d moves", m.session.Moves())))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderer.String(m.session.Config().Height, m.session.Board()))

	if m.failed {
		sb.WriteString(errorStyle.Render(m.status))
	} else {
		sb.WriteString(statusStyle.Render(m.status))
	}
	sb.WriteString("\n\n")
	sb.WriteString(helpStyle.Render("←/→ or 1-9 choose • enter pick • esc clear • ? hint • q quit"))
	sb.WriteString("\n")
	return sb.String()
}

// Run blocks until the player quits.
func Run(s *game.Session, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(s), opts...).Run()
	return err
}
