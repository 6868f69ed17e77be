package shelves

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySource       = errors.New("no book at the source shelf")
	ErrColorMismatch     = errors.New("target shelf has a different color on top")
	ErrInsufficientSpace = errors.New("target shelf does not have enough space")
	ErrShelfOutOfRange   = errors.New("shelf out of range")
)

// Move is a request to move the top run of From onto To, both 0-based.
type Move struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

// String prints the move with shelf numbers as players see them.
func (m Move) String() string {
	return fmt.Sprintf("%d -> %d", m.From+1, m.To+1)
}

/*
	Moves every book of the top color run of the source shelf onto the target
	shelf. All checks run before the board is touched, so a failed move leaves
	both shelves as they were.
*/
func MoveRun(source, target, height int, board Board) error {
	if source < 0 || source >= len(board) {
		return fmt.Errorf("source %d: %w", source+1, ErrShelfOutOfRange)
	}
	if target < 0 || target >= len(board) {
		return fmt.Errorf("target %d: %w", target+1, ErrShelfOutOfRange)
	}

	src := board[source]
	color, ok := src.Top()
	if !ok {
		return fmt.Errorf("shelf %d: %w", source+1, ErrEmptySource)
	}
	batch := src.Run()

	// popping the run first leaves an empty shelf or a different color on top
	if source == target {
		if batch == len(src) {
			return nil
		}
		return fmt.Errorf("shelf %d: %w", target+1, ErrColorMismatch)
	}

	dst := board[target]
	if top, ok := dst.Top(); ok && top != color {
		return fmt.Errorf("shelf %d: %w", target+1, ErrColorMismatch)
	}
	if free := height - len(dst); batch > free {
		return fmt.Errorf("shelf %d has room for %d, need %d: %w", target+1, free, batch, ErrInsufficientSpace)
	}

	board[target] = append(dst, src[len(src)-batch:]...)
	board[source] = src[:len(src)-batch]
	return nil
}

// Apply is MoveRun for a Move value.
func (m Move) Apply(height int, board Board) error {
	return MoveRun(m.From, m.To, height, board)
}

// LegalMoves lists every move that would succeed and relocate at least one book.
func LegalMoves(height int, board Board) []Move {
	moves := []Move{}
	for from, src := range board {
		color, ok := src.Top()
		if !ok {
			continue
		}
		batch := src.Run()

		for to, dst := range board {
			if to == from {
				continue
			}
			if top, ok := dst.Top(); ok && top != color {
				continue
			}
			if batch > height-len(dst) {
				continue
			}
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}
