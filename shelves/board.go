package shelves

import (
	"errors"
	"fmt"
)

var (
	ErrShelfCount    = errors.New("shelf count does not match quantity")
	ErrShelfOverflow = errors.New("shelf holds more books than its height")
	ErrInvalidColor  = errors.New("colors must be positive")
)

// IsValid reports whether every color's total is a multiple of height, which
// is what lets each color fill whole shelves. No board is valid for a height
// below one.
func IsValid(height int, board Board) bool {
	if height < 1 {
		return false
	}
	for _, n := range board.Counts() {
		if n%height != 0 {
			return false
		}
	}
	return true
}

// IsFinished reports whether the board is valid and every shelf is either
// empty or complete.
func IsFinished(height int, board Board) bool {
	if !IsValid(height, board) {
		return false
	}
	for _, s := range board {
		if len(s) != 0 && !s.IsComplete(height) {
			return false
		}
	}
	return true
}

// NewBoard checks a literal board against cfg and returns a private copy of it.
func NewBoard(cfg Config, shelves [][]Color) (Board, error) {
	if len(shelves) != cfg.Quantity {
		return nil, fmt.Errorf("got %d shelves, want %d: %w", len(shelves), cfg.Quantity, ErrShelfCount)
	}

	board := make(Board, len(shelves))
	for i, s := range shelves {
		if len(s) > cfg.Height {
			return nil, fmt.Errorf("shelf %d has %d books, height %d: %w", i+1, len(s), cfg.Height, ErrShelfOverflow)
		}
		for _, c := range s {
			if c < 1 {
				return nil, fmt.Errorf("shelf %d holds color %d: %w", i+1, c, ErrInvalidColor)
			}
		}
		board[i] = append(Shelf{}, s...)
	}
	return board, nil
}
