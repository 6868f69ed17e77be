package input

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/garlicgarrison/shelf-sort/shelves"
)

var ErrInvalidInput = errors.New("invalid shelf")

// Source supplies moves to a game loop. It returns io.EOF once it has no more.
type Source interface {
	Next(ctx context.Context) (shelves.Move, error)
}

// ParseShelf reads a 1-based shelf number and returns its 0-based index.
func ParseShelf(text string, quantity int) (int, error) {
	text = strings.TrimSpace(text)
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", text, ErrInvalidInput)
	}
	if n < 1 || n > quantity {
		return 0, fmt.Errorf("%d is not between 1 and %d: %w", n, quantity, ErrInvalidInput)
	}
	return n - 1, nil
}
