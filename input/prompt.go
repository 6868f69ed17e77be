package input

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/garlicgarrison/shelf-sort/shelves"
)

// Prompt asks a human for the source and target shelves, one line each.
type Prompt struct {
	r        *bufio.Reader
	w        io.Writer
	quantity int
}

func NewPrompt(r io.Reader, w io.Writer, quantity int) *Prompt {
	return &Prompt{
		r:        bufio.NewReader(r),
		w:        w,
		quantity: quantity,
	}
}

func (p *Prompt) Next(ctx context.Context) (shelves.Move, error) {
	from, err := p.ask(ctx, "source")
	if err != nil {
		return shelves.Move{}, err
	}
	to, err := p.ask(ctx, "target")
	if err != nil {
		return shelves.Move{}, err
	}
	return shelves.Move{From: from, To: to}, nil
}

func (p *Prompt) ask(ctx context.Context, which string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	fmt.Fprintf(p.w, "Enter the %s shelf (1-%d): ", which, p.quantity)
	line, err := p.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return 0, err
	}

	idx, err := ParseShelf(line, p.quantity)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", which, err)
	}
	return idx, nil
}
