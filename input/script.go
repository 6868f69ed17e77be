package input

import (
	"context"
	"io"

	"github.com/garlicgarrison/shelf-sort/shelves"
)

// Script feeds moves produced by a generator function from its own goroutine.
// The generator reports false when it has nothing left.
type Script struct {
	next  func() (shelves.Move, bool)
	moves chan shelves.Move
	quit  chan struct{}
	done  chan struct{}
}

func NewScript(next func() (shelves.Move, bool), buffer int) *Script {
	s := &Script{
		next:  next,
		moves: make(chan shelves.Move, buffer),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go s.feed()
	return s
}

// FromMoves scripts a fixed list of moves.
func FromMoves(moves []shelves.Move) *Script {
	i := 0
	return NewScript(func() (shelves.Move, bool) {
		if i >= len(moves) {
			return shelves.Move{}, false
		}
		m := moves[i]
		i++
		return m, true
	}, len(moves))
}

func (s *Script) feed() {
	defer close(s.done)
	defer close(s.moves)

	for {
		m, ok := s.next()
		if !ok {
			return
		}

		select {
		case s.moves <- m:
		case <-s.quit:
			return
		}
	}
}

func (s *Script) Next(ctx context.Context) (shelves.Move, error) {
	select {
	case m, ok := <-s.moves:
		if !ok {
			return shelves.Move{}, io.EOF
		}
		return m, nil
	case <-ctx.Done():
		return shelves.Move{}, ctx.Err()
	}
}

// Close stops the feeder and waits for it to exit. Safe to call more than once.
func (s *Script) Close() {
	select {
	case <-s.quit:
	default:
		close(s.quit)
	}
	<-s.done
}
