package shelves

import (
	"math/rand"
)

func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

/*
	Deals height copies of every color 1..Colors across the shelves.
	The pool is shuffled with rng and cut into consecutive chunks of height,
	one per shelf in order, so with more shelves than colors the trailing
	shelves start empty.
*/
func Deal(cfg Config, rng *rand.Rand) (Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool := make([]Color, 0, cfg.Colors*cfg.Height)
	for c := 1; c <= cfg.Colors; c++ {
		for i := 0; i < cfg.Height; i++ {
			pool = append(pool, Color(c))
		}
	}

	for i := len(pool) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}

	board := make(Board, cfg.Quantity)
	for i := range board {
		n := cfg.Height
		if n > len(pool) {
			n = len(pool)
		}
		board[i] = append(Shelf{}, pool[:n]...)
		pool = pool[n:]
	}
	return board, nil
}
