package shelves

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name                     string
		colors, height, quantity int
		ok                       bool
	}{
		{"default", 6, 5, 9, true},
		{"exact fit", 3, 3, 3, true},
		{"one of everything", 1, 1, 1, true},
		{"no colors", 0, 5, 9, false},
		{"no height", 6, 0, 9, false},
		{"no shelves", 6, 5, 0, false},
		{"too many colors", 10, 5, 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewConfig(tt.colors, tt.height, tt.quantity)
			if !tt.ok {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Config{Colors: tt.colors, Height: tt.height, Quantity: tt.quantity}, cfg)
		})
	}

	assert.NoError(t, DefaultConfig.Validate())
}

func TestDeal(t *testing.T) {
	cfg := DefaultConfig

	board, err := Deal(cfg, NewRand(42))
	require.NoError(t, err)
	require.Len(t, board, cfg.Quantity)

	var total int
	for i, s := range board {
		assert.LessOrEqual(t, len(s), cfg.Height)
		if i < cfg.Colors {
			assert.Len(t, s, cfg.Height, "pool fills shelves in order")
		} else {
			assert.Empty(t, s)
		}
		total += len(s)
	}
	assert.Equal(t, cfg.Colors*cfg.Height, total)
	assert.True(t, IsValid(cfg.Height, board))

	counts := board.Counts()
	assert.Len(t, counts, cfg.Colors)
	for c := 1; c <= cfg.Colors; c++ {
		assert.Equal(t, cfg.Height, counts[Color(c)])
	}
}

func TestDealIsSeeded(t *testing.T) {
	cfg := Config{Colors: 4, Height: 3, Quantity: 5}

	a, err := Deal(cfg, NewRand(1))
	require.NoError(t, err)
	b, err := Deal(cfg, NewRand(1))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDealRejectsBadConfig(t *testing.T) {
	_, err := Deal(Config{Colors: 3, Height: 3, Quantity: 2}, NewRand(1))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
