package shelves

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid game config")

// Config is the shape of a game. Build it with NewConfig so the invariants hold.
type Config struct {
	Colors   int `yaml:"colors" mapstructure:"colors"`
	Height   int `yaml:"height" mapstructure:"height"`
	Quantity int `yaml:"quantity" mapstructure:"quantity"`
}

// DefaultConfig is the classic 6 colors on 9 shelves of 5.
var DefaultConfig = Config{
	Colors:   6,
	Height:   5,
	Quantity: 9,
}

func NewConfig(colors, height, quantity int) (Config, error) {
	cfg := Config{
		Colors:   colors,
		Height:   height,
		Quantity: quantity,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every dimension is positive and that colors*height
// books fit on the shelves.
func (c Config) Validate() error {
	switch {
	case c.Colors < 1:
		return fmt.Errorf("colors %d: %w", c.Colors, ErrInvalidConfig)
	case c.Height < 1:
		return fmt.Errorf("height %d: %w", c.Height, ErrInvalidConfig)
	case c.Quantity < 1:
		return fmt.Errorf("quantity %d: %w", c.Quantity, ErrInvalidConfig)
	case c.Colors > c.Quantity:
		return fmt.Errorf("%d colors do not fit on %d shelves: %w", c.Colors, c.Quantity, ErrInvalidConfig)
	}
	return nil
}
