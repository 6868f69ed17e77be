package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/garlicgarrison/shelf-sort/shelves"
)

// Fixture is a hand-authored starting board together with its shape.
type Fixture struct {
	Config shelves.Config
	Board  shelves.Board
}

type document struct {
	Colors   int               `yaml:"colors"`
	Height   int               `yaml:"height"`
	Quantity int               `yaml:"quantity"`
	Shelves  [][]shelves.Color `yaml:"shelves"`
}

/*
	Parses a yaml fixture. quantity defaults to the number of shelves
	listed and colors to the number of distinct colors on them.
*/
func Parse(data []byte) (*Fixture, error) {
	var doc document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}

	if doc.Quantity == 0 {
		doc.Quantity = len(doc.Shelves)
	}
	if doc.Colors == 0 {
		seen := make(map[shelves.Color]bool)
		for _, s := range doc.Shelves {
			for _, c := range s {
				seen[c] = true
			}
		}
		// a literal board only has to respect its height and positive ids,
		// so an implied palette never exceeds the shelf count
		doc.Colors = min(len(seen), doc.Quantity)
	}

	cfg, err := shelves.NewConfig(doc.Colors, doc.Height, doc.Quantity)
	if err != nil {
		return nil, err
	}
	board, err := shelves.NewBoard(cfg, doc.Shelves)
	if err != nil {
		return nil, err
	}

	return &Fixture{
		Config: cfg,
		Board:  board,
	}, nil
}

func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Marshal writes a board back out in fixture form.
func Marshal(cfg shelves.Config, board shelves.Board) ([]byte, error) {
	doc := document{
		Colors:   cfg.Colors,
		Height:   cfg.Height,
		Quantity: cfg.Quantity,
		Shelves:  make([][]shelves.Color, len(board)),
	}
	for i, s := range board {
		doc.Shelves[i] = append([]shelves.Color{}, s...)
	}
	return yaml.Marshal(doc)
}
