package game

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/garlicgarrison/shelf-sort/input"
	"github.com/garlicgarrison/shelf-sort/render"
	"github.com/garlicgarrison/shelf-sort/shelves"
	"github.com/garlicgarrison/shelf-sort/solver"
)

func sortable() (shelves.Config, shelves.Board) {
	return shelves.Config{Colors: 3, Height: 3, Quantity: 4}, shelves.Board{
		{1, 1, 1},
		{2, 3, 2},
		{3, 3, 2},
		{},
	}
}

func TestRunScripted(t *testing.T) {
	cfg, board := sortable()
	core, logs := observer.New(zapcore.DebugLevel)
	s := New(cfg, board, zap.New(core))

	src := input.FromMoves([]shelves.Move{
		{From: 1, To: 3},
		{From: 0, To: 1}, // rejected, top colors differ
		{From: 2, To: 3},
		{From: 1, To: 2},
		{From: 1, To: 3},
	})
	defer src.Close()

	var out bytes.Buffer
	require.NoError(t, s.Run(context.Background(), src, render.Text{}, &out))

	assert.True(t, s.Finished())
	assert.Equal(t, 4, s.Moves())
	assert.Contains(t, out.String(), "Cannot move 1 -> 2")
	assert.True(t, strings.HasSuffix(out.String(), FinishedMessage+"\n"))

	assert.Equal(t, 1, logs.FilterMessage("move rejected").Len())
	assert.Equal(t, 4, logs.FilterMessage("moved").Len())
	assert.Equal(t, 1, logs.FilterMessage("board sorted").Len())
	for _, e := range logs.All() {
		assert.Equal(t, s.ID().String(), e.ContextMap()["session"])
	}
}

func TestRunWithSolverPlan(t *testing.T) {
	cfg := shelves.Config{Colors: 3, Height: 3, Quantity: 5}
	s, err := Deal(cfg, 11, nil)
	require.NoError(t, err)

	plan, err := solver.Solve(context.Background(), cfg.Height, s.Board(), 0)
	require.NoError(t, err)

	src := input.FromMoves(plan)
	defer src.Close()
	require.NoError(t, s.Run(context.Background(), src, render.Text{}, io.Discard))
	assert.Equal(t, len(plan), s.Moves())
}

func TestRunStopsOnInput(t *testing.T) {
	cfg, board := sortable()
	s := New(cfg, board, nil)

	var out bytes.Buffer
	src := input.NewPrompt(strings.NewReader("2\n4\nnine\n"), &out, cfg.Quantity)
	err := s.Run(context.Background(), src, render.Text{}, &out)
	assert.ErrorIs(t, err, input.ErrInvalidInput)
	assert.Equal(t, 1, s.Moves())
	assert.False(t, s.Finished())

	s = New(cfg, board.Clone(), nil)
	err = s.Run(context.Background(), input.NewPrompt(strings.NewReader(""), io.Discard, 4), render.Text{}, io.Discard)
	assert.ErrorIs(t, err, io.EOF)
}

func TestRunAlreadyFinished(t *testing.T) {
	cfg := shelves.Config{Colors: 3, Height: 3, Quantity: 4}
	s := New(cfg, shelves.Board{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}, {}}, nil)

	src := input.FromMoves(nil)
	defer src.Close()

	var out bytes.Buffer
	require.NoError(t, s.Run(context.Background(), src, render.Text{}, &out))
	assert.Contains(t, out.String(), FinishedMessage)

	assert.ErrorIs(t, s.Play(shelves.Move{From: 0, To: 3}), ErrFinished)
}

func TestPlay(t *testing.T) {
	cfg, board := sortable()
	s := New(cfg, board, nil)

	err := s.Play(shelves.Move{From: 3, To: 0})
	assert.ErrorIs(t, err, shelves.ErrEmptySource)
	assert.Equal(t, 0, s.Moves())

	require.NoError(t, s.Play(shelves.Move{From: 0, To: 3}))
	assert.Equal(t, shelves.Board{{}, {2, 3, 2}, {3, 3, 2}, {1, 1, 1}}, s.Board())

	b := s.Board()
	b[1][0] = 9
	assert.Equal(t, shelves.Color(2), s.Board()[1][0], "Board returns a copy")
}

func TestHint(t *testing.T) {
	cfg, board := sortable()
	s := New(cfg, board, nil)

	m, err := s.Hint(context.Background())
	require.NoError(t, err)
	require.NoError(t, s.Play(m))
}
