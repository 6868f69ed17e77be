// Package game runs one play-through of a board against an input source.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	guuid "github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/garlicgarrison/shelf-sort/input"
	"github.com/garlicgarrison/shelf-sort/render"
	"github.com/garlicgarrison/shelf-sort/shelves"
	"github.com/garlicgarrison/shelf-sort/solver"
)

const FinishedMessage = "Congratulations! You've completed the game!"

var ErrFinished = errors.New("game already finished")

type Session struct {
	id    guuid.UUID
	cfg   shelves.Config
	board shelves.Board
	moves int
	log   *zap.Logger
}

// New starts a session on board, which the session owns from here on.
func New(cfg shelves.Config, board shelves.Board, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	id := guuid.New()

	return &Session{
		id:    id,
		cfg:   cfg,
		board: board,
		log:   log.With(zap.String("session", id.String())),
	}
}

// Deal starts a session on a freshly shuffled board.
func Deal(cfg shelves.Config, seed int64, log *zap.Logger) (*Session, error) {
	board, err := shelves.Deal(cfg, shelves.NewRand(seed))
	if err != nil {
		return nil, err
	}

	s := New(cfg, board, log)
	s.log.Info("dealt board",
		zap.Int64("seed", seed),
		zap.Int("colors", cfg.Colors),
		zap.Int("height", cfg.Height),
		zap.Int("quantity", cfg.Quantity),
	)
	return s, nil
}

func (s *Session) ID() guuid.UUID { return s.id }

func (s *Session) Config() shelves.Config { return s.cfg }

// Board returns a copy of the current board.
func (s *Session) Board() shelves.Board { return s.board.Clone() }

// Moves counts the successful moves so far.
func (s *Session) Moves() int { return s.moves }

func (s *Session) Finished() bool {
	return shelves.IsFinished(s.cfg.Height, s.board)
}

// Play applies one move. Engine errors leave the board untouched.
func (s *Session) Play(m shelves.Move) error {
	if s.Finished() {
		return ErrFinished
	}

	if err := m.Apply(s.cfg.Height, s.board); err != nil {
		s.log.Info("move rejected", zap.Stringer("move", m), zap.Error(err))
		return err
	}

	s.moves++
	s.log.Debug("moved", zap.Stringer("move", m), zap.Int("moves", s.moves))
	if s.Finished() {
		s.log.Info("board sorted", zap.Int("moves", s.moves))
	}
	return nil
}

// Hint asks the solver for the next move on the current board.
func (s *Session) Hint(ctx context.Context) (shelves.Move, error) {
	return solver.Hint(ctx, s.cfg.Height, s.board, solver.DefaultLimit)
}

/*
	Renders the board and plays moves from src until the board is sorted.
	Rejected moves are reported on out and the loop carries on; errors from
	src (malformed shelf numbers, end of input, cancellation) end the game
	and are returned.
*/
func (s *Session) Run(ctx context.Context, src input.Source, r render.Renderer, out io.Writer) error {
	s.log.Info("game started", zap.Bool("valid", shelves.IsValid(s.cfg.Height, s.board)))
	if err := r.Render(out, s.cfg.Height, s.board); err != nil {
		return err
	}

	for !s.Finished() {
		m, err := src.Next(ctx)
		if err != nil {
			s.log.Info("game stopped", zap.Error(err), zap.Int("moves", s.moves))
			return err
		}

		if err := s.Play(m); err != nil {
			fmt.Fprintf(out, "Cannot move %s: %v\n", m, err)
			continue
		}

		if err := r.Render(out, s.cfg.Height, s.board); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, FinishedMessage)
	return nil
}
