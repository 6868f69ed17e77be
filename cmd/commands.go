package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/garlicgarrison/shelf-sort/fixture"
	"github.com/garlicgarrison/shelf-sort/game"
	"github.com/garlicgarrison/shelf-sort/input"
	"github.com/garlicgarrison/shelf-sort/render"
	"github.com/garlicgarrison/shelf-sort/shelves"
	"github.com/garlicgarrison/shelf-sort/solver"
	"github.com/garlicgarrison/shelf-sort/tui"
)

var (
	boardFile string
	plain     bool
	delay     time.Duration
	limit     int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal, one shelf number per line",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		src := input.NewPrompt(cmd.InOrStdin(), cmd.OutOrStdout(), s.Config().Quantity)
		err = s.Run(ctx, src, renderer(), cmd.OutOrStdout())
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			fmt.Fprintln(cmd.OutOrStdout(), "\nGame abandoned.")
			return nil
		}
		return err
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play with the interactive terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		return tui.Run(s)
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Deal a board and watch the solver sort it",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		plan, err := solver.Plan(ctx, s.Config().Height, s.Board(), limit)
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}
		logger.Info("demo plan", zap.Int("moves", len(plan)), zap.String("session", s.ID().String()))

		ctx, cancel := context.WithCancel(ctx)
		src := input.NewScript(paced(ctx, plan, delay), 0)
		defer func() {
			cancel()
			src.Close()
		}()

		return s.Run(ctx, src, renderer(), cmd.OutOrStdout())
	},
}

var solveCmd = &cobra.Command{
	Use:   "solve <fixture.yaml>",
	Short: "Print a solution for a board fixture, shortest when the search allows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := fixture.Load(args[0])
		if err != nil {
			return err
		}

		plan, err := solver.Plan(cmd.Context(), f.Config.Height, f.Board, limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Solved in %d moves\n", len(plan))
		for i, m := range plan {
			fmt.Fprintf(out, "%3d. %s\n", i+1, m)
		}
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <fixture.yaml>",
	Short: "Render a board fixture and report whether it is valid and finished",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := fixture.Load(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if err := renderer().Render(out, f.Config.Height, f.Board); err != nil {
			return err
		}
		fmt.Fprintf(out, "valid: %t\n", shelves.IsValid(f.Config.Height, f.Board))
		fmt.Fprintf(out, "finished: %t\n", shelves.IsFinished(f.Config.Height, f.Board))
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{playCmd, tuiCmd, demoCmd} {
		addShapeFlags(c.Flags())
		c.Flags().StringVar(&boardFile, "board", "", "start from a board fixture instead of a shuffled deal, not combinable with --colors/--height/--quantity")
	}
	for _, c := range []*cobra.Command{playCmd, demoCmd, checkCmd} {
		c.Flags().BoolVar(&plain, "plain", false, "render without colors")
	}
	demoCmd.Flags().DurationVar(&delay, "delay", 500*time.Millisecond, "pause between moves")
	demoCmd.Flags().IntVar(&limit, "limit", solver.DefaultLimit, "maximum boards the solver may visit")
	solveCmd.Flags().IntVar(&limit, "limit", solver.DefaultLimit, "maximum boards the solver may visit")
}

var errBoardShape = errors.New("--board fixes the board shape, drop --colors/--height/--quantity")

func newSession(cmd *cobra.Command) (*game.Session, error) {
	if boardFile != "" {
		for _, name := range []string{"colors", "height", "quantity"} {
			if cmd.Flags().Changed(name) {
				return nil, errBoardShape
			}
		}
		f, err := fixture.Load(boardFile)
		if err != nil {
			return nil, err
		}
		return game.New(f.Config, f.Board, logger), nil
	}

	cfg, err := loadConfig(cfgFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	return game.Deal(cfg, dealSeed(), logger)
}

// paced yields plan one move at a time, waiting delay before each. It stops
// early once ctx is done.
func paced(ctx context.Context, plan []shelves.Move, delay time.Duration) func() (shelves.Move, bool) {
	i := 0
	return func() (shelves.Move, bool) {
		if i >= len(plan) {
			return shelves.Move{}, false
		}

		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return shelves.Move{}, false
		}

		m := plan[i]
		i++
		return m, true
	}
}

func renderer() render.Renderer {
	if plain {
		return render.Text{}
	}
	return render.NewStyled()
}
