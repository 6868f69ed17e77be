package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	cfgFile string
	verbose bool
	seed    int64

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "shelfsort",
	Short: "Sort the books on the shelves by color",
	Long: `shelfsort is a stack sorting puzzle.

Every shelf holds a stack of colored books. A move takes the run of
same-colored books on top of one shelf and puts it on another shelf,
which must be empty or show the same color on top and have room for
the whole run. The game ends when every shelf is empty or full of a
single color.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "game config file (default config/game.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "shuffle seed, 0 picks one from the clock")

	rootCmd.AddCommand(playCmd, tuiCmd, demoCmd, solveCmd, checkCmd)
}

func dealSeed() int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
