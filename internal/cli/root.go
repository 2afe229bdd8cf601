package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordhunt/internal/factory"
	"github.com/mcoot/wordhunt/internal/model"
)

var cfg *Config

// NewRootCmd creates the root command. Running it without a subcommand
// plays a round.
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "wordhunt",
		Short: "Timed word hunt on a 4x4 letter grid",
		Long: `wordhunt deals a 4x4 grid of letters. Trace words through touching
cells, diagonals included, without reusing a cell. Longer words score more.

Type 'new' during a round for a fresh board, or 'end game' to stop early.`,
		Args:         cobra.NoArgs,
		RunE:         runPlay,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.DictionaryPath, "dictionary", cfg.DictionaryPath, "Word list, one word per line (env: WORDHUNT_DICTIONARY)")
	rootCmd.PersistentFlags().StringVar(&cfg.ScoreLogPath, "score-log", cfg.ScoreLogPath, "Score log file (env: WORDHUNT_SCORE_LOG)")
	rootCmd.PersistentFlags().StringVar(&cfg.ScoreBackend, "score-backend", cfg.ScoreBackend, "Score log backend: csv, sqlite, storage (env: WORDHUNT_SCORE_BACKEND)")
	rootCmd.PersistentFlags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Round storage: memory, redis (env: STORAGE_TYPE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: REDIS_URL)")
	rootCmd.PersistentFlags().DurationVar(&cfg.TimeLimit, "time-limit", cfg.TimeLimit, "Round length (env: WORDHUNT_TIME_LIMIT)")
	rootCmd.PersistentFlags().StringVar(&cfg.HintStrategy, "hints", cfg.HintStrategy, "Possible-words finder: trie, scan (env: WORDHUNT_HINT_STRATEGY)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newBoardCmd())
	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newTraceCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// openApp wires the application from the CLI settings. The caller closes it.
func openApp(cmd *cobra.Command) (*factory.App, error) {
	fc, err := cfg.FactoryConfig(cfg.Logger(cmd.ErrOrStderr()))
	if err != nil {
		return nil, err
	}
	return factory.New(fc)
}

// loadDictionary reads the word list, reporting a missing file the way a
// player expects to see it
func loadDictionary(ctx context.Context, app *factory.App) error {
	err := app.LoadDictionary(ctx)
	if errors.Is(err, model.ErrDictionaryNotFound) {
		return fmt.Errorf("%s not found in the same folder as this program", filepath.Base(cfg.DictionaryPath))
	}
	return err
}
