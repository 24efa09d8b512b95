// Package cli defines the wordle command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/cli/internal/config"
	"github.com/robalobadob/wordle/apps/cli/internal/logging"
	"github.com/robalobadob/wordle/apps/cli/internal/store"
	"github.com/robalobadob/wordle/apps/cli/internal/words"
)

// version is set at build time with -ldflags "-X .../internal/cli.version=...".
var version = "dev"

// cfg is loaded once per invocation in PersistentPreRunE.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Guess the hidden five letter word in six tries",
	Long: `Guess the hidden five letter word in six tries.

After every guess each letter is marked:
  green  - right letter, right spot
  yellow - in the word, wrong spot
  gray   - not in the word (or no more of it left)

Configuration comes from ~/.cli-wordle/config.toml, a .env file and
environment variables (see LOG_LEVEL, WORDS_ANSWERS_FILE, WORDS_ALLOWED_FILE,
WORDLE_DB, DAILY_SALT, WORDLE_SEED, WORDLE_STRICT).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		if cfg, err = config.Load(""); err != nil {
			return err
		}
		return logging.Setup(cfg.LogLevel, logging.Console())
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGame(cmd, store.ModeRandom)
	},
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wordle:", err)
		return 1
	}
	return 0
}

// signalContext is cancelled on SIGINT/SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// loadWords resolves the configured word lists.
func loadWords() (*words.Lists, error) {
	l, err := words.Load(words.Source{AnswersFile: cfg.AnswersFile, AllowedFile: cfg.AllowedFile})
	if err != nil {
		return nil, fmt.Errorf("failed to load word lists: %w", err)
	}
	return l, nil
}

// openStore opens the results history. A broken database never blocks
// play: it degrades to an in-memory history.
func openStore() store.Store {
	if !cfg.PersistHistory() {
		return store.NewMemory()
	}
	s, err := store.OpenSQLite(cfg.Database)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Database).Msg("results history unavailable, not saving this session")
		return store.NewMemory()
	}
	return s
}

// picker honours WORDLE_SEED for reproducible targets.
func picker() words.Picker {
	if cfg.Seed != nil {
		return words.NewSeededPicker(*cfg.Seed)
	}
	return words.NewCryptoPicker()
}

func closeQuietly(c io.Closer, what string) {
	if err := c.Close(); err != nil {
		log.Warn().Err(err).Msg("close " + what)
	}
}
