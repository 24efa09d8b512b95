package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/robalobadob/wordle/apps/cli/internal/console"
	"github.com/robalobadob/wordle/apps/cli/internal/logging"
	"github.com/robalobadob/wordle/apps/cli/internal/play"
	"github.com/robalobadob/wordle/apps/cli/internal/store"
	"github.com/robalobadob/wordle/apps/cli/internal/tui"
	"github.com/robalobadob/wordle/apps/cli/internal/words"
)

// runGame plays rounds in mode on the board, or line by line when stdin
// is not a terminal.
func runGame(cmd *cobra.Command, mode store.Mode) error {
	ctx, stop := signalContext(cmd.Context())
	defer stop()

	l, err := loadWords()
	if err != nil {
		return err
	}
	st := openStore()
	defer closeQuietly(st, "results store")

	var p words.Picker = picker()
	if mode == store.ModeDaily {
		p = words.DailyPicker{Salt: cfg.DailySalt, Now: time.Now}
	}
	loop, err := play.New(play.Options{
		Words:  l,
		Picker: p,
		Store:  st,
		Mode:   mode,
		Strict: cfg.Strict,
	})
	if err != nil {
		return err
	}

	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	if !isTerminal(in) {
		return console.Run(ctx, loop, in, out)
	}

	closeLog, err := logging.Interactive(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeQuietly(closer(closeLog), "log file")

	m, err := tui.New(ctx, loop)
	if errors.Is(err, play.ErrDailyPlayed) {
		fmt.Fprintln(out, err.Error())
		return nil
	}
	if err != nil {
		return err
	}

	prog := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	if _, err := prog.Run(); err != nil {
		if errors.Is(err, tea.ErrInterrupted) || errors.Is(err, tea.ErrProgramKilled) {
			fmt.Fprintln(out)
			fmt.Fprintln(out, tui.Farewell)
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	if err := m.Err(); err != nil {
		log.Error().Err(err).Msg("board stopped")
		return err
	}
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type closer func() error

func (c closer) Close() error { return c() }
