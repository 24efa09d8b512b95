package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/cli/internal/store"
)

var statsLimit int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show win rate, streaks and guess distribution",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		st := openStore()
		defer closeQuietly(st, "results store")

		summary, err := st.Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("read stats: %w", err)
		}
		recent, err := st.Recent(cmd.Context(), statsLimit)
		if err != nil {
			return fmt.Errorf("read history: %w", err)
		}
		printStats(cmd.OutOrStdout(), summary, recent)
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVarP(&statsLimit, "last", "n", 5, "number of recent games to list")
	rootCmd.AddCommand(statsCmd)
}

func printStats(w io.Writer, st store.Stats, recent []store.Result) {
	fmt.Fprintf(w, "Played %d  Win %d%%  Current streak %d  Max streak %d\n",
		st.Played, st.WinPercent(), st.CurrentStreak, st.MaxStreak)
	if st.Played == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Guess distribution")
	most := 0
	for _, n := range st.Distribution {
		most = max(most, n)
	}
	for i, n := range st.Distribution {
		bar := 0
		if most > 0 {
			bar = n * 30 / most
		}
		fmt.Fprintf(w, "%d %s %d\n", i+1, strings.Repeat("#", max(bar, 1)), n)
	}

	if len(recent) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Recent games")
	for _, r := range recent {
		outcome := "X/6"
		if r.Won {
			outcome = fmt.Sprintf("%d/6", r.Attempts())
		}
		fmt.Fprintf(w, "%s  %-6s  %s  %s\n", r.Date, r.Mode, r.Target, outcome)
	}
}
