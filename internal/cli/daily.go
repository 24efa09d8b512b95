package cli

import (
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/cli/internal/store"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Play the word of the day",
	Long: `Play the word of the day. Everyone gets the same word on a given UTC date;
each day can be finished once.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGame(cmd, store.ModeDaily)
	},
}

func init() {
	rootCmd.AddCommand(dailyCmd)
}
