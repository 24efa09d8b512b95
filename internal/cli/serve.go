package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/cli/internal/httpserver"
	"github.com/robalobadob/wordle/apps/cli/internal/play"
	"github.com/robalobadob/wordle/apps/cli/internal/store"
	"github.com/robalobadob/wordle/apps/cli/internal/words"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game as a JSON API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signalContext(cmd.Context())
		defer stop()

		l, err := loadWords()
		if err != nil {
			return err
		}
		st := openStore()
		defer closeQuietly(st, "results store")

		games, err := play.New(play.Options{Words: l, Picker: picker(), Store: st, Strict: cfg.Strict})
		if err != nil {
			return err
		}
		daily, err := play.New(play.Options{
			Words:     l,
			Picker:    words.DailyPicker{Salt: cfg.DailySalt},
			Store:     st,
			Mode:      store.ModeDaily,
			Strict:    cfg.Strict,
			Unlimited: true,
		})
		if err != nil {
			return err
		}

		addr := serveAddr
		if addr == "" {
			addr = ":" + cfg.Port
		}
		log.Info().Str("addr", addr).Msg("starting wordle server")
		return httpserver.New(games, daily).ListenAndServe(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default :$PORT or :5175)")
	rootCmd.AddCommand(serveCmd)
}
