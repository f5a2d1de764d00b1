package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/tui"
)

func newTUICmd(cfg *Config) *cobra.Command {
	var (
		mode         string
		requireValid bool
		logFile      string
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Play in a full-screen terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := game.ParseMode(mode)
			if err != nil {
				return err
			}

			// The alternate screen owns the terminal; logs go to a file or nowhere.
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				log.Logger = zerolog.New(f).With().Timestamp().Logger()
			} else {
				log.Logger = zerolog.Nop()
			}

			app, err := openApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			return tui.Run(cmd.Context(), tui.Deps{
				Lists:        app.Lists,
				Store:        app.Store,
				Clock:        app.Clock,
				Random:       app.Random,
				RequireValid: requireValid,
				Mode:         m,
			})
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "easy", "Initial difficulty: easy or medium")
	cmd.Flags().BoolVar(&requireValid, "require-valid", true, "Reject guesses that are not in the allowed word list")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file while the UI runs")

	return cmd
}
