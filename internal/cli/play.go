package cli

import (
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/internal/console"
	"github.com/robalobadob/wordle/internal/game"
)

func newPlayCmd(cfg *Config) *cobra.Command {
	var (
		mode         string
		name         string
		dailyWord    bool
		requireValid bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one game in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			var m game.Mode
			if mode != "" {
				var err error
				if m, err = game.ParseMode(mode); err != nil {
					return err
				}
			}

			app, err := openApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			c := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), app.Lists, app.Store, app.Clock, app.Random)
			_, err = c.Play(cmd.Context(), console.Options{
				Mode:         m,
				Name:         name,
				Daily:        dailyWord,
				DailySalt:    cfg.DailySalt,
				RequireValid: requireValid,
			})
			return err
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Difficulty: easy or medium (asks when empty)")
	cmd.Flags().StringVar(&name, "name", "", "Player name for the leaderboard (asks when empty)")
	cmd.Flags().BoolVar(&dailyWord, "daily", false, "Play the word of the day (not recorded)")
	cmd.Flags().BoolVar(&requireValid, "require-valid", true, "Reject guesses that are not in the allowed word list")

	return cmd
}
