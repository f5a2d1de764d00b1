package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/internal/httpserver"
)

func newServeCmd(cfg *Config) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the leaderboard read-only over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := openApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			srv := httpserver.New(app.Store, app.Lists.Stats())
			return srv.Start(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":"+getEnvOrDefault("PORT", "5175"), "Listen address (env: PORT)")

	return cmd
}
