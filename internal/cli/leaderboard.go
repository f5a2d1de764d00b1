package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/leaderboard"
	"github.com/robalobadob/wordle/internal/ui"
)

// RankedEntry is one leaderboard row in JSON output.
type RankedEntry struct {
	Rank int
	leaderboard.Entry
}

// MarshalJSON flattens the rank into the entry object.
func (r RankedEntry) MarshalJSON() ([]byte, error) {
	entry, err := json.Marshal(r.Entry)
	if err != nil {
		return nil, err
	}
	return append([]byte(fmt.Sprintf(`{"rank":%d,`, r.Rank)), entry[1:]...), nil
}

func newLeaderboardCmd(cfg *Config) *cobra.Command {
	var (
		mode   string
		n      int
		output string
	)

	cmd := &cobra.Command{
		Use:     "leaderboard",
		Aliases: []string{"lb"},
		Short:   "Show the fastest times for a mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			modes := game.Modes
			if mode != "all" {
				m, err := game.ParseMode(mode)
				if err != nil {
					return err
				}
				modes = []game.Mode{m}
			}
			if output != "text" && output != "json" {
				return fmt.Errorf("invalid output format %q: must be text or json", output)
			}

			app, err := openApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			out := cmd.OutOrStdout()
			rows := []RankedEntry{}
			empty := true
			for _, m := range modes {
				top := app.Store.TopN(cmd.Context(), m, n)
				if len(top) > 0 {
					empty = false
				}
				if output == "text" {
					ui.WriteTop(out, m, top)
					continue
				}
				for i, e := range top {
					e.Mode = e.EffectiveMode()
					rows = append(rows, RankedEntry{Rank: i + 1, Entry: e})
				}
			}
			if output == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}
			if fb, ok := app.Store.Backend().(*leaderboard.FileBackend); ok && empty {
				fmt.Fprintf(out, "Leaderboard file: %s\n", fb.Path())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "easy", "Difficulty: easy, medium or all")
	cmd.Flags().IntVarP(&n, "limit", "n", 10, "Number of entries to show")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json")

	return cmd
}
