package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/internal/words"
)

func newWordsCmd(cfg *Config) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "words",
		Short: "Show word list sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := words.Load(cfg.Factory().Words)
			if err != nil {
				return err
			}
			st := lists.Stats()
			out := cmd.OutOrStdout()
			if output == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(st)
			}
			fmt.Fprintf(out, "Easy targets:   %d\n", st.Easy)
			fmt.Fprintf(out, "Medium targets: %d\n", st.Medium)
			fmt.Fprintf(out, "Allowed words:  %d\n", st.Allowed)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json")

	return cmd
}
