package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sikiriki12/imgx/internal/providers"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models available to your API key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		client := providers.NewGemini(providerConfig(cfg))
		models, err := client.ListModels(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if flagJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(models)
		}

		printModelsTable(out, models)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func printModelsTable(w io.Writer, models []providers.ModelInfo) {
	if len(models) == 0 {
		fmt.Fprintln(w, "No models available")
		return
	}

	fmt.Fprintln(w, "┌────────────────────────────────────┬──────────────────────────────┬──────────────┬───────────────┐")
	fmt.Fprintln(w, "│ Model ID                           │ Display Name                 │ Input Tokens │ Output Tokens │")
	fmt.Fprintln(w, "├────────────────────────────────────┼──────────────────────────────┼──────────────┼───────────────┤")
	for _, m := range models {
		fmt.Fprintf(w, "│ %-34s │ %-28s │ %-12d │ %-13d │\n",
			truncate(strings.TrimPrefix(m.Name, "models/"), 34),
			truncate(m.DisplayName, 28),
			m.InputTokenLimit,
			m.OutputTokenLimit)
	}
	fmt.Fprintln(w, "└────────────────────────────────────┴──────────────────────────────┴──────────────┴───────────────┘")
}

func truncate(s string, length int) string {
	if len(s) > length {
		return s[:length-3] + "..."
	}
	return s
}
