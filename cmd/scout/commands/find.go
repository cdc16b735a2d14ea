package commands

import (
	"fmt"

	"candidatescout/cmd/scout/globals"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	findThreshold *float64
	findExact     *bool
)

func init() {
	findThreshold = findCmd.Flags().Float64("threshold", 0.85, "The minimum similarity (0 to 1) of a match.")
	findExact = findCmd.Flags().Bool("exact", false, "Only show candidates with exactly this name.")
	rootCmd.AddCommand(findCmd)
}

var findCmd = &cobra.Command{
	Use:   "find <name> [--threshold <0..1>] [--exact]",
	Short: "Looks up stored candidates by name.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		g := globals.Get(ctx)
		name := args[0]

		store, database := openStore(g)
		defer database.Close()

		if *findExact {
			records, err := store.FindByName(ctx, name)
			if err != nil {
				fatal(g, "failed to find candidates", err)
			}
			recordsTable(records).Render()
			return
		}

		matches, err := store.Similar(ctx, name, *findThreshold)
		if err != nil {
			fatal(g, "failed to find candidates", err)
		}

		t := NewTable()
		t.AppendHeader(table.Row{"score", "id", "nome", "titulo", "empresa", "localizacao"})
		for _, m := range matches {
			t.AppendRow(table.Row{
				fmt.Sprintf("%.2f", m.Score),
				m.ID,
				m.Name,
				m.Title,
				m.Company,
				m.Location,
			})
		}
		t.Render()
	},
}
