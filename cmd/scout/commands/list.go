package commands

import (
	"candidatescout/cmd/scout/globals"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Prints every stored candidate.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		g := globals.Get(ctx)

		store, database := openStore(g)
		defer database.Close()

		records, err := store.All(ctx)
		if err != nil {
			fatal(g, "failed to read candidates", err)
		}

		t := recordsTable(records)
		t.AppendFooter(table.Row{"", "total", len(records)})
		t.Render()
	},
}
