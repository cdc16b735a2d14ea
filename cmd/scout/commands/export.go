package commands

import (
	"candidatescout/cmd/scout/globals"
	"candidatescout/internal/candidatestore"
	"candidatescout/internal/flatfile"

	"github.com/spf13/cobra"
)

var exportOut *string

func init() {
	exportOut = exportCmd.Flags().StringP("out", "o", "", "The CSV file to export to. Defaults to the config.")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [--out <path/to/output.csv>]",
	Short: "Exports every stored candidate to CSV.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		g := globals.Get(ctx)

		store, database := openStore(g)
		defer database.Close()

		records, err := store.All(ctx)
		if err != nil {
			fatal(g, "failed to read candidates", err)
		}

		out := g.Config.ExportPath
		if *exportOut != "" {
			out = *exportOut
		}
		out = resolvePath(g, out)
		err = flatfile.Write(out, candidatestore.Candidates(records))
		if err != nil {
			fatal(g, "failed to export candidates", err)
		}
		g.Logger.Info("exported candidates", "count", len(records), "out", out)
	},
}
