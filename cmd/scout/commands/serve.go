package commands

import (
	"candidatescout/cmd/scout/globals"
	"candidatescout/internal/display"
	"candidatescout/lib/serviceutil"

	"github.com/spf13/cobra"
)

var (
	servePort *int
	serveCsv  *string
)

func init() {
	servePort = serveCmd.Flags().IntP("port", "p", 0, "The port to listen on. Defaults to the config.")
	serveCsv = serveCmd.Flags().String("csv", "", "The CSV file to display. Defaults to the config export path.")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve [--port <port>] [--csv <path/to/export.csv>]",
	Short: "Serves the exported candidates as an html table.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		g := globals.Get(ctx)

		port := g.Config.Port
		if *servePort != 0 {
			port = *servePort
		}
		csvPath := g.Config.ExportPath
		if *serveCsv != "" {
			csvPath = *serveCsv
		}
		csvPath = resolvePath(g, csvPath)

		g.Logger.Info("serving candidates", "csv", csvPath)
		err := serviceutil.StartHttpServer(ctx, g.Logger, port, display.NewHandler(csvPath, g.Tel))
		if err != nil {
			fatal(g, "http server stopped", err)
		}
	},
}
