package commands

import (
	"database/sql"
	"os"

	"candidatescout/cmd/scout/globals"
	devenv "candidatescout/dev/env"
	"candidatescout/internal/candidatestore"
	"candidatescout/internal/db"
	"candidatescout/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
)

func NewTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

// fatal cleans up before exiting so the log file and telemetry get flushed.
func fatal(g *globals.Value, message string, err error) {
	runCleanup()
	serviceutil.Fatal(g.Logger, message, err)
}

func openStore(g *globals.Value) (candidatestore.Store, *sql.DB) {
	database, err := g.Config.Database.OpenAndMigrate(db.Schema)
	if err != nil {
		fatal(g, "failed to open db", err)
	}
	return candidatestore.NewStore(database, g.Time, g.Tel), database
}

func resolvePath(g *globals.Value, path string) string {
	resolved, err := devenv.ResolvePath(path)
	if err != nil {
		fatal(g, "failed to resolve path", err)
	}
	return resolved
}

func recordsTable(records []candidatestore.Record) table.Writer {
	t := NewTable()
	t.AppendHeader(table.Row{"id", "nome", "titulo", "empresa", "localizacao", "experiencia", "data_atualizacao"})
	for _, r := range records {
		t.AppendRow(table.Row{r.ID, r.Name, r.Title, r.Company, r.Location, r.Experience, r.UpdatedAt})
	}
	return t
}
