package linkedin

import (
	"context"
	"path/filepath"
	"testing"

	"candidatescout/internal/candidate"
	"candidatescout/internal/candidatestore"
	"candidatescout/internal/db"
	"candidatescout/internal/flatfile"
	"candidatescout/lib/testutil"

	"github.com/stretchr/testify/require"
)

func TestLoginSearchPersistExport(t *testing.T) {
	ctx := context.Background()

	s := newSite()
	ana := candidate.Candidate{
		Name:       "Ana Souza",
		Title:      "Engenheira de Software Sênior",
		Company:    "Acme Pagamentos",
		Location:   "São Paulo, Brasil",
		Experience: "8 anos",
	}
	bruno := candidate.Candidate{
		Name:       "Bruno Lima",
		Title:      "Desenvolvedor Go",
		Company:    "Nuvem & Cia",
		Location:   "Recife, Pernambuco",
		Experience: "3 anos",
	}
	s.pages[0] = []string{
		s.addProfile("ana-souza", ana),
		s.addProfile("bruno-lima", bruno),
	}
	env := setupSite(t, s)

	database := testutil.SetupDB(t, testutil.DBParams{Schema: db.Schema})
	store := candidatestore.NewStore(database, env.clock, env.tel)

	require.NoError(t, env.session.Login(ctx, testCreds, DefaultMaxLoginAttempts))
	result := env.session.Search(ctx, SearchFilter{
		Keywords:      []string{"golang"},
		MinExperience: 2,
		Location:      "Brasil",
		TargetCount:   2,
	}, store, nil)
	require.Equal(t, SearchComplete, result.Status)
	require.Equal(t, []candidate.Candidate{ana, bruno}, result.Candidates)

	records, err := store.All(ctx)
	require.NoError(t, err)
	require.Equal(t, []candidate.Candidate{ana, bruno}, candidatestore.Candidates(records))

	out := filepath.Join(t.TempDir(), "candidatos.csv")
	require.NoError(t, flatfile.Write(out, candidatestore.Candidates(records)))

	table, err := flatfile.Read(out)
	require.NoError(t, err)
	require.Equal(t, candidate.Header(), table.Header)
	require.Equal(t, [][]string{ana.Row(), bruno.Row()}, table.Rows)
}
