package migrations

import (
	"context"
	"path/filepath"
	"testing"

	"candidatescout/internal/db"

	"github.com/stretchr/testify/require"
)

func TestOpenAndMigrateIsRepeatable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "linkedin.db")

	database, err := OpenAndMigrateDB(db.Schema, path)
	require.NoError(t, err)
	_, err = db.New(database).CreateCandidate(context.Background(), db.CreateCandidateParams{Nome: "Ana"})
	require.NoError(t, err)
	require.NoError(t, database.Close())

	database, err = OpenAndMigrateDB(db.Schema, path)
	require.NoError(t, err)
	defer database.Close()

	count, err := db.New(database).CountCandidates(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestOpenRemoteRejectsUnknownScheme(t *testing.T) {
	_, err := OpenRemoteDB("ftp://example.com/db", "")
	require.Error(t, err)
}

func TestDatabaseRequiresLocation(t *testing.T) {
	_, err := Database{}.Open()
	require.Error(t, err)
}
