package flatfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"candidatescout/internal/candidate"

	"github.com/stretchr/testify/require"
)

func TestWriteTo(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTo(&buf, []candidate.Candidate{
		{Name: "Ana Souza", Title: "Engineer, Backend", Company: "Acme", Location: "São Paulo", Experience: "5 anos"},
		{Name: "Bruno"},
	})
	require.NoError(t, err)
	require.Equal(t,
		"nome,titulo,empresa,localizacao,experiencia\n"+
			"Ana Souza,\"Engineer, Backend\",Acme,São Paulo,5 anos\n"+
			"Bruno,,,,\n",
		buf.String(),
	)
}

func TestWriteEmptyHasHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "candidatos.csv")
	require.NoError(t, Write(path, nil))

	table, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, candidate.Header(), table.Header)
	require.Empty(t, table.Rows)
}

func TestReadDoesNotValidate(t *testing.T) {
	table, err := ReadFrom(strings.NewReader("a,b\n1\n1,2,3\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, table.Header)
	require.Equal(t, [][]string{{"1"}, {"1", "2", "3"}}, table.Rows)
}

func TestReadMissing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
