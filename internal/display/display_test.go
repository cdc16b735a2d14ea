package display

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"candidatescout/internal/candidate"
	"candidatescout/internal/flatfile"
	"candidatescout/lib/testutil"

	"github.com/stretchr/testify/require"
)

func get(t *testing.T, handler http.Handler, path string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return rec.Code, string(body)
}

func TestServeRendersEveryRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidatos.csv")
	require.NoError(t, flatfile.Write(path, []candidate.Candidate{
		{Name: "Ana Souza", Title: "Engenheira", Company: "Acme", Location: "São Paulo", Experience: "8 anos"},
		{Name: "<script>alert(1)</script>", Company: "Nuvem & Cia"},
	}))

	handler := NewHandler(path, testutil.NewTelemetry(t))
	code, body := get(t, handler, "/")
	require.Equal(t, http.StatusOK, code)

	require.Contains(t, body, `<table class="candidates">`)
	for _, column := range candidate.Header() {
		require.Contains(t, body, column)
	}
	require.Contains(t, body, "Ana Souza")
	require.Contains(t, body, "São Paulo")
	require.Contains(t, body, "2 candidatos")
	require.Contains(t, body, "&lt;script&gt;")
	require.NotContains(t, body, "<script>alert")
}

func TestServeEmptyExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidatos.csv")
	require.NoError(t, flatfile.Write(path, nil))

	code, body := get(t, NewHandler(path, testutil.NewTelemetry(t)), "/")
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, body, "0 candidatos")
}

func TestServeOtherPathsNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidatos.csv")
	require.NoError(t, flatfile.Write(path, nil))
	handler := NewHandler(path, testutil.NewTelemetry(t))

	for _, p := range []string{"/index.html", "/candidatos.csv", "/api"} {
		code, _ := get(t, handler, p)
		require.Equal(t, http.StatusNotFound, code, p)
	}
}

func TestServeMissingExport(t *testing.T) {
	tel := testutil.NewTelemetry(t)
	handler := NewHandler(filepath.Join(t.TempDir(), "missing.csv"), tel)

	code, _ := get(t, handler, "/")
	require.Equal(t, http.StatusInternalServerError, code)
	require.Len(t, tel.Reports(testutil.ReportBroken, "display: "+report_serve), 1)
}
