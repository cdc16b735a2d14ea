// Package display serves the exported CSV as a single html page.
package display

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"candidatescout/internal/components/assert"
	"candidatescout/internal/components/telemetry"
	"candidatescout/internal/flatfile"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const report_serve = "display.serve"

//go:embed index.html
var indexHtml string

var indexTemplate = template.Must(template.New("index").Parse(indexHtml))

type indexData struct {
	Title string
	Count int
	Table template.HTML
}

// RenderTable renders a CSV table as an html <table>, cell text is escaped.
func RenderTable(t flatfile.Table) string {
	writer := table.NewWriter()

	header := make(table.Row, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	writer.AppendHeader(header)

	for _, r := range t.Rows {
		row := make(table.Row, len(r))
		for i, cell := range r {
			row[i] = cell
		}
		writer.AppendRow(row)
	}

	writer.Style().Format.Header = text.FormatDefault
	writer.Style().HTML = table.HTMLOptions{
		CSSClass:    "candidates",
		EmptyColumn: "",
		EscapeText:  true,
		Newline:     "<br/>",
	}
	return writer.RenderHTML()
}

// Handler renders the CSV at csvPath on every request to "/".
type Handler struct {
	csvPath string
	title   string
	tel     telemetry.API
}

func NewHandler(csvPath string, tel telemetry.API) Handler {
	assert.NotEmptyStr(csvPath)
	assert.NotNil(tel)
	return Handler{
		csvPath: csvPath,
		title:   "Candidatos",
		tel:     telemetry.NewScopedAPI("display", tel),
	}
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.tel.ReportDebug("request", r.Method, r.URL.Path)

	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	t, err := flatfile.Read(h.csvPath)
	if err != nil {
		h.tel.ReportBroken(report_serve, err)
		http.Error(w, "could not read candidates", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	err = indexTemplate.Execute(&buf, indexData{
		Title: h.title,
		Count: len(t.Rows),
		Table: template.HTML(RenderTable(t)),
	})
	if err != nil {
		h.tel.ReportBroken(report_serve, err)
		http.Error(w, "could not render candidates", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
