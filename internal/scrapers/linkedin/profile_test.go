package linkedin

import (
	"context"
	"strings"
	"testing"

	"candidatescout/internal/candidate"
	"candidatescout/lib/testutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestExtractProfileMissingField(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(profilePage(candidate.Candidate{
		Name:       "Ana Souza",
		Title:      "Engenheira de Software",
		Company:    "Acme",
		Experience: "6 anos",
	})))
	require.NoError(t, err)

	c := ExtractProfile(doc, DefaultExtractors())
	require.Equal(t, candidate.Candidate{
		Name:       "Ana Souza",
		Title:      "Engenheira de Software",
		Company:    "Acme",
		Location:   "",
		Experience: "6 anos",
	}, c)
}

func TestExtractProfileFirstMatchWins(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body>
		<h1 class="t-24 t-bold">
			Ana
			Souza
		</h1>
		<h1 class="t-24 t-bold">Someone Else</h1>
	</body></html>`))
	require.NoError(t, err)

	require.Equal(t, "Ana Souza", NameExtractor{Selector: "h1.t-24.t-bold"}.Extract(doc))
	require.Equal(t, "", TitleExtractor{Selector: "div.text-body-medium.break-words"}.Extract(doc))
}

func TestExtractorsCoverEveryField(t *testing.T) {
	var fields []candidate.Field
	for _, e := range DefaultExtractors() {
		fields = append(fields, e.Field())
	}
	require.Equal(t, candidate.Fields, fields)
}

type upperNameExtractor struct {
	NameExtractor
}

func (e upperNameExtractor) Extract(doc *goquery.Document) string {
	return strings.ToUpper(e.NameExtractor.Extract(doc))
}

func TestProfileReportsMissingFields(t *testing.T) {
	s := newSite()
	link := s.addProfile("ana", candidate.Candidate{Name: "Ana Souza", Title: "Engineer"})
	env := setupSite(t, s)

	extractors := DefaultExtractors()
	extractors[0] = upperNameExtractor{NameExtractor{Selector: "h1.t-24.t-bold"}}

	c, ok := env.session.Profile(context.Background(), env.server.URL+link, extractors)
	require.True(t, ok)
	require.Equal(t, candidate.Candidate{Name: "ANA SOUZA", Title: "Engineer"}, c)
	require.Len(t, env.tel.Reports(testutil.ReportWarning, scoped(report_profile_field)), 3)
}

func TestProfileNotFound(t *testing.T) {
	env := setupSite(t, newSite())

	_, ok := env.session.Profile(context.Background(), env.server.URL+"/in/nobody/", DefaultExtractors())
	require.False(t, ok)
	require.Len(t, env.tel.Reports(testutil.ReportBroken, scoped(report_profile)), 1)
}
