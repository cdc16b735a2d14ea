package linkedin

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"candidatescout/internal/candidate"

	"github.com/PuerkitoBio/goquery"
)

// ExtractProfile runs every extractor over a parsed profile page.
func ExtractProfile(doc *goquery.Document, extractors []FieldExtractor) candidate.Candidate {
	var c candidate.Candidate
	for _, e := range extractors {
		c.Set(e.Field(), e.Extract(doc))
	}
	return c
}

// Profile fetches a profile page and extracts a candidate from it. ok is
// false when the page could not be fetched or parsed, the failure is
// reported and the profile should be skipped.
func (s *Session) Profile(ctx context.Context, profileUrl string, extractors []FieldExtractor) (c candidate.Candidate, ok bool) {
	res, err := s.Http.R().
		SetContext(ctx).
		Get(profileUrl)
	if err != nil {
		s.tel.ReportBroken(report_profile, err, profileUrl)
		return candidate.Candidate{}, false
	}
	if res.StatusCode() != http.StatusOK {
		s.tel.ReportBroken(report_profile, fmt.Errorf("unexpected status: %s", res.Status()), profileUrl)
		return candidate.Candidate{}, false
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		s.tel.ReportBroken(report_profile, fmt.Errorf("parse: %w", err), profileUrl)
		return candidate.Candidate{}, false
	}

	c = ExtractProfile(doc, extractors)
	for _, e := range extractors {
		if c.Get(e.Field()) == "" {
			s.tel.ReportWarning(report_profile_field, fmt.Sprintf("missing %s", e.Field()), profileUrl)
		}
	}
	return c, true
}
