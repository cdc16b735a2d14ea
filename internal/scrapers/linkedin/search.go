package linkedin

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"candidatescout/internal/components/chrono"
	"candidatescout/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// pageDelay is how long to wait between two result pages.
var pageDelay = chrono.Jitter{Min: 2 * time.Second, Max: 5 * time.Second}

const resultLinkSelector = ".search-result__result-link[href]"

// SearchURL returns the url of a people search result page, pages start at 0.
func SearchURL(base *url.URL, filter SearchFilter, page int) string {
	var query strings.Builder
	query.WriteString("keywords=")
	query.WriteString(url.QueryEscape(strings.Join(filter.Keywords, " AND ")))
	if filter.MinExperience > 0 {
		query.WriteString("&experience=")
		query.WriteString(strconv.Itoa(filter.MinExperience))
	}
	if filter.Location != "" {
		query.WriteString("&location=")
		query.WriteString(url.QueryEscape(filter.Location))
	}
	query.WriteString("&page=")
	query.WriteString(strconv.Itoa(page))
	query.WriteString("&currentCompany=none")
	query.WriteString("&pastCompany=none")
	query.WriteString("&school=none")
	query.WriteString("&profileLanguage=pt")
	query.WriteString("&type=PEOPLE_AND_COMPANIES")

	return fmt.Sprintf(
		"%s/search/results/people/?%s",
		strings.TrimSuffix(base.String(), "/"),
		query.String(),
	)
}

// ProfileLinks returns the profile urls in a result page, in page order.
// Links to other hosts or outside of /in/ are dropped, query strings and
// fragments are stripped.
func ProfileLinks(base *url.URL, doc *goquery.Document) []string {
	var out []string
	for _, anchor := range htmlutil.GetAnchors(base, doc.Find(resultLinkSelector)) {
		link := anchor.Href
		if link.Host != base.Host || !strings.HasPrefix(link.Path, "/in/") {
			continue
		}
		link.RawQuery = ""
		link.Fragment = ""
		out = append(out, link.String())
	}
	return out
}

func (s *Session) searchPage(ctx context.Context, filter SearchFilter, page int) ([]string, error) {
	pageUrl := SearchURL(s.BaseUrl, filter, page)
	s.tel.ReportDebug("fetching search page", page, pageUrl)

	res, err := s.Http.R().
		SetContext(ctx).
		Get(pageUrl)
	if err != nil {
		return nil, fmt.Errorf("search page %d: %w", page, err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("search page %d: unexpected status: %s", page, res.Status())
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("search page %d: parse: %w", page, err)
	}
	return ProfileLinks(s.BaseUrl, doc), nil
}

// Search pages through people search results, extracting and persisting
// every new profile until filter.TargetCount candidates are collected or
// a page has no new profiles. Extraction uses DefaultExtractors when
// extractors is nil.
func (s *Session) Search(ctx context.Context, filter SearchFilter, store Persister, extractors []FieldExtractor) SearchResult {
	if extractors == nil {
		extractors = DefaultExtractors()
	}

	result := SearchResult{Status: SearchComplete}
	if filter.TargetCount <= 0 {
		return result
	}

	partial := func(err error) SearchResult {
		result.Status = SearchPartial
		result.Reason = err
		return result
	}

	seen := make(map[string]struct{})
	for page := 0; ; page++ {
		if page > 0 {
			err := chrono.SleepJitter(ctx, s.time, pageDelay)
			if err != nil {
				return partial(err)
			}
		}

		links, err := s.searchPage(ctx, filter, page)
		if err != nil {
			s.tel.ReportBroken(report_search_page, err)
			return partial(err)
		}
		result.Pages++

		var fresh []string
		for _, link := range links {
			if _, ok := seen[link]; ok {
				continue
			}
			seen[link] = struct{}{}
			fresh = append(fresh, link)
		}
		s.tel.ReportDebug("search page links", page, len(links), len(fresh))
		if len(fresh) == 0 {
			return result
		}

		for _, link := range fresh {
			if err := ctx.Err(); err != nil {
				return partial(err)
			}

			c, ok := s.Profile(ctx, link, extractors)
			if !ok {
				continue
			}
			err = store.Upsert(ctx, c)
			if err != nil {
				s.tel.ReportBroken(report_search_persist, err, link)
				result.Status = SearchFailed
				result.Reason = err
				return result
			}

			result.Candidates = append(result.Candidates, c)
			s.tel.ReportCount(report_search_count, int64(len(result.Candidates)))
			if len(result.Candidates) >= filter.TargetCount {
				return result
			}
		}
	}
}
