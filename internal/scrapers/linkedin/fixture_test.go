package linkedin

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"

	"candidatescout/internal/candidate"
	"candidatescout/lib/testutil"
)

const testUserAgent = "Mozilla/5.0 (X11; Linux x86_64) candidatescout-test"

const loginPage = `<html><body>
<form action="/check/login" method="post">
	<input type="hidden" name="loginCsrfParam" value="csrf-token-123">
	<input name="session_key"><input name="session_password" type="password">
</form>
</body></html>`

const loginPageWithoutToken = `<html><body><form><input name="session_key"></form></body></html>`

func profilePage(c candidate.Candidate) string {
	body := "<html><body><main>"
	if c.Name != "" {
		body += fmt.Sprintf(`<h1 class="t-24 t-bold inline">  %s </h1>`, c.Name)
	}
	if c.Title != "" {
		body += fmt.Sprintf(`<div class="text-body-medium break-words">%s</div>`, c.Title)
	}
	if c.Company != "" {
		body += fmt.Sprintf(`<div class="text-body-small">%s</div>`, c.Company)
	}
	if c.Location != "" {
		body += fmt.Sprintf(`<span class="text-body-small inline">%s</span>`, c.Location)
	}
	if c.Experience != "" {
		body += fmt.Sprintf(`<span class="mr1 t-normal">%s</span>`, c.Experience)
	}
	return body + "</main></body></html>"
}

func resultsPage(links []string) string {
	body := `<html><body><ul class="search-results">`
	for _, l := range links {
		body += fmt.Sprintf(`<li><a class="search-result__result-link" href="%s">%s</a></li>`, l, l)
	}
	return body + "</ul></body></html>"
}

// site is a stand-in for the networking site, every field may be changed
// before the first request.
type site struct {
	mutex sync.Mutex

	loginPageStatus int
	loginPageBody   string
	// status returned by each login POST in order, the last one repeats.
	loginStatuses []int
	// whether a successful login lands on the feed.
	validCredentials bool

	// result links by page number, missing pages have no results.
	pages       map[int][]string
	pageStatus  map[int]int
	profiles    map[string]candidate.Candidate
	profileCode map[string]int

	loginPosts   []url.Values
	pagesFetched []int
	profileHits  []string
	userAgents   []string
	languages    []string
}

func newSite() *site {
	return &site{
		loginPageStatus:  http.StatusOK,
		loginPageBody:    loginPage,
		loginStatuses:    []int{http.StatusOK},
		validCredentials: true,
		pages:            map[int][]string{},
		pageStatus:       map[int]int{},
		profiles:         map[string]candidate.Candidate{},
		profileCode:      map[string]int{},
	}
}

func (s *site) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /login", func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		w.WriteHeader(s.loginPageStatus)
		fmt.Fprint(w, s.loginPageBody)
	})
	mux.HandleFunc("POST /check/login", func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		r.ParseForm()

		s.mutex.Lock()
		s.loginPosts = append(s.loginPosts, r.PostForm)
		idx := min(len(s.loginPosts), len(s.loginStatuses)) - 1
		status := s.loginStatuses[idx]
		s.mutex.Unlock()

		if status == http.StatusOK && s.validCredentials {
			http.SetCookie(w, &http.Cookie{Name: "li_at", Value: "session", Path: "/"})
		}
		w.WriteHeader(status)
	})
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		if _, err := r.Cookie("li_at"); err == nil {
			http.Redirect(w, r, "/feed/", http.StatusFound)
			return
		}
		http.Redirect(w, r, "/login?session_redirect=home", http.StatusFound)
	})
	mux.HandleFunc("GET /feed/", func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		fmt.Fprint(w, "<html><body>feed</body></html>")
	})
	mux.HandleFunc("GET /search/results/people/", func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))

		s.mutex.Lock()
		s.pagesFetched = append(s.pagesFetched, page)
		status, hasStatus := s.pageStatus[page]
		links := s.pages[page]
		s.mutex.Unlock()

		if hasStatus {
			w.WriteHeader(status)
			return
		}
		fmt.Fprint(w, resultsPage(links))
	})
	mux.HandleFunc("GET /in/{id}/", func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		id := r.PathValue("id")

		s.mutex.Lock()
		s.profileHits = append(s.profileHits, id)
		code, hasCode := s.profileCode[id]
		profile, ok := s.profiles[id]
		s.mutex.Unlock()

		if hasCode {
			w.WriteHeader(code)
			return
		}
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, profilePage(profile))
	})
	return mux
}

func (s *site) record(r *http.Request) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.userAgents = append(s.userAgents, r.Header.Get("User-Agent"))
	s.languages = append(s.languages, r.Header.Get("Accept-Language"))
}

func (s *site) addProfile(id string, c candidate.Candidate) string {
	s.profiles[id] = c
	return fmt.Sprintf("/in/%s/", id)
}

type testEnv struct {
	site    *site
	server  *httptest.Server
	session *Session
	clock   *testutil.Clock
	tel     *testutil.Telemetry
}

func setupSite(t *testing.T, s *site) testEnv {
	t.Helper()

	server := httptest.NewServer(s.handler())
	t.Cleanup(server.Close)

	clock := testutil.NewClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	tel := testutil.NewTelemetry(t)
	session, err := NewSession(Options{
		BaseUrl:   server.URL,
		UserAgent: testUserAgent,
	}, clock, tel)
	if err != nil {
		t.Fatal(err)
	}

	return testEnv{
		site:    s,
		server:  server,
		session: session,
		clock:   clock,
		tel:     tel,
	}
}

func scoped(id string) string {
	return "linkedin_scraper: " + id
}

type memoryPersister struct {
	candidates []candidate.Candidate
	err        error
}

func (p *memoryPersister) Upsert(_ context.Context, c candidate.Candidate) error {
	if p.err != nil {
		return p.err
	}
	p.candidates = append(p.candidates, c)
	return nil
}
