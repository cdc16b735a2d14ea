package linkedin

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync/atomic"
	"time"

	"candidatescout/internal/components/assert"
	"candidatescout/internal/components/chrono"
	"candidatescout/internal/components/telemetry"

	browser "github.com/EDDYCJY/fake-useragent"
	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const DefaultBaseUrl = "https://www.linkedin.com"

type Options struct {
	BaseUrl string
	// if unspecified, a random browser user agent is used.
	UserAgent string
	Proxies   []string
	// wraps the transport with cloudflare-bp-go.
	CloudflareBypass bool
	// an upper bound on request rate, 0 disables it.
	RequestsPerSecond float64
	// if unspecified, 30 seconds.
	Timeout time.Duration
	// receives a dump of every request when set.
	Output telemetry.InstrumentOutput
}

// Session is a cookie-carrying http client for a single crawl.
type Session struct {
	BaseUrl *url.URL
	Http    *resty.Client

	proxies      []*url.URL
	currentProxy atomic.Pointer[url.URL]

	time chrono.TimeAPI
	tel  telemetry.API
}

func browserHeaders(userAgent string) map[string]string {
	return map[string]string{
		"User-Agent":                userAgent,
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
		"Accept-Language":           "pt-BR,pt;q=0.9,en-US;q=0.8,en;q=0.7",
		"Accept-Encoding":           "gzip",
		"Connection":                "keep-alive",
		"Cache-Control":             "max-age=0",
		"Upgrade-Insecure-Requests": "1",
		"Sec-Fetch-Dest":            "document",
		"Sec-Fetch-Mode":            "navigate",
		"Sec-Fetch-Site":            "none",
		"Sec-Fetch-User":            "?1",
	}
}

func NewSession(opts Options, clock chrono.TimeAPI, tel telemetry.API) (*Session, error) {
	assert.NotNil(clock)
	assert.NotNil(tel)

	tel = telemetry.NewScopedAPI("linkedin_scraper", tel)

	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	var proxies []*url.URL
	for _, p := range opts.Proxies {
		proxyUrl, err := url.Parse(p)
		if err != nil {
			return nil, fmt.Errorf("parse proxy '%s': %w", p, err)
		}
		proxies = append(proxies, proxyUrl)
	}

	s := &Session{
		BaseUrl: baseUrl,
		proxies: proxies,
		time:    clock,
		tel:     tel,
	}

	httpClient := resty.New()
	httpClient.SetBaseURL(opts.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	httpClient.SetCookieJar(jar)

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = s.proxy
	var roundTripper http.RoundTripper = transport
	if opts.CloudflareBypass {
		roundTripper = cloudflarebp.AddCloudFlareByPass(roundTripper)
	}
	httpClient.SetTransport(roundTripper)

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = browser.Random()
	}
	httpClient.SetHeaders(browserHeaders(userAgent))
	httpClient.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 30
	}
	httpClient.SetTimeout(timeout)

	if opts.RequestsPerSecond > 0 {
		// max burst of 1 means requests never go out faster than the limit
		rateLimiter := rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
		httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return rateLimiter.Wait(req.Context())
		})
	}

	telemetry.InstrumentResty(httpClient, tel, opts.Output)

	s.Http = httpClient
	return s, nil
}

func (s *Session) proxy(*http.Request) (*url.URL, error) {
	return s.currentProxy.Load(), nil
}

// RotateProxy routes every following request through a random configured
// proxy. It does nothing when no proxies are configured.
func (s *Session) RotateProxy() {
	if len(s.proxies) == 0 {
		return
	}
	next := s.proxies[rand.IntN(len(s.proxies))]
	s.currentProxy.Store(next)
	s.tel.ReportDebug("rotated proxy", next.Host)
}

// CurrentProxy returns the proxy requests go through, nil when direct.
func (s *Session) CurrentProxy() *url.URL {
	return s.currentProxy.Load()
}
