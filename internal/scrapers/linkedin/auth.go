package linkedin

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"candidatescout/internal/components/chrono"

	"github.com/PuerkitoBio/goquery"
	"github.com/mazen160/go-random"
)

const DefaultMaxLoginAttempts = 5

// loginBackoff is how long to wait after the login form is rejected with 403.
var loginBackoff = chrono.Jitter{Min: 30 * time.Second, Max: 60 * time.Second}

// feedMarker is part of the url a logged in session lands on.
const feedMarker = "feed"

// Login establishes an authenticated session, retrying up to maxAttempts
// times while the login form is rejected with 403.
func (s *Session) Login(ctx context.Context, creds Credentials, maxAttempts int) error {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxLoginAttempts
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		s.RotateProxy()

		token, err := s.loginToken(ctx)
		if err != nil {
			s.tel.ReportBroken(report_login, err, attempt)
			return err
		}

		pageInstance, err := random.String(16)
		if err != nil {
			return fmt.Errorf("login: page instance: %w", err)
		}

		res, err := s.Http.R().
			SetContext(ctx).
			SetFormData(map[string]string{
				"session_key":      creds.Email,
				"session_password": creds.Password,
				"loginCsrfParam":   token,
				"isJsEnabled":      "true",
				"defaultChallenge": "true",
				"pageInstance":     pageInstance,
			}).
			Post("/check/login")
		if err != nil {
			s.tel.ReportBroken(report_login, fmt.Errorf("submit form: %w", err), attempt)
			return fmt.Errorf("login: submit form: %w", err)
		}

		switch res.StatusCode() {
		case http.StatusOK:
			return s.verifyLogin(ctx)
		case http.StatusForbidden:
			s.tel.ReportWarning(report_login, "login form rejected with 403", attempt, maxAttempts)
			if attempt == maxAttempts {
				continue
			}
			err = chrono.SleepJitter(ctx, s.time, loginBackoff)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}
		default:
			err = fmt.Errorf("%w: %s", ErrLoginStatus, res.Status())
			s.tel.ReportBroken(report_login, err, attempt)
			return err
		}
	}

	s.tel.ReportBroken(report_login, ErrMaxAttempts, maxAttempts)
	return ErrMaxAttempts
}

func (s *Session) loginToken(ctx context.Context) (string, error) {
	res, err := s.Http.R().
		SetContext(ctx).
		Get("/login")
	if err != nil {
		return "", fmt.Errorf("login: fetch login page: %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%w: login page: %s", ErrLoginStatus, res.Status())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return "", fmt.Errorf("login: parse login page: %w", err)
	}
	token := doc.Find("input[name=loginCsrfParam]").AttrOr("value", "")
	if token == "" {
		return "", ErrTokenNotFound
	}
	return token, nil
}

func (s *Session) verifyLogin(ctx context.Context) error {
	res, err := s.Http.R().
		SetContext(ctx).
		Get("/")
	if err != nil {
		s.tel.ReportBroken(report_login, fmt.Errorf("fetch home: %w", err))
		return fmt.Errorf("login: fetch home: %w", err)
	}

	finalUrl := res.Request.URL
	if res.RawResponse != nil && res.RawResponse.Request != nil {
		finalUrl = res.RawResponse.Request.URL.String()
	}
	if !strings.Contains(finalUrl, feedMarker) {
		s.tel.ReportBroken(report_login, ErrInvalidCredentials, finalUrl)
		return ErrInvalidCredentials
	}

	s.tel.ReportDebug("logged in", finalUrl)
	return nil
}
