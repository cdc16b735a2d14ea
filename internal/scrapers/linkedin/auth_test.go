package linkedin

import (
	"context"
	"net/http"
	"testing"
	"time"

	"candidatescout/lib/testutil"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

var testCreds = Credentials{Email: "recruiter@example.com", Password: "hunter2"}

func TestLoginSuccess(t *testing.T) {
	env := setupSite(t, newSite())

	err := env.session.Login(context.Background(), testCreds, 3)
	require.NoError(t, err)

	require.Len(t, env.site.loginPosts, 1)
	form := env.site.loginPosts[0]
	require.Equal(t, "recruiter@example.com", form.Get("session_key"))
	require.Equal(t, "hunter2", form.Get("session_password"))
	require.Equal(t, "csrf-token-123", form.Get("loginCsrfParam"))
	require.Equal(t, "true", form.Get("isJsEnabled"))
	require.Equal(t, "true", form.Get("defaultChallenge"))
	require.Len(t, form.Get("pageInstance"), 16)
	require.Empty(t, env.clock.Sleeps())
}

func TestLoginRepeated403ExhaustsAttempts(t *testing.T) {
	s := newSite()
	s.loginStatuses = []int{http.StatusForbidden}
	env := setupSite(t, s)

	const maxAttempts = 4
	err := env.session.Login(context.Background(), testCreds, maxAttempts)
	require.ErrorIs(t, err, ErrMaxAttempts)

	require.Len(t, env.site.loginPosts, maxAttempts)
	sleeps := env.clock.Sleeps()
	require.Len(t, sleeps, maxAttempts-1)
	for _, d := range sleeps {
		require.GreaterOrEqual(t, d, 30*time.Second)
		require.Less(t, d, 60*time.Second)
	}
	require.Len(t, env.tel.Reports(testutil.ReportWarning, scoped(report_login)), maxAttempts)
}

func TestLoginRecoversAfter403(t *testing.T) {
	s := newSite()
	s.loginStatuses = []int{http.StatusForbidden, http.StatusForbidden, http.StatusOK}
	env := setupSite(t, s)

	err := env.session.Login(context.Background(), testCreds, 5)
	require.NoError(t, err)
	require.Len(t, env.site.loginPosts, 3)
	require.Len(t, env.clock.Sleeps(), 2)
}

func TestLoginOtherStatusFailsImmediately(t *testing.T) {
	s := newSite()
	s.loginStatuses = []int{http.StatusInternalServerError}
	env := setupSite(t, s)

	err := env.session.Login(context.Background(), testCreds, 5)
	require.ErrorIs(t, err, ErrLoginStatus)
	require.Len(t, env.site.loginPosts, 1)
	require.Empty(t, env.clock.Sleeps())
}

func TestLoginPageStatusFailsImmediately(t *testing.T) {
	s := newSite()
	s.loginPageStatus = http.StatusServiceUnavailable
	env := setupSite(t, s)

	err := env.session.Login(context.Background(), testCreds, 5)
	require.ErrorIs(t, err, ErrLoginStatus)
	require.Empty(t, env.site.loginPosts)
}

func TestLoginMissingToken(t *testing.T) {
	s := newSite()
	s.loginPageBody = loginPageWithoutToken
	env := setupSite(t, s)

	err := env.session.Login(context.Background(), testCreds, 5)
	require.ErrorIs(t, err, ErrTokenNotFound)
	require.Empty(t, env.site.loginPosts)
}

func TestLoginInvalidCredentials(t *testing.T) {
	s := newSite()
	s.validCredentials = false
	env := setupSite(t, s)

	err := env.session.Login(context.Background(), testCreds, 5)
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Len(t, env.site.loginPosts, 1)
}

func TestLoginCancelledDuringBackoff(t *testing.T) {
	s := newSite()
	s.loginStatuses = []int{http.StatusForbidden}
	env := setupSite(t, s)

	ctx, cancel := context.WithCancel(context.Background())
	env.session.Http.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		if res.Request.Method == http.MethodPost {
			cancel()
		}
		return nil
	})

	err := env.session.Login(ctx, testCreds, 5)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, env.site.loginPosts, 1)
}
