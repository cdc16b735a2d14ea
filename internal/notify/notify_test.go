package notify

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"candidatescout/lib/testutil"

	"github.com/stretchr/testify/require"
)

func TestMessageAttachesExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidatos.csv")
	contents := "nome,titulo,empresa,localizacao,experiencia\nAna Souza,Engenheira,Acme,São Paulo,8 anos\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0666))

	notifier := NewNotifier(Options{
		Smtp:       SmtpConfig{Server: "smtp.example.com", Port: 587, EmailAddress: "scout@example.com"},
		Recipients: []string{"recruiter@example.com"},
	}, testutil.NewTelemetry(t))
	require.True(t, notifier.Enabled())

	mail, err := notifier.Message(Summary{
		RunID:    "run-1",
		Keywords: []string{"golang", "backend"},
		Location: "Brasil",
		Status:   "partial",
		Count:    1,
		Reason:   "search page 1: unexpected status: 500",
	}, path)
	require.NoError(t, err)

	require.Equal(t, "Candidate Scout <scout@example.com>", mail.From)
	require.Equal(t, []string{"recruiter@example.com"}, mail.To)
	require.Equal(t, "1 candidatos: golang, backend", mail.Subject)
	require.Contains(t, string(mail.Text), "Keywords: golang AND backend")
	require.Contains(t, string(mail.Text), "Location: Brasil")
	require.Contains(t, string(mail.Text), "Stopped early: search page 1")

	require.Len(t, mail.Attachments, 1)
	require.Equal(t, "candidatos.csv", mail.Attachments[0].Filename)
	require.Equal(t, contents, string(mail.Attachments[0].Content))

	raw, err := mail.Bytes()
	require.NoError(t, err)
	require.Contains(t, string(raw), "candidatos.csv")
}

func TestMessageMissingExport(t *testing.T) {
	notifier := NewNotifier(Options{}, testutil.NewTelemetry(t))
	require.False(t, notifier.Enabled())

	_, err := notifier.Message(Summary{}, filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSendCancelled(t *testing.T) {
	tel := testutil.NewTelemetry(t)
	notifier := NewNotifier(Options{}, tel)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := notifier.Send(ctx, Summary{}, "unused.csv")
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, tel.Reports(testutil.ReportBroken, report_notify_send))
}
