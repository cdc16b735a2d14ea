// Package notify mails the result of a search with the export attached.
package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"candidatescout/internal/components/assert"
	"candidatescout/internal/components/telemetry"

	"github.com/jordan-wright/email"
)

const report_notify_send = "notify.send"

type SmtpConfig struct {
	Server       string `json:"server"`
	Port         int    `json:"port"`
	EmailAddress string `json:"email_address"`
	Password     string `json:"password"`
}

type Options struct {
	Smtp       SmtpConfig
	Recipients []string
}

// Summary describes a finished search.
type Summary struct {
	RunID    string
	Keywords []string
	Location string
	Status   string
	Count    int
	// Reason is empty unless the search stopped early.
	Reason string
}

type Notifier struct {
	options Options
	tel     telemetry.API
}

func NewNotifier(options Options, tel telemetry.API) Notifier {
	assert.NotNil(tel)
	return Notifier{options: options, tel: tel}
}

// Enabled reports whether there is anywhere to send to.
func (n Notifier) Enabled() bool {
	return n.options.Smtp.Server != "" && len(n.options.Recipients) > 0
}

// Message builds the email for a search, csvPath is attached as is.
func (n Notifier) Message(summary Summary, csvPath string) (*email.Email, error) {
	mail := email.NewEmail()
	mail.From = fmt.Sprintf("Candidate Scout <%s>", n.options.Smtp.EmailAddress)
	mail.To = n.options.Recipients
	mail.Subject = fmt.Sprintf("%d candidatos: %s", summary.Count, strings.Join(summary.Keywords, ", "))

	var body strings.Builder
	fmt.Fprintf(&body, "Search %s finished with status %s.\n\n", summary.RunID, summary.Status)
	fmt.Fprintf(&body, "Keywords: %s\n", strings.Join(summary.Keywords, " AND "))
	if summary.Location != "" {
		fmt.Fprintf(&body, "Location: %s\n", summary.Location)
	}
	fmt.Fprintf(&body, "Candidates: %d\n", summary.Count)
	if summary.Reason != "" {
		fmt.Fprintf(&body, "Stopped early: %s\n", summary.Reason)
	}
	mail.Text = []byte(body.String())

	_, err := mail.AttachFile(csvPath)
	if err != nil {
		return nil, fmt.Errorf("attach export: %w", err)
	}
	return mail, nil
}

func (n Notifier) Send(ctx context.Context, summary Summary, csvPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mail, err := n.Message(summary, csvPath)
	if err != nil {
		n.tel.ReportBroken(report_notify_send, err)
		return err
	}

	addr := fmt.Sprintf("%s:%d", n.options.Smtp.Server, n.options.Smtp.Port)
	err = mail.Send(
		addr,
		smtp.PlainAuth("", n.options.Smtp.EmailAddress, n.options.Smtp.Password, n.options.Smtp.Server),
	)
	if err != nil && strings.Contains(err.Error(), "server doesn't support AUTH") {
		err = mail.Send(addr, nil)
	}
	if err != nil {
		n.tel.ReportBroken(report_notify_send, err, addr)
		return err
	}

	n.tel.ReportDebug("notify: sent", summary.RunID, n.options.Recipients)
	return nil
}
