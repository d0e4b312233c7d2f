// Package mailer delivers the composed report as an HTML email over SMTP-SSL.
// The core hands it a finished Report and only learns success or failure.
package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"market-pulse/internal/cadence"
	"market-pulse/internal/reporting"
)

// Options configures the SMTP publisher.
type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Mailer publishes reports via SMTP with implicit TLS (port 465 style).
type Mailer struct {
	opts Options
}

// New creates a Mailer.
func New(opts Options) *Mailer {
	return &Mailer{opts: opts}
}

// Publish renders the report to HTML and sends it as one message.
func (m *Mailer) Publish(ctx context.Context, r *reporting.Report) error {
	msg := mail.NewMsg()
	if err := msg.From(m.opts.From); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(m.opts.To); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(subjectFor(r.Date))
	msg.SetBodyString(mail.TypeTextHTML, reporting.RenderHTML(r))

	client, err := mail.NewClient(m.opts.Host,
		mail.WithPort(m.opts.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.opts.Username),
		mail.WithPassword(m.opts.Password),
	)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send report email: %w", err)
	}
	return nil
}

// subjectFor formats the subject line with a human-readable date, e.g.
// "Daily Stock & Jobs Report - January 2, 2006".
func subjectFor(date string) string {
	if t, err := time.Parse(cadence.DateLayout, date); err == nil {
		date = t.Format("January 2, 2006")
	}
	return "Daily Stock & Jobs Report - " + date
}
