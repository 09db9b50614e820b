// Package mailer delivers composed notification emails over SMTP
package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/mail.v2"

	"github.com/communityportal/notifier/pkg/domain"
)

// Params defines SMTP connection and envelope settings
type Params struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string // visible recipient for BCC-only messages, From if empty
	TLS      bool   // implicit TLS, STARTTLS is used otherwise when offered
	Timeout  time.Duration
}

// dialer is the subset of mail.Dialer used to deliver messages
type dialer interface {
	DialAndSend(m ...*mail.Message) error
}

// SMTP sends emails through a single SMTP relay
type SMTP struct {
	Params
	dialer dialer
}

// New makes an SMTP mailer
func New(p Params) *SMTP {
	if p.To == "" {
		p.To = p.From
	}
	d := mail.NewDialer(p.Host, p.Port, p.Username, p.Password)
	d.SSL = p.TLS
	if p.Timeout > 0 {
		d.Timeout = p.Timeout
	}
	return &SMTP{Params: p, dialer: d}
}

// Send delivers the email. Bcc recipients are hidden from each other, the To header
// falls back to the configured visible recipient when the email has none.
func (s *SMTP) Send(ctx context.Context, email domain.Email) error {
	if email.Recipients() == 0 {
		return errors.New("no recipients")
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("send %q: %w", email.Subject, err)
	}

	msg := s.message(email)
	st := time.Now()
	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send %q via %s:%d: %w", email.Subject, s.Host, s.Port, err)
	}
	lgr.Printf("[DEBUG] sent %q to %d recipients in %v", email.Subject, email.Recipients(), time.Since(st))
	return nil
}

func (s *SMTP) message(email domain.Email) *mail.Message {
	msg := mail.NewMessage()
	msg.SetHeader("From", s.From)

	to := email.To
	if len(to) == 0 {
		to = []string{s.To}
	}
	msg.SetHeader("To", to...)
	if len(email.Bcc) > 0 {
		msg.SetHeader("Bcc", email.Bcc...)
	}
	msg.SetHeader("Subject", email.Subject)
	msg.SetDateHeader("Date", time.Now())
	msg.SetBody("text/html", email.HTML)
	return msg
}

// String returns the connection target without credentials
func (s *SMTP) String() string {
	return fmt.Sprintf("smtp://%s:%d (from %s, tls %v)", s.Host, s.Port, strings.TrimSpace(s.From), s.TLS)
}
