package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"bytes"
	"context"
	"dormy/config"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Mail struct {
	To      []string
	Subject string
	Body    string
}

// Sender delivers plain-text mail. Configured reports whether mail
// actually leaves the process.
type Sender interface {
	Send(ctx context.Context, mail Mail) error
	Configured() bool
}

// New returns an SMTP sender, or a logging sender when no SMTP host is set.
func New(cfg *config.Config) Sender {
	if cfg.Mail.SMTPHost == "" {
		log.Warn().Msg("SMTP host not configured, mail will be logged instead of sent")

		return &loggingSender{from: cfg.Mail.FromAddress}
	}

	return &smtpSender{
		addr: net.JoinHostPort(cfg.Mail.SMTPHost, strconv.Itoa(cfg.Mail.SMTPPort)),
		from: cfg.Mail.FromAddress,
		auth: smtp.PlainAuth("", cfg.Mail.SMTPUsername, cfg.Mail.SMTPPassword, cfg.Mail.SMTPHost),
		send: smtp.SendMail,
	}
}

type smtpSender struct {
	addr string
	from string
	auth smtp.Auth
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func (s *smtpSender) Configured() bool {
	return true
}

// Send has no cancellation of its own in net/smtp; ctx is only checked up front.
func (s *smtpSender) Send(ctx context.Context, mail Mail) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("mail not sent: %w", err)
	}

	if err := s.send(s.addr, s.auth, s.from, mail.To, Compose(s.from, mail, time.Now())); err != nil {
		log.Error().Err(err).Strs("to", mail.To).Msg("failed to send mail via SMTP")

		return fmt.Errorf("smtp error: %w", err)
	}

	log.Info().Strs("to", mail.To).Str("subject", mail.Subject).Msg("mail sent")

	return nil
}

type loggingSender struct {
	from string
}

func (s *loggingSender) Configured() bool {
	return false
}

func (s *loggingSender) Send(_ context.Context, mail Mail) error {
	log.Info().
		Str("from", s.from).
		Strs("to", mail.To).
		Str("subject", mail.Subject).
		Str("body", mail.Body).
		Msg("mail logged (SMTP not configured)")

	return nil
}

// Compose renders an RFC 5322 message with CRLF line endings.
func Compose(from string, mail Mail, at time.Time) []byte {
	var b bytes.Buffer

	headers := [][2]string{
		{"From", from},
		{"To", strings.Join(mail.To, ", ")},
		{"Subject", mail.Subject},
		{"Date", at.Format(time.RFC1123Z)},
		{"MIME-Version", "1.0"},
		{"Content-Type", "text/plain; charset=\"utf-8\""},
	}

	for _, h := range headers {
		fmt.Fprintf(&b, "%s: %s\r\n", h[0], h[1])
	}

	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(mail.Body, "\n", "\r\n"))

	return b.Bytes()
}
