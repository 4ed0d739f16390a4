package email

import (
	"fmt"
	"net/smtp"

	"go-jobportal-backend/config"
)

// Mailer sends a plain-text message to a single recipient.
type Mailer interface {
	Send(to, subject, body string) error
	IsConfigured() bool
}

// SMTPMailer sends mail over SMTP with PLAIN auth.
type SMTPMailer struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

// NewSMTPMailer creates a mailer from the SMTP section of the config.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

// Send builds a minimal MIME message and submits it to the relay.
func (s *SMTPMailer) Send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		to,
		subject,
		body,
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// IsConfigured checks if the mailer has valid SMTP configuration.
func (s *SMTPMailer) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
