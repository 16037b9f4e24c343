// Package mailer sends owner notifications for new contact messages over SMTP.
package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/folio/backend/internal/model"
)

// Mailer notifies the site owner about contact form submissions.
type Mailer interface {
	// SendContactNotification emails the owner about a new message. The call
	// blocks for the duration of the SMTP exchange.
	SendContactNotification(msg *model.ContactMessage) error
	// Configured reports whether SMTP credentials are present.
	Configured() bool
}

// Config holds SMTP relay settings.
type Config struct {
	Host     string // e.g. "smtp.gmail.com"
	Port     string // e.g. "587"
	Username string
	Password string
	To       string // owner address receiving notifications
}

// SMTPMailer is the production Mailer using net/smtp with PLAIN auth.
type SMTPMailer struct {
	cfg Config
}

// NewSMTPMailer creates an SMTPMailer with the given settings.
func NewSMTPMailer(cfg Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

var _ Mailer = (*SMTPMailer)(nil)

func (m *SMTPMailer) Configured() bool {
	return m.cfg.Host != "" && m.cfg.Username != "" && m.cfg.Password != "" && m.cfg.To != ""
}

func (m *SMTPMailer) SendContactNotification(msg *model.ContactMessage) error {
	if !m.Configured() {
		return fmt.Errorf("mailer: smtp credentials not configured")
	}

	subject := fmt.Sprintf("Portfolio contact: %s", msg.Name)
	body := fmt.Sprintf("New contact form submission:\n\nName: %s\nEmail: %s\nMessage:\n%s\n",
		msg.Name, msg.Email, msg.Message)

	raw := []byte("To: " + m.cfg.To + "\r\n" +
		"From: " + m.cfg.Username + "\r\n" +
		"Reply-To: " + msg.Email + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := smtp.SendMail(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.Username, []string{m.cfg.To}, raw); err != nil {
		return fmt.Errorf("mailer: send: %w", err)
	}
	return nil
}
