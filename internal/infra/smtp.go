package infra

import (
	"errors"
	"fmt"
	"net/smtp"

	"aratrack/internal/config"

	"github.com/jordan-wright/email"
)

// ErrSMTPNoConfigurado is returned when no SMTP host has been set.
var ErrSMTPNoConfigurado = errors.New("mailer: SMTP no configurado")

// Mailer wraps SMTP configuration for sending dispatch sheets as attachments.
type Mailer struct {
	host     string
	user     string
	password string
	addr     string
	cb       *CircuitBreaker
}

func NewMailer(cfg *config.Config, cb *CircuitBreaker) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		cb:       cb,
	}
}

// EnviarPlanilla mails the PDF at pdfPath to the given address.
func (m *Mailer) EnviarPlanilla(to, subject, body, pdfPath string) error {
	if m.host == "" {
		return ErrSMTPNoConfigurado
	}
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	if _, err := e.AttachFile(pdfPath); err != nil {
		return fmt.Errorf("mailer: attach PDF: %w", err)
	}

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.password, m.host)
	}
	send := func() error { return e.Send(m.addr, auth) }
	if m.cb != nil {
		err := m.cb.Execute(send)
		if errors.Is(err, ErrCircuitOpen) {
			return err
		}
		if err != nil {
			return fmt.Errorf("mailer: send: %w", err)
		}
		return nil
	}
	if err := send(); err != nil {
		return fmt.Errorf("mailer: send: %w", err)
	}
	return nil
}
