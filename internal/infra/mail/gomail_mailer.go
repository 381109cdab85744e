// Package mail delivers transactional email over SMTP.
package mail

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"clinica/config"
	"clinica/internal/domain/service"
	"clinica/internal/errors"
	"clinica/internal/util"
)

// smtpMailer is a concrete implementation of the Mailer interface using gomail.
type smtpMailer struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config) (service.Mailer, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp configuration must be provided")
	}

	return &smtpMailer{
		dialer:   gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password),
		from:     cfg.SMTP.From,
		fromName: cfg.SMTP.FromName,
	}, nil
}

// SendVerificationEmail delivers an account activation code.
func (m *smtpMailer) SendVerificationEmail(ctx context.Context, to, fullName, code string, ttl time.Duration) error {
	subject := "Activa tu cuenta"
	body := fmt.Sprintf(
		"<p>Hola %s,</p>"+
			"<p>Tu código de activación es: <strong>%s</strong></p>"+
			"<p>El código expira en %s.</p>",
		fullName, code, util.FormatDuration(ttl))

	return m.send(ctx, to, subject, body)
}

// SendLoginCodeEmail delivers a second-factor login code.
func (m *smtpMailer) SendLoginCodeEmail(ctx context.Context, to, fullName, code string, ttl time.Duration) error {
	subject := "Tu código de inicio de sesión"
	body := fmt.Sprintf(
		"<p>Hola %s,</p>"+
			"<p>Tu código de verificación es: <strong>%s</strong></p>"+
			"<p>El código expira en %s. Si no intentaste iniciar sesión, ignora este correo.</p>",
		fullName, code, util.FormatDuration(ttl))

	return m.send(ctx, to, subject, body)
}

func (m *smtpMailer) send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "mail send aborted")
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	return nil
}
