// Package mail delivers transactional email over SMTP.
package mail

import (
	"context"
	"fmt"

	"github.com/eco-conscious/backend/internal/config"
	"github.com/eco-conscious/backend/internal/logger"
	"gopkg.in/gomail.v2"
)

// SMTPMailer sends mail through a single configured SMTP relay. It
// implements the Mailer contract consumed by the auth service.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	logger *logger.Logger
}

// NewSMTPMailer constructs an SMTPMailer from cfg. When cfg.From is empty
// the SMTP username doubles as the sender address.
func NewSMTPMailer(cfg config.Mail, logger *logger.Logger) *SMTPMailer {
	logger.Debug().Str("host", cfg.SMTPHost).Int("port", cfg.SMTPPort).Msg("creating SMTP mailer")

	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password),
		from:   from,
		logger: logger,
	}
}

// SendVerificationEmail delivers the account-verification message.
//
// gomail dials synchronously and carries no context of its own, so the
// passed context is only consulted before the dial starts.
func (m *SMTPMailer) SendVerificationEmail(ctx context.Context, to, fullname, verifyURL string) error {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("verification email aborted: %w", err)
	}

	body, err := renderVerificationEmail(fullname, verifyURL)
	if err != nil {
		return fmt.Errorf("verification email rendering failed: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Verify your Eco-Conscious account")
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		log.Err(err).Str("func", "*SMTPMailer.SendVerificationEmail").Msg("error: SMTP delivery failed")
		return fmt.Errorf("SMTP delivery failed: %w", err)
	}

	return nil
}
