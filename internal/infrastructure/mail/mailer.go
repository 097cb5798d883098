// Package mail sends account emails over SMTP, with a log-only fallback for
// development environments without a mail server.
package mail

import (
	"fmt"
	"net/url"

	gomail "gopkg.in/gomail.v2"

	"github.com/rjfoods/storefront-api/internal/application/auth"
	"github.com/rjfoods/storefront-api/pkg/config"
	"github.com/rjfoods/storefront-api/pkg/logger"
)

var _ auth.Mailer = (*SMTPMailer)(nil)
var _ auth.Mailer = (*LogMailer)(nil)

// New returns an SMTP mailer when a host is configured, otherwise the log-only
// mailer so sign-up flows keep working in development.
func New(cfg config.SMTPConfig, log *logger.Logger) auth.Mailer {
	if cfg.Host == "" {
		log.Warn().Msg("SMTP_HOST not set, emails will only be logged")
		return NewLogMailer(cfg.BaseURL, log)
	}
	return NewSMTPMailer(cfg)
}

// SMTPMailer delivers account emails through an SMTP server.
type SMTPMailer struct {
	dialer  *gomail.Dialer
	from    string
	baseURL string
}

// NewSMTPMailer builds the mailer from SMTP settings.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:    cfg.From,
		baseURL: cfg.BaseURL,
	}
}

// SendVerification mails the email verification link.
func (m *SMTPMailer) SendVerification(toEmail, name, token string) error {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Please confirm your email address by clicking the link below:</p><p><a href=%q>Verify my email</a></p><p>The link expires in 24 hours.</p>",
		name, verificationLink(m.baseURL, token),
	)
	return m.send(toEmail, "Verify your email", body)
}

// SendPasswordReset mails the password reset link.
func (m *SMTPMailer) SendPasswordReset(toEmail, name, token string) error {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>We received a request to reset your password. Click the link below to choose a new one:</p><p><a href=%q>Reset my password</a></p><p>The link expires in 30 minutes. If you did not ask for this, ignore this email.</p>",
		name, resetLink(m.baseURL, token),
	)
	return m.send(toEmail, "Reset your password", body)
}

func (m *SMTPMailer) send(toEmail, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// LogMailer writes the links to the log instead of sending anything.
type LogMailer struct {
	baseURL string
	log     *logger.Logger
}

// NewLogMailer builds the development mailer.
func NewLogMailer(baseURL string, log *logger.Logger) *LogMailer {
	return &LogMailer{baseURL: baseURL, log: log}
}

// SendVerification logs the verification link.
func (m *LogMailer) SendVerification(toEmail, name, token string) error {
	m.log.Info().
		Str("to", toEmail).
		Str("link", verificationLink(m.baseURL, token)).
		Msg("verification email (log only)")
	return nil
}

// SendPasswordReset logs the reset link.
func (m *LogMailer) SendPasswordReset(toEmail, name, token string) error {
	m.log.Info().
		Str("to", toEmail).
		Str("link", resetLink(m.baseURL, token)).
		Msg("password reset email (log only)")
	return nil
}

func verificationLink(baseURL, token string) string {
	return fmt.Sprintf("%s/verify-email?token=%s", baseURL, url.QueryEscape(token))
}

func resetLink(baseURL, token string) string {
	return fmt.Sprintf("%s/reset-password?token=%s", baseURL, url.QueryEscape(token))
}
