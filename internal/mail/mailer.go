// Package mail is the outbound notification gateway. Callers hand it a
// recipient, a subject and an HTML body; delivery goes through Resend.
package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"parcelo/internal/config"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

type ResendMailer struct {
	client *resend.Client
	from   string
	logger *zap.Logger
}

func NewResendMailer(cfg config.MailConfig, logger *zap.Logger) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(cfg.APIKey),
		from:   fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromAddr),
		logger: logger,
	}
}

func (m *ResendMailer) Send(ctx context.Context, to, subject, html string) error {
	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}

	m.logger.Debug("email sent", zap.String("to", to), zap.String("emailId", sent.Id))
	return nil
}

// LogMailer is the no-provider fallback used when MAIL_API_KEY is unset.
// It logs the message instead of delivering it.
type LogMailer struct {
	logger *zap.Logger
}

func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, to, subject, html string) error {
	m.logger.Info("email delivery skipped (no mail provider configured)",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}

// New picks the Resend mailer when an API key is configured, the log-only
// mailer otherwise.
func New(cfg config.MailConfig, logger *zap.Logger) Mailer {
	if cfg.APIKey == "" {
		return NewLogMailer(logger)
	}
	return NewResendMailer(cfg, logger)
}
