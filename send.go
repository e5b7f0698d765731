package mailkit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/mailkit/core/config"
	"github.com/dmitrymomot/mailkit/core/logger"
	"github.com/dmitrymomot/mailkit/core/mail"
	"github.com/dmitrymomot/mailkit/integration/smtp"
)

// SendParams carries the input for a single send. To, CC, and BCC are
// comma-separated address lists; BodyType defaults to plain.
type SendParams struct {
	To       string
	Subject  string
	Body     string
	CC       string
	BCC      string
	BodyType mail.BodyType
}

// Send delivers one message. The flow is strictly ordered: environment
// configuration, input validation and message building, port parsing (all
// before any network I/O), then a single delivery attempt. No retries.
func (s *Service) Send(ctx context.Context, params SendParams) SendResult {
	cfg, result, ok := s.loadConfig()
	if !ok {
		return result
	}

	msg, err := mail.Build(mail.BuildParams{
		From:           cfg.Username,
		To:             params.To,
		CC:             params.CC,
		BCC:            params.BCC,
		Subject:        params.Subject,
		Body:           params.Body,
		BodyType:       params.BodyType,
		AttachmentsDir: s.attachmentsDir,
	})
	if err != nil {
		return classified(err)
	}

	if _, err := cfg.PortNumber(); err != nil {
		return failure(CodeInvalidPort, err.Error())
	}

	sender, err := s.newSender(cfg)
	if err != nil {
		return classified(err)
	}

	start := time.Now()
	if err := sender.Deliver(ctx, msg); err != nil {
		s.log.ErrorContext(ctx, "email delivery failed",
			logger.Component("mailkit"),
			logger.Event("send"),
			logger.Error(err),
		)
		return classified(err)
	}

	s.log.InfoContext(ctx, "email sent",
		logger.Component("mailkit"),
		logger.Event("send"),
		logger.Duration(time.Since(start)),
	)

	result = SendResult{
		Success:    true,
		Message:    "email sent",
		Recipients: msg.To,
		BCCCount:   len(msg.BCC),
	}
	if len(msg.CC) > 0 {
		result.CC = msg.CC
	}
	return result
}

// loadConfig re-reads SMTP settings from the environment and checks every
// required variable is present. Port parsing is deferred until the message is
// built: inputs are validated first, but both checks run before any
// connection attempt.
func (s *Service) loadConfig() (smtp.Config, SendResult, bool) {
	cfg, err := config.Load[smtp.Config]()
	if err != nil {
		var missing config.MissingError
		if errors.As(err, &missing) {
			result := failure(CodeMissingSMTPConfig,
				fmt.Sprintf("missing required SMTP configuration: %s", strings.Join(missing.Keys, ", ")))
			result.MissingConfigs = missing.Keys
			return cfg, result, false
		}
		return cfg, failure(CodeUnexpectedError, err.Error()), false
	}

	return cfg, SendResult{}, true
}
