package mailkit

import (
	"errors"
	"io"
	"log/slog"

	"github.com/dmitrymomot/mailkit/core/mail"
	"github.com/dmitrymomot/mailkit/core/templates"
	"github.com/dmitrymomot/mailkit/integration/smtp"
)

// DefaultAttachmentsDir is the well-known directory an external gateway
// stages attachment files into. Every regular file directly inside it is
// attached to every single-send call made while it exists.
const DefaultAttachmentsDir = "data/inputs/attachments"

// SenderFactory builds a transport for one send. The default factory wraps
// the SMTP client; tests and development setups substitute their own.
type SenderFactory func(cfg smtp.Config) (mail.Sender, error)

// Service exposes the three sending operations. It holds no mutable state:
// configuration is re-read from the environment and a fresh message and
// connection are created on every call, so a Service is safe for concurrent
// use.
type Service struct {
	log            *slog.Logger
	newSender      SenderFactory
	attachmentsDir string
}

// Option configures a Service.
type Option func(*Service)

// WithAttachmentsDir overrides the staged-attachments directory.
func WithAttachmentsDir(dir string) Option {
	return func(s *Service) { s.attachmentsDir = dir }
}

// WithLogger attaches a structured logger. Logging is observability only;
// results carry all caller-facing state.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithSenderFactory overrides how transports are built per send.
func WithSenderFactory(factory SenderFactory) Option {
	return func(s *Service) { s.newSender = factory }
}

// New creates a Service with the default SMTP transport and a discard logger.
func New(opts ...Option) *Service {
	s := &Service{
		log:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		attachmentsDir: DefaultAttachmentsDir,
		newSender: func(cfg smtp.Config) (mail.Sender, error) {
			return smtp.New(cfg)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// classify maps an internal error onto its public code. Anything that does
// not carry a known sentinel is UNEXPECTED_ERROR.
func classify(err error) Code {
	switch {
	case errors.Is(err, mail.ErrInvalidRecipient):
		return CodeInvalidRecipient
	case errors.Is(err, mail.ErrInvalidSubject):
		return CodeInvalidSubject
	case errors.Is(err, mail.ErrInvalidBody):
		return CodeInvalidBody
	case errors.Is(err, mail.ErrInvalidBodyType):
		return CodeInvalidBodyType
	case errors.Is(err, mail.ErrAttachment):
		return CodeAttachmentError
	case errors.Is(err, mail.ErrConnect):
		return CodeSMTPConnectionError
	case errors.Is(err, mail.ErrDeliver):
		return CodeSMTPError
	case errors.Is(err, mail.ErrInvalidConfig):
		return CodeMissingSMTPConfig
	case errors.Is(err, templates.ErrUnknownKind):
		return CodeInvalidTemplateType
	case errors.Is(err, templates.ErrEmptyData):
		return CodeInvalidTemplateData
	case errors.Is(err, templates.ErrMissingField):
		return CodeMissingTemplateField
	default:
		var invalidPort smtp.InvalidPortError
		if errors.As(err, &invalidPort) {
			return CodeInvalidPort
		}
		return CodeUnexpectedError
	}
}

func classified(err error) SendResult {
	return failure(classify(err), err.Error())
}
