package mail

import (
	"errors"
	"fmt"
)

// Error variables define message building and transport failures that can be
// wrapped with detailed context using errors.Join() for comprehensive error
// reporting.
var (
	ErrInvalidRecipient = errors.New("recipient address (to) must be a non-empty string")
	ErrInvalidSubject   = errors.New("subject must be a non-empty string")
	ErrInvalidBody      = errors.New("body must be a non-empty string")
	ErrInvalidBodyType  = errors.New(`body type must be "plain" or "html"`)
	ErrInvalidConfig    = errors.New("invalid smtp configuration")
	ErrAttachment       = errors.New("failed to process attachment")

	// ErrConnect covers connection setup, the STARTTLS upgrade, and
	// authentication. Auth failures are deliberately not a distinct kind;
	// downstream consumers branch on the connection class for both.
	ErrConnect = errors.New("failed to connect to SMTP server")

	// ErrDeliver covers protocol-level failures after a session is
	// established (MAIL, RCPT, DATA).
	ErrDeliver = errors.New("smtp delivery failed")
)

// AttachmentError reports a failure to read a staged attachment file.
// It names the offending file so callers can surface it; a single bad file
// aborts the whole build, partial attachment sets are never sent.
type AttachmentError struct {
	Filename string
	Err      error
}

func (e AttachmentError) Error() string {
	return fmt.Sprintf("failed to process attachment (%s): %v", e.Filename, e.Err)
}

func (e AttachmentError) Unwrap() error { return ErrAttachment }
