package mail

import (
	"context"
	"fmt"
	"strings"
)

// BodyType selects the MIME subtype of the message body.
type BodyType string

const (
	BodyPlain BodyType = "plain"
	BodyHTML  BodyType = "html"
)

// Message represents a fully-prepared outgoing email.
// Constructed fresh per send via Build; never shared across calls.
type Message struct {
	From        string
	To          []string
	CC          []string
	BCC         []string
	ToHeader    string // original comma-separated To value, used verbatim in the header
	CCHeader    string // original comma-separated Cc value, empty when no cc
	Subject     string
	Body        string
	BodyType    BodyType
	Attachments []Attachment
}

// Attachment is a file staged for delivery. Content is always transported as
// generic binary (application/octet-stream, base64); no content-type sniffing.
type Attachment struct {
	Filename string
	Content  []byte
}

// Sender delivers a prepared message. Implementations own the connection
// end-to-end for a single call and must release it on every exit path.
type Sender interface {
	Deliver(ctx context.Context, msg *Message) error
}

// BuildParams carries the caller input for Build.
type BuildParams struct {
	From           string
	To             string // comma-separated, required
	CC             string // comma-separated, optional
	BCC            string // comma-separated, optional
	Subject        string
	Body           string
	BodyType       BodyType // zero value resolves to BodyPlain
	AttachmentsDir string   // scanned non-recursively; empty or missing dir means no attachments
}

// Build validates params, resolves address lists, and attaches every regular
// file found in AttachmentsDir. Any violation fails fast with a specific
// sentinel error and no partial construction.
func Build(params BuildParams) (*Message, error) {
	if params.To == "" {
		return nil, ErrInvalidRecipient
	}
	if params.Subject == "" {
		return nil, ErrInvalidSubject
	}
	if params.Body == "" {
		return nil, ErrInvalidBody
	}

	bodyType := params.BodyType
	if bodyType == "" {
		bodyType = BodyPlain
	}
	if bodyType != BodyPlain && bodyType != BodyHTML {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBodyType, string(params.BodyType))
	}

	attachments, err := collectAttachments(params.AttachmentsDir)
	if err != nil {
		return nil, err
	}

	return &Message{
		From:        params.From,
		To:          splitAddresses(params.To),
		CC:          splitAddresses(params.CC),
		BCC:         splitAddresses(params.BCC),
		ToHeader:    params.To,
		CCHeader:    params.CC,
		Subject:     params.Subject,
		Body:        params.Body,
		BodyType:    bodyType,
		Attachments: attachments,
	}, nil
}

// Recipients returns the delivery set: to, cc, and bcc concatenated in that
// order. Duplicates and empty segments are kept as-is.
func (m *Message) Recipients() []string {
	out := make([]string, 0, len(m.To)+len(m.CC)+len(m.BCC))
	out = append(out, m.To...)
	out = append(out, m.CC...)
	return append(out, m.BCC...)
}

// splitAddresses splits a comma-separated address list and trims each
// segment. Empty segments are NOT filtered: a trailing comma yields a
// trailing empty-string address.
func splitAddresses(list string) []string {
	if list == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
