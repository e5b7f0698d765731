// Package mail provides the outgoing message model: building a multipart
// message from caller input and a staged attachments directory, encoding it
// to MIME wire format, and the Sender interface that transports implement.
//
// Building is pure aside from reading the attachments directory; no network
// access happens here. Validation fails fast with a specific sentinel error
// per violation so callers can map failures to stable error codes.
//
// Basic usage:
//
//	msg, err := mail.Build(mail.BuildParams{
//		From:    "noreply@example.com",
//		To:      "user@example.com",
//		Subject: "Welcome!",
//		Body:    "<h1>Hello</h1>",
//		BodyType: mail.BodyHTML,
//	})
//	if err != nil {
//		// errors.Is(err, mail.ErrInvalidSubject) etc.
//	}
//	raw, err := msg.Encode()
//
// Address lists are comma-separated strings; each segment is trimmed but
// empty segments are kept, so "a@x.com," yields a trailing empty recipient.
// This passthrough is intentional and relied upon by consumers.
package mail
