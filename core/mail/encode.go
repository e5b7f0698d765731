package mail

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime"
	"mime/multipart"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Encode renders the message to MIME wire format: a multipart/mixed envelope
// with the text body as the first part and one application/octet-stream part
// per attachment. BCC recipients never appear in the headers.
func (m *Message) Encode() ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	writeHeader(&buf, "From", m.From)
	writeHeader(&buf, "To", m.ToHeader)
	if m.CCHeader != "" {
		writeHeader(&buf, "Cc", m.CCHeader)
	}
	writeHeader(&buf, "Subject", encodeSubject(m.Subject))
	writeHeader(&buf, "Date", time.Now().Format(time.RFC1123Z))
	writeHeader(&buf, "Message-ID", messageID(m.From))
	writeHeader(&buf, "MIME-Version", "1.0")
	writeHeader(&buf, "Content-Type", fmt.Sprintf("multipart/mixed; boundary=%q", mw.Boundary()))
	buf.WriteString("\r\n")

	bodyHeader := textproto.MIMEHeader{}
	bodyHeader.Set("Content-Type", fmt.Sprintf("text/%s; charset=\"UTF-8\"", m.BodyType))
	part, err := mw.CreatePart(bodyHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to create body part: %w", err)
	}
	if _, err := part.Write([]byte(m.Body)); err != nil {
		return nil, fmt.Errorf("failed to write body: %w", err)
	}

	for _, a := range m.Attachments {
		header := textproto.MIMEHeader{}
		header.Set("Content-Type", "application/octet-stream")
		header.Set("Content-Transfer-Encoding", "base64")
		header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", a.Filename))

		part, err := mw.CreatePart(header)
		if err != nil {
			return nil, AttachmentError{Filename: a.Filename, Err: err}
		}
		if _, err := part.Write(wrapBase64(a.Content)); err != nil {
			return nil, AttachmentError{Filename: a.Filename, Err: err}
		}
	}

	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize message: %w", err)
	}

	return buf.Bytes(), nil
}

func writeHeader(buf *bytes.Buffer, key, value string) {
	fmt.Fprintf(buf, "%s: %s\r\n", key, value)
}

// encodeSubject strips CR/LF to prevent header injection and Q-encodes
// non-ASCII subjects.
func encodeSubject(subject string) string {
	subject = strings.NewReplacer("\r", "", "\n", "").Replace(subject)
	return mime.QEncoding.Encode("utf-8", subject)
}

// messageID builds a unique Message-ID using the sender's domain when one is
// available.
func messageID(from string) string {
	domain := "localhost"
	if _, d, ok := strings.Cut(from, "@"); ok && d != "" {
		domain = d
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}

// wrapBase64 encodes content and folds the output at 76 columns per RFC 2045.
func wrapBase64(content []byte) []byte {
	encoded := base64.StdEncoding.EncodeToString(content)

	const lineLength = 76
	var out bytes.Buffer
	out.Grow(len(encoded) + 2*(len(encoded)/lineLength+1))
	for len(encoded) > lineLength {
		out.WriteString(encoded[:lineLength])
		out.WriteString("\r\n")
		encoded = encoded[lineLength:]
	}
	out.WriteString(encoded)
	return out.Bytes()
}
