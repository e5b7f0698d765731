package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender implements Sender for local development.
// It saves messages as HTML and JSON files to a specified directory
// instead of delivering them over SMTP.
type DevSender struct {
	dir string
}

// NewDevSender creates a development sender that saves messages to disk.
// The directory will be created if it doesn't exist.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir}
}

// messageMetadata contains the message data saved to JSON (excluding the body).
type messageMetadata struct {
	Timestamp   string   `json:"timestamp"`
	From        string   `json:"from"`
	To          []string `json:"to"`
	CC          []string `json:"cc,omitempty"`
	BCCCount    int      `json:"bcc_count"`
	Subject     string   `json:"subject"`
	BodyType    string   `json:"body_type"`
	Attachments []string `json:"attachments,omitempty"`
}

// Deliver saves the message body and metadata to the configured directory.
func (d *DevSender) Deliver(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	now := time.Now()
	baseFilename := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(msg.Subject))

	ext := ".txt"
	if msg.BodyType == BodyHTML {
		ext = ".html"
	}
	bodyPath := filepath.Join(d.dir, baseFilename+ext)
	if err := os.WriteFile(bodyPath, []byte(msg.Body), 0644); err != nil {
		return fmt.Errorf("failed to write body file: %w", err)
	}

	names := make([]string, 0, len(msg.Attachments))
	for _, a := range msg.Attachments {
		names = append(names, a.Filename)
	}

	metadata := messageMetadata{
		Timestamp:   now.Format(time.RFC3339),
		From:        msg.From,
		To:          msg.To,
		CC:          msg.CC,
		BCCCount:    len(msg.BCC),
		Subject:     msg.Subject,
		BodyType:    string(msg.BodyType),
		Attachments: names,
	}

	jsonData, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	jsonPath := filepath.Join(d.dir, baseFilename+".json")
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	return nil
}

// sanitizeRegex removes filesystem-unsafe characters from filenames
var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a string into a safe filename.
// It replaces spaces with underscores, removes special characters,
// and truncates to a reasonable length.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}

	if s == "" {
		s = "email"
	}

	return strings.ToLower(s)
}
