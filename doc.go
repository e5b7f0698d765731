// Package mailkit sends email over SMTP on behalf of an automation agent.
// It exposes three synchronous operations: a single-message send, a
// best-effort bulk fan-out with per-recipient outcomes, and a templated send
// that fills one of four fixed HTML layouts.
//
// Every operation returns a fully-populated result structure instead of an
// error, so callers branch on Success and ErrorCode:
//
//	svc := mailkit.New()
//
//	res := svc.Send(ctx, mailkit.SendParams{
//		To:      "user@example.com",
//		Subject: "Hello",
//		Body:    "How are you?",
//	})
//	if !res.Success {
//		log.Printf("send failed: %s (%s)", res.Error, res.ErrorCode)
//	}
//
// SMTP settings come from the environment (SMTP_HOST, SMTP_PORT,
// SMTP_USERNAME, SMTP_PASSWORD, SMTP_USE_TLS) and are re-read on every call;
// the username doubles as the From address. Files staged in the attachments
// directory are attached to every outgoing message.
//
// # Package organization
//
//   - core/mail: message model, building, MIME encoding, the Sender seam
//   - core/templates: the four fixed HTML layouts and their renderer
//   - core/config: per-call environment loading
//   - core/logger: slog factory and attribute helpers
//   - integration/smtp: the SMTP transport (STARTTLS and implicit TLS)
//
// The scope ends at the SMTP handshake: no queues, no retries, no rate
// limiting, no bounce handling, no delivery tracking beyond the immediate
// synchronous attempt.
package mailkit
