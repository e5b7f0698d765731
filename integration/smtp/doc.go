// Package smtp provides an SMTP-based implementation of the mail.Sender
// interface with support for STARTTLS upgrades and implicit TLS.
//
// Basic usage:
//
//	cfg := smtp.Config{
//		Host:     "smtp.example.com",
//		Port:     "587",
//		Username: "noreply@example.com",
//		Password: "app-password",
//		UseTLS:   "true",
//	}
//
//	client, err := smtp.New(cfg)
//	if err != nil {
//		// invalid configuration
//	}
//	err = client.Deliver(ctx, msg)
//
// # TLS modes
//
// UseTLS compared case-insensitively to "true" selects the upgrade path:
// connect in plaintext, then switch to an encrypted channel via STARTTLS
// (typically port 587). Any other value selects implicit TLS: the channel is
// encrypted from the first byte (typically port 465).
//
// # Error classes
//
// Dial, upgrade, and authentication failures wrap mail.ErrConnect;
// MAIL/RCPT/DATA failures wrap mail.ErrDeliver. The distinction is the seam
// consumers use to map failures onto their error codes.
package smtp
