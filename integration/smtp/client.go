package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"

	"github.com/dmitrymomot/mailkit/core/mail"
)

// Client implements the mail.Sender interface using the standard SMTP
// protocol. Each Deliver call owns its connection end-to-end: dial,
// authenticate, transact, close. No pooling, no reuse, no retries.
type Client struct {
	config Config
	auth   smtp.Auth
}

// New creates an SMTP-backed sender. All fields are required for runtime
// operation to ensure explicit configuration and avoid silent failures.
func New(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: Host is required", mail.ErrInvalidConfig)
	}
	if cfg.Port == "" {
		return nil, fmt.Errorf("%w: Port is required", mail.ErrInvalidConfig)
	}
	if _, err := cfg.PortNumber(); err != nil {
		return nil, err
	}
	if cfg.Username == "" {
		return nil, fmt.Errorf("%w: Username is required", mail.ErrInvalidConfig)
	}
	if cfg.Password == "" {
		return nil, fmt.Errorf("%w: Password is required", mail.ErrInvalidConfig)
	}

	return &Client{
		config: cfg,
		auth:   smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host),
	}, nil
}

// MustNew creates an SMTP client that panics on invalid config, for
// initialization paths that should fail fast.
func MustNew(cfg Config) *Client {
	client, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// Deliver sends the message to its full recipient set (to, cc, and bcc, in
// that order, empty segments included). Connection setup, the STARTTLS
// upgrade, and authentication failures wrap mail.ErrConnect; failures after
// the session is established wrap mail.ErrDeliver.
func (c *Client) Deliver(ctx context.Context, msg *mail.Message) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(mail.ErrConnect, err)
	}

	port, err := c.config.PortNumber()
	if err != nil {
		return err
	}
	serverAddr := net.JoinHostPort(c.config.Host, strconv.Itoa(port))

	var client *smtp.Client
	if c.config.StartTLS() {
		client, err = c.dialStartTLS(ctx, serverAddr)
	} else {
		client, err = c.dialImplicitTLS(ctx, serverAddr)
	}
	if err != nil {
		return errors.Join(mail.ErrConnect, err)
	}
	defer func() { _ = client.Close() }()

	if err := client.Auth(c.auth); err != nil {
		// Auth is reported as a connection-class failure, not a distinct
		// kind; consumers branch on the connection class for both.
		return errors.Join(mail.ErrConnect, fmt.Errorf("authentication failed: %w", err))
	}

	if err := c.transact(client, msg); err != nil {
		return errors.Join(mail.ErrDeliver, err)
	}

	return nil
}

// dialStartTLS opens a plaintext connection and upgrades it in place.
func (c *Client) dialStartTLS(ctx context.Context, serverAddr string) (*smtp.Client, error) {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", serverAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SMTP server: %w", err)
	}

	client, err := smtp.NewClient(conn, c.config.Host)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if err := client.StartTLS(&tls.Config{ServerName: c.config.Host}); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to start TLS: %w", err)
	}

	return client, nil
}

// dialImplicitTLS opens a channel that is encrypted from the first byte.
func (c *Client) dialImplicitTLS(ctx context.Context, serverAddr string) (*smtp.Client, error) {
	dialer := tls.Dialer{Config: &tls.Config{ServerName: c.config.Host}}
	conn, err := dialer.DialContext(ctx, "tcp", serverAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SMTP server with TLS: %w", err)
	}

	client, err := smtp.NewClient(conn, c.config.Host)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return client, nil
}

// transact performs the MAIL/RCPT/DATA exchange for an authenticated session.
func (c *Client) transact(client *smtp.Client, msg *mail.Message) error {
	from := msg.From
	if from == "" {
		from = c.config.Username
	}

	if err := client.Mail(from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	for _, rcpt := range msg.Recipients() {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("failed to set recipient %q: %w", rcpt, err)
		}
	}

	raw, err := msg.Encode()
	if err != nil {
		return err
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err := writer.Write(raw); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	// Quit errors are non-fatal as the message was already sent.
	// Some servers close the connection immediately after DATA.
	_ = client.Quit()

	return nil
}
