package smtp_test

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailkit/core/mail"
	"github.com/dmitrymomot/mailkit/integration/smtp"
)

func validConfig() smtp.Config {
	return smtp.Config{
		Host:     "smtp.example.com",
		Port:     "587",
		Username: "user@example.com",
		Password: "password",
		UseTLS:   "true",
	}
}

func testMessage(t *testing.T) *mail.Message {
	t.Helper()
	msg, err := mail.Build(mail.BuildParams{
		From:    "user@example.com",
		To:      "rcpt@example.com",
		Subject: "Test",
		Body:    "Hello",
	})
	require.NoError(t, err)
	return msg
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(cfg *smtp.Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			mutate: func(cfg *smtp.Config) {},
		},
		{
			name:    "empty host",
			mutate:  func(cfg *smtp.Config) { cfg.Host = "" },
			wantErr: true,
			errMsg:  "Host is required",
		},
		{
			name:    "empty port",
			mutate:  func(cfg *smtp.Config) { cfg.Port = "" },
			wantErr: true,
			errMsg:  "Port is required",
		},
		{
			name:    "empty username",
			mutate:  func(cfg *smtp.Config) { cfg.Username = "" },
			wantErr: true,
			errMsg:  "Username is required",
		},
		{
			name:    "empty password",
			mutate:  func(cfg *smtp.Config) { cfg.Password = "" },
			wantErr: true,
			errMsg:  "Password is required",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)

			client, err := smtp.New(cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, client)
				assert.ErrorIs(t, err, mail.ErrInvalidConfig)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, client)
			}
		})
	}
}

func TestNew_NonNumericPort(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Port = "abc"

	client, err := smtp.New(cfg)
	assert.Nil(t, client)

	var invalidPort smtp.InvalidPortError
	require.ErrorAs(t, err, &invalidPort)
	assert.Equal(t, "abc", invalidPort.Port)
	assert.Contains(t, err.Error(), "SMTP_PORT must be a number")
}

func TestMustNew(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		assert.NotNil(t, smtp.MustNew(validConfig()))
	})

	assert.Panics(t, func() {
		smtp.MustNew(smtp.Config{})
	})
}

func TestConfig_StartTLS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"false", false},
		{"FALSE", false},
		{"1", false}, // only the literal "true" selects the upgrade path
		{"yes", false},
		{"", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("value %q", tt.value), func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			cfg.UseTLS = tt.value
			assert.Equal(t, tt.want, cfg.StartTLS())
		})
	}
}

func TestClient_Deliver_ConnectionRefused(t *testing.T) {
	t.Parallel()

	// Find an unused port.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	cfg := validConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = strconv.Itoa(port)

	client, err := smtp.New(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err = client.Deliver(ctx, testMessage(t))
	assert.Error(t, err)
	assert.ErrorIs(t, err, mail.ErrConnect)
	assert.Contains(t, err.Error(), "failed to connect to SMTP server")
}

func TestClient_Deliver_CancelledContext(t *testing.T) {
	t.Parallel()

	client, err := smtp.New(validConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = client.Deliver(ctx, testMessage(t))
	assert.ErrorIs(t, err, mail.ErrConnect)
}

// The upgrade path must speak plaintext SMTP first: greeting, then EHLO,
// then the STARTTLS command.
func TestClient_Deliver_StartTLSBranch(t *testing.T) {
	t.Parallel()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	received := make(chan string, 2)
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		fmt.Fprintf(conn, "220 test ESMTP\r\n")
		reader := bufio.NewReader(conn)

		line, _ := reader.ReadString('\n')
		received <- line
		fmt.Fprintf(conn, "250 test\r\n")

		line, _ = reader.ReadString('\n')
		received <- line
		fmt.Fprintf(conn, "502 command not implemented\r\n")
	}()

	cfg := validConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = strconv.Itoa(listener.Addr().(*net.TCPAddr).Port)
	cfg.UseTLS = "true"

	client, err := smtp.New(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err = client.Deliver(ctx, testMessage(t))
	assert.ErrorIs(t, err, mail.ErrConnect)
	assert.Contains(t, err.Error(), "failed to start TLS")

	select {
	case line := <-received:
		assert.True(t, strings.HasPrefix(line, "EHLO"), "expected EHLO, got %q", line)
	case <-time.After(2 * time.Second):
		t.Fatal("server never received a command")
	}
	select {
	case line := <-received:
		assert.True(t, strings.HasPrefix(line, "STARTTLS"), "expected STARTTLS, got %q", line)
	case <-time.After(2 * time.Second):
		t.Fatal("server never received the upgrade command")
	}
}

// The implicit-TLS path must be encrypted from the first byte: the server
// sees a TLS ClientHello (record type 0x16), never a plaintext command, and
// the upgrade step is never invoked.
func TestClient_Deliver_ImplicitTLSBranch(t *testing.T) {
	t.Parallel()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	firstByte := make(chan byte, 1)
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		buf := make([]byte, 1)
		if _, err := conn.Read(buf); err == nil {
			firstByte <- buf[0]
		}
	}()

	cfg := validConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = strconv.Itoa(listener.Addr().(*net.TCPAddr).Port)
	cfg.UseTLS = "false"

	client, err := smtp.New(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err = client.Deliver(ctx, testMessage(t))
	assert.ErrorIs(t, err, mail.ErrConnect)

	select {
	case b := <-firstByte:
		assert.Equal(t, byte(0x16), b, "expected a TLS handshake record")
	case <-time.After(2 * time.Second):
		t.Fatal("server never received any bytes")
	}
}
