package smtp

import (
	"fmt"
	"strconv"
	"strings"
)

// Config holds SMTP server configuration, sourced from the environment on
// every send. The username doubles as the From address.
//
// Port and UseTLS stay strings on purpose: the port must be rejected as
// INVALID_PORT after the missing-variable check (not conflated with it), and
// UseTLS is compared case-insensitively to the literal "true" — any other
// value, including "1", selects implicit TLS.
type Config struct {
	Host     string `env:"SMTP_HOST,required,notEmpty"`
	Port     string `env:"SMTP_PORT,required,notEmpty"`
	Username string `env:"SMTP_USERNAME,required,notEmpty"`
	Password string `env:"SMTP_PASSWORD,required,notEmpty"`
	UseTLS   string `env:"SMTP_USE_TLS" envDefault:"true"`
}

// PortNumber parses the configured port. A non-numeric value is an
// InvalidPortError; no connection is ever attempted with one.
func (c Config) PortNumber() (int, error) {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return 0, InvalidPortError{Port: c.Port}
	}
	return port, nil
}

// StartTLS reports whether the connection should be opened in plaintext and
// upgraded in place. False means implicit TLS from the first byte.
func (c Config) StartTLS() bool {
	return strings.EqualFold(c.UseTLS, "true")
}

// InvalidPortError reports a non-numeric SMTP_PORT value.
type InvalidPortError struct {
	Port string
}

func (e InvalidPortError) Error() string {
	return fmt.Sprintf("SMTP_PORT must be a number: %s", e.Port)
}
