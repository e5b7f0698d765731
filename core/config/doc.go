// Package config provides type-safe environment variable loading using Go
// generics. A .env file is merged into the environment on first use; after
// that every Load call parses the environment fresh, so configuration
// changes between calls are always observed.
//
//	type SMTPConfig struct {
//		Host string `env:"SMTP_HOST,required,notEmpty"`
//		Port string `env:"SMTP_PORT,required,notEmpty"`
//	}
//
//	cfg, err := config.Load[SMTPConfig]()
//	var missing config.MissingError
//	if errors.As(err, &missing) {
//		// missing.Keys lists every absent required variable
//	}
package config
