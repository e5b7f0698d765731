package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var dotenvOnce sync.Once

// Load parses the process environment into a fresh T on every call.
//
// There is intentionally no caching: the sending contract re-reads
// configuration from the environment on every invocation, so changes to the
// environment take effect immediately. Only the optional .env file is read
// once; it merely seeds the environment and never overrides set variables.
func Load[T any]() (T, error) {
	dotenvOnce.Do(func() {
		// Best effort: a missing .env file is not an error.
		_ = godotenv.Load()
	})

	var cfg T
	if err := env.Parse(&cfg); err != nil {
		if keys := missingKeys(err); len(keys) > 0 {
			return cfg, MissingError{Keys: keys}
		}
		return cfg, err
	}
	return cfg, nil
}

// MustLoad is Load that panics on failure, for startup paths that cannot
// proceed without configuration.
func MustLoad[T any]() T {
	cfg, err := Load[T]()
	if err != nil {
		panic(err)
	}
	return cfg
}

// MissingError aggregates every required environment variable that is absent
// or empty, in struct field order.
type MissingError struct {
	Keys []string
}

func (e MissingError) Error() string {
	return fmt.Sprintf("missing required environment variables: %s", strings.Join(e.Keys, ", "))
}

// missingKeys extracts the names of unset or empty required variables from a
// caarlos0/env parse error. An empty value counts as missing, matching the
// preflight contract.
func missingKeys(err error) []string {
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return nil
	}

	var keys []string
	for _, e := range agg.Errors {
		var notSet env.VarIsNotSetError
		if errors.As(e, &notSet) {
			keys = append(keys, notSet.Key)
			continue
		}
		var empty env.EmptyVarError
		if errors.As(e, &empty) {
			keys = append(keys, empty.Key)
		}
	}
	return keys
}
