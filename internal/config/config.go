// Package config resolves the process-wide settings of the facts server.
//
// Settings come from the environment and are read once at startup. The
// resulting Config is never mutated afterwards; every component receives
// it (or the fields it needs) through its constructor.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Transport names accepted in NOTEBARE_TRANSPORT.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// ErrMissingToken is returned by Load when NOTEBARE_API_TOKEN is unset or empty.
var ErrMissingToken = errors.New(
	"NOTEBARE_API_TOKEN env var is required. " +
		"Create one at notebare.com or via POST /auth/tokens",
)

// Config holds everything the server needs to talk to the facts API.
type Config struct {
	// APIURL is the base URL of the facts API, without the /facts/ path.
	APIURL string `env:"NOTEBARE_API_URL" envDefault:"https://api.notebare.com"`
	// APIToken is the bearer credential sent with every request.
	APIToken string `env:"NOTEBARE_API_TOKEN"`

	Transport string `env:"NOTEBARE_TRANSPORT" envDefault:"stdio"`
	HTTPAddr  string `env:"NOTEBARE_HTTP_ADDR" envDefault:":8080"`

	Debug bool `env:"NOTEBARE_DEBUG" envDefault:"false"`
}

// Load parses the environment into a Config and validates it.
// A missing token is fatal: callers should report the error and exit.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDotenv loads variables from a dotenv file into the process
// environment. Variables that are already set keep their value.
func LoadDotenv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Validate checks the invariants Load relies on.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIToken) == "" {
		return ErrMissingToken
	}
	if strings.TrimSpace(c.APIURL) == "" {
		return errors.New("NOTEBARE_API_URL must not be empty")
	}
	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("unknown transport %q (want %q or %q)", c.Transport, TransportStdio, TransportHTTP)
	}
	return nil
}
