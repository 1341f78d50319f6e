// Package config manages connector configuration loading and validation.
package config

import (
	"crypto/ed25519"
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/driftline/bpxconnect/errs"
)

const venueName = "backpack"

// Environment identifies the runtime environment the connector operates in.
type Environment string

const (
	// EnvDev marks the development environment.
	EnvDev Environment = "dev"
	// EnvStaging marks the staging environment.
	EnvStaging Environment = "staging"
	// EnvProd marks the production environment.
	EnvProd Environment = "prod"
)

// Credentials captures API key material used for authenticated requests.
// Kind selects the signing scheme: "hmac" for a shared UTF-8 secret,
// "ed25519" for a base64-encoded 32-byte private seed.
type Credentials struct {
	Kind   string `yaml:"kind"`
	APIKey string `yaml:"apiKey"`
	Secret string `yaml:"secret"`
}

// VenueSettings aggregates venue endpoint and signing configuration.
type VenueSettings struct {
	Domain       string        `yaml:"domain"`
	Credentials  Credentials   `yaml:"credentials"`
	WindowMillis int64         `yaml:"windowMillis"`
	HTTPTimeout  time.Duration `yaml:"httpTimeout"`
}

// TelemetryConfig configures the optional OTLP exporter.
type TelemetryConfig struct {
	OTLPEndpoint string `yaml:"otlpEndpoint"`
	ServiceName  string `yaml:"serviceName"`
}

// Settings is the connector configuration tree loaded from defaults,
// an optional YAML file, and environment overrides.
type Settings struct {
	Environment Environment     `yaml:"environment"`
	Venue       VenueSettings   `yaml:"venue"`
	Telemetry   TelemetryConfig `yaml:"telemetry"`
}

// Default returns the default connector configuration.
func Default() Settings {
	return Settings{
		Environment: EnvProd,
		Venue: VenueSettings{
			Domain:       "exchange",
			Credentials:  Credentials{Kind: "ed25519"},
			WindowMillis: 5000,
			HTTPTimeout:  10 * time.Second,
		},
		Telemetry: TelemetryConfig{ServiceName: "bpxconnect"},
	}
}

// Load reads settings from the YAML file at path over the defaults and
// applies environment overrides. It fails fast on unusable credential
// material so no signing is ever attempted with a bad key.
func Load(path string) (Settings, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Settings{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg = FromEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

// FromEnv applies BPX_-prefixed environment overrides to cfg.
func FromEnv(cfg Settings) Settings {
	if v := strings.TrimSpace(os.Getenv("BPX_ENV")); v != "" {
		cfg.Environment = Environment(strings.ToLower(v))
	}
	if v := strings.TrimSpace(os.Getenv("BPX_DOMAIN")); v != "" {
		cfg.Venue.Domain = v
	}
	if v := strings.TrimSpace(os.Getenv("BPX_SECRET_KIND")); v != "" {
		cfg.Venue.Credentials.Kind = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("BPX_API_KEY")); v != "" {
		cfg.Venue.Credentials.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv("BPX_API_SECRET")); v != "" {
		cfg.Venue.Credentials.Secret = v
	}
	if v := strings.TrimSpace(os.Getenv("BPX_WINDOW_MS")); v != "" {
		if window, err := strconv.ParseInt(v, 10, 64); err == nil && window > 0 {
			cfg.Venue.WindowMillis = window
		}
	}
	if v := strings.TrimSpace(os.Getenv("BPX_OTLP_ENDPOINT")); v != "" {
		cfg.Telemetry.OTLPEndpoint = v
	}
	if v := strings.TrimSpace(os.Getenv("BPX_SERVICE_NAME")); v != "" {
		cfg.Telemetry.ServiceName = v
	}
	return cfg
}

// Validate checks the configuration for fatal misconfiguration.
func (s Settings) Validate() error {
	if s.Venue.WindowMillis <= 0 {
		return errs.Config(venueName, "window must be a positive number of milliseconds", nil)
	}
	creds := s.Venue.Credentials
	if creds.APIKey == "" || creds.Secret == "" {
		// Credentials may legitimately be absent for public-only use.
		if creds.APIKey != "" || creds.Secret != "" {
			return errs.Config(venueName, "api key and secret must be provided together", nil)
		}
		return nil
	}
	switch creds.Kind {
	case "hmac":
		return nil
	case "ed25519":
		seed, err := base64.StdEncoding.DecodeString(creds.Secret)
		if err != nil {
			return errs.Config(venueName, "secret key is not valid base64", err)
		}
		if len(seed) != ed25519.SeedSize {
			return errs.Config(venueName,
				fmt.Sprintf("ed25519 seed must be %d bytes, got %d", ed25519.SeedSize, len(seed)), nil)
		}
		return nil
	default:
		return errs.Config(venueName, fmt.Sprintf("unknown secret kind %q", creds.Kind), nil)
	}
}
