package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr     = ":8000"
	defaultTimeout  = 10 * time.Second
	defaultFanOut   = 4
	defaultLogLevel = "info"
	defaultEnvFile  = ".env"
	envFileVariable = "LOOKUP_ENV_FILE"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr string
}

// Upstream holds everything the lookup pipeline needs to reach both services.
// It is built once at startup and never mutated.
type Upstream struct {
	PrimaryURL       string
	EnrichmentURL    string
	EnrichmentKey    string
	Timeout          time.Duration
	EnrichmentFanOut int
}

// Config is the full process configuration.
type Config struct {
	Server   Server
	Upstream Upstream
	LogLevel string
}

// Load reads an optional .env file (path overridable through LOOKUP_ENV_FILE)
// and then builds the configuration from the environment. Variables already
// present in the environment win over the file.
func Load() (Config, error) {
	path := os.Getenv(envFileVariable)
	if path == "" {
		path = defaultEnvFile
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file %s: %w", path, err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	cfg := Config{
		Server: Server{Addr: getenv("LOOKUP_ADDR", defaultAddr)},
		Upstream: Upstream{
			PrimaryURL:       os.Getenv("PRIMARY_LOOKUP_URL"),
			EnrichmentURL:    os.Getenv("ENRICHMENT_URL"),
			EnrichmentKey:    os.Getenv("ENRICHMENT_ACCESS_KEY"),
			Timeout:          defaultTimeout,
			EnrichmentFanOut: defaultFanOut,
		},
		LogLevel: getenv("LOG_LEVEL", defaultLogLevel),
	}

	if raw := os.Getenv("UPSTREAM_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse UPSTREAM_TIMEOUT: %w", err)
		}
		cfg.Upstream.Timeout = d
	}
	if raw := os.Getenv("ENRICHMENT_FANOUT"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse ENRICHMENT_FANOUT: %w", err)
		}
		cfg.Upstream.EnrichmentFanOut = n
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem at once rather than the first one found.
func (c Config) Validate() error {
	var errs []error
	if err := validateURL("PRIMARY_LOOKUP_URL", c.Upstream.PrimaryURL); err != nil {
		errs = append(errs, err)
	}
	if err := validateURL("ENRICHMENT_URL", c.Upstream.EnrichmentURL); err != nil {
		errs = append(errs, err)
	}
	if c.Upstream.EnrichmentKey == "" {
		errs = append(errs, errors.New("ENRICHMENT_ACCESS_KEY is required"))
	}
	if c.Upstream.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("UPSTREAM_TIMEOUT must be positive, got %s", c.Upstream.Timeout))
	}
	if c.Upstream.EnrichmentFanOut < 1 {
		errs = append(errs, fmt.Errorf("ENRICHMENT_FANOUT must be at least 1, got %d", c.Upstream.EnrichmentFanOut))
	}
	return errors.Join(errs...)
}

func validateURL(name, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", name)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", name, raw)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
