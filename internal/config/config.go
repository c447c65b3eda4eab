// Package config loads server settings from an optional YAML file and
// COALA_* environment variables.
package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environments.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Defaults.
const (
	DefaultAddr          = ":8080"
	DefaultDBPath        = "coala.db"
	DefaultRatePerMinute = 120
	DefaultSlowRequest   = 200 * time.Millisecond
	DefaultSlowQuery     = 50 * time.Millisecond
	DefaultShutdown      = 10 * time.Second
)

var (
	// ErrInvalidEnv is returned for an environment other than development or production.
	ErrInvalidEnv = errors.New("env must be development or production")
	// ErrInvalidRateLimit is returned for a non-positive request budget.
	ErrInvalidRateLimit = errors.New("rate limit must be positive")
	// ErrInvalidCSRFKey is returned when the key is not 64 hex characters.
	ErrInvalidCSRFKey = errors.New("csrf key must be 64 hex characters")
)

// Config is the server configuration. Durations in YAML are given in
// milliseconds, like their environment variables.
type Config struct {
	Addr           string   `yaml:"addr"`
	Env            string   `yaml:"env"`
	DBPath         string   `yaml:"dbPath"`
	APIBaseURL     string   `yaml:"apiBaseUrl"`
	CSRFKey        string   `yaml:"csrfKey"`
	TrustedOrigins []string `yaml:"trustedOrigins"`
	RatePerMinute  int      `yaml:"rateLimit"`
	SlowRequestMs  int      `yaml:"slowRequestMs"`
	SlowQueryMs    int      `yaml:"slowQueryMs"`
}

// Default returns the development configuration.
func Default() Config {
	return Config{
		Addr:          DefaultAddr,
		Env:           EnvDevelopment,
		DBPath:        DefaultDBPath,
		RatePerMinute: DefaultRatePerMinute,
		SlowRequestMs: int(DefaultSlowRequest / time.Millisecond),
		SlowQueryMs:   int(DefaultSlowQuery / time.Millisecond),
	}
}

// Load builds the configuration: defaults, then the YAML file at path (skipped
// when path is empty), then environment variables.
// PRE: none
// POST: Returns a validated Config or the first error met
func Load(path string) (Config, error) {
	return load(path, os.LookupEnv)
}

func load(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = n
		return nil
	}

	str("COALA_ADDR", &c.Addr)
	str("COALA_ENV", &c.Env)
	str("COALA_DB_PATH", &c.DBPath)
	str("COALA_API_BASE_URL", &c.APIBaseURL)
	str("COALA_CSRF_KEY", &c.CSRFKey)
	if v, ok := lookup("COALA_TRUSTED_ORIGINS"); ok && v != "" {
		c.TrustedOrigins = nil
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				c.TrustedOrigins = append(c.TrustedOrigins, o)
			}
		}
	}
	if err := num("COALA_RATE_LIMIT", &c.RatePerMinute); err != nil {
		return err
	}
	if err := num("COALA_SLOW_REQUEST_MS", &c.SlowRequestMs); err != nil {
		return err
	}
	return num("COALA_SLOW_QUERY_MS", &c.SlowQueryMs)
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Env != EnvDevelopment && c.Env != EnvProduction {
		return fmt.Errorf("%w: %q", ErrInvalidEnv, c.Env)
	}
	if c.RatePerMinute <= 0 {
		return ErrInvalidRateLimit
	}
	if c.CSRFKey != "" {
		if b, err := hex.DecodeString(c.CSRFKey); err != nil || len(b) != 32 {
			return ErrInvalidCSRFKey
		}
	}
	if c.SlowRequestMs < 0 || c.SlowQueryMs < 0 {
		return errors.New("slow thresholds cannot be negative")
	}
	return nil
}

// Production reports whether the server runs in production mode.
func (c Config) Production() bool {
	return c.Env == EnvProduction
}

// SlowRequest is the request logging threshold.
func (c Config) SlowRequest() time.Duration {
	return time.Duration(c.SlowRequestMs) * time.Millisecond
}

// SlowQuery is the query logging threshold.
func (c Config) SlowQuery() time.Duration {
	return time.Duration(c.SlowQueryMs) * time.Millisecond
}
