package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort        = 8080
	DefaultEnvironment = "development"
)

type Config struct {
	Host              string
	Port              int
	Environment       string
	TrustProxy        bool
	RateLimitRPS      float64
	RateLimitBurst    int
	DocsEnabled       bool
	ShutdownTimeout   time.Duration
	ReadHeaderTimeout time.Duration
}

func Default() Config {
	return Config{
		Host:              "0.0.0.0",
		Port:              DefaultPort,
		Environment:       DefaultEnvironment,
		TrustProxy:        false,
		RateLimitRPS:      100,
		RateLimitBurst:    200,
		DocsEnabled:       true,
		ShutdownTimeout:   5 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Addr is the host:port the server binds.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load reads the process environment over Default. A .env file (or the
// file named by DOTENV_PATH) seeds variables that are not already set.
func Load() (*Config, error) {
	if err := loadDotenv(); err != nil {
		return nil, err
	}
	return FromLookup(os.LookupEnv), nil
}

// FromLookup builds a Config from an arbitrary lookup function. Malformed
// values fall back to their defaults instead of failing startup.
func FromLookup(lookup func(string) (string, bool)) *Config {
	cfg := Default()

	if host, ok := lookup("HOST"); ok && host != "" {
		cfg.Host = host
	}

	cfg.Port = ParsePort(lookupOr(lookup, "PORT"))

	if env := lookupOr(lookup, "FLASK_ENV"); env != "" {
		cfg.Environment = env
	} else if env := lookupOr(lookup, "APP_ENV"); env != "" {
		cfg.Environment = env
	}

	if lookupOr(lookup, "TRUST_PROXY") == "true" {
		cfg.TrustProxy = true
	}

	if v, err := strconv.ParseFloat(lookupOr(lookup, "RATE_LIMIT_RPS"), 64); err == nil && v >= 0 {
		cfg.RateLimitRPS = v
	}
	if v, err := strconv.Atoi(lookupOr(lookup, "RATE_LIMIT_BURST")); err == nil && v > 0 {
		cfg.RateLimitBurst = v
	}

	if lookupOr(lookup, "DOCS_ENABLED") == "false" {
		cfg.DocsEnabled = false
	}

	if d, err := time.ParseDuration(lookupOr(lookup, "SHUTDOWN_TIMEOUT")); err == nil && d > 0 {
		cfg.ShutdownTimeout = d
	}
	if d, err := time.ParseDuration(lookupOr(lookup, "READ_HEADER_TIMEOUT")); err == nil && d > 0 {
		cfg.ReadHeaderTimeout = d
	}

	return &cfg
}

// ParsePort returns the port in raw, or DefaultPort when raw is empty,
// not a number, or outside 1..65535.
func ParsePort(raw string) int {
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return DefaultPort
	}
	return port
}

func lookupOr(lookup func(string) (string, bool), key string) string {
	v, _ := lookup(key)
	return v
}

func loadDotenv() error {
	path := os.Getenv("DOTENV_PATH")
	explicit := path != ""
	if !explicit {
		path = ".env"
	}

	// godotenv.Load never overrides variables already present.
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
