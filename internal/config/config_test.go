package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func mapLookup(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("DOTENV_PATH", "")

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("FLASK_ENV", "")
		t.Setenv("APP_ENV", "")
		t.Setenv("HOST", "")
		t.Chdir(t.TempDir())

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.Port != 8080 {
			t.Errorf("Expected default Port 8080, got %d", cfg.Port)
		}
		if cfg.Environment != "development" {
			t.Errorf("Expected default Environment development, got %s", cfg.Environment)
		}
		if cfg.Addr() != "0.0.0.0:8080" {
			t.Errorf("Expected Addr 0.0.0.0:8080, got %s", cfg.Addr())
		}
	})

	t.Run("Env Overrides", func(t *testing.T) {
		t.Setenv("PORT", "9999")
		t.Setenv("FLASK_ENV", "production")
		t.Chdir(t.TempDir())

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.Port != 9999 {
			t.Errorf("Expected Port 9999, got %d", cfg.Port)
		}
		if cfg.Environment != "production" {
			t.Errorf("Expected Environment production, got %s", cfg.Environment)
		}
	})

	t.Run("Dotenv seeds unset variables", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "fixture.env")
		if err := os.WriteFile(path, []byte("FLOWTEST_DOTENV_ONLY=from-file\nPORT=7000\n"), 0o600); err != nil {
			t.Fatalf("write dotenv: %v", err)
		}
		t.Setenv("DOTENV_PATH", path)
		t.Setenv("PORT", "9100")
		t.Cleanup(func() { _ = os.Unsetenv("FLOWTEST_DOTENV_ONLY") })

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Port != 9100 {
			t.Errorf("Expected process env to win with Port 9100, got %d", cfg.Port)
		}
		if got := os.Getenv("FLOWTEST_DOTENV_ONLY"); got != "from-file" {
			t.Errorf("Expected dotenv variable to be loaded, got %q", got)
		}
	})

	t.Run("Missing explicit dotenv fails", func(t *testing.T) {
		t.Setenv("DOTENV_PATH", filepath.Join(t.TempDir(), "missing.env"))

		if _, err := Load(); err == nil {
			t.Fatal("Expected error for missing DOTENV_PATH file")
		}
	})
}

func TestParsePort(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 8080},
		{"9999", 9999},
		{"1", 1},
		{"65535", 65535},
		{"abc", 8080},
		{"0", 8080},
		{"-1", 8080},
		{"70000", 8080},
		{" 8081", 8080},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := ParsePort(tt.raw); got != tt.want {
				t.Errorf("ParsePort(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFromLookup(t *testing.T) {
	t.Run("APP_ENV fallback", func(t *testing.T) {
		cfg := FromLookup(mapLookup(map[string]string{"APP_ENV": "staging"}))
		if cfg.Environment != "staging" {
			t.Errorf("Expected Environment staging, got %s", cfg.Environment)
		}
	})

	t.Run("FLASK_ENV wins over APP_ENV", func(t *testing.T) {
		cfg := FromLookup(mapLookup(map[string]string{"APP_ENV": "staging", "FLASK_ENV": "production"}))
		if cfg.Environment != "production" {
			t.Errorf("Expected Environment production, got %s", cfg.Environment)
		}
	})

	t.Run("Ambient settings", func(t *testing.T) {
		cfg := FromLookup(mapLookup(map[string]string{
			"HOST":                "127.0.0.1",
			"TRUST_PROXY":         "true",
			"RATE_LIMIT_RPS":      "0",
			"RATE_LIMIT_BURST":    "5",
			"DOCS_ENABLED":        "false",
			"SHUTDOWN_TIMEOUT":    "2s",
			"READ_HEADER_TIMEOUT": "500ms",
		}))

		if cfg.Host != "127.0.0.1" {
			t.Errorf("Expected Host 127.0.0.1, got %s", cfg.Host)
		}
		if !cfg.TrustProxy {
			t.Error("Expected TrustProxy true")
		}
		if cfg.RateLimitRPS != 0 {
			t.Errorf("Expected RateLimitRPS 0, got %v", cfg.RateLimitRPS)
		}
		if cfg.RateLimitBurst != 5 {
			t.Errorf("Expected RateLimitBurst 5, got %d", cfg.RateLimitBurst)
		}
		if cfg.DocsEnabled {
			t.Error("Expected DocsEnabled false")
		}
		if cfg.ShutdownTimeout != 2*time.Second {
			t.Errorf("Expected ShutdownTimeout 2s, got %s", cfg.ShutdownTimeout)
		}
		if cfg.ReadHeaderTimeout != 500*time.Millisecond {
			t.Errorf("Expected ReadHeaderTimeout 500ms, got %s", cfg.ReadHeaderTimeout)
		}
	})

	t.Run("Malformed values keep defaults", func(t *testing.T) {
		cfg := FromLookup(mapLookup(map[string]string{
			"PORT":             "http",
			"RATE_LIMIT_RPS":   "-3",
			"RATE_LIMIT_BURST": "lots",
			"SHUTDOWN_TIMEOUT": "soon",
		}))
		def := Default()

		if cfg.Port != def.Port {
			t.Errorf("Expected Port %d, got %d", def.Port, cfg.Port)
		}
		if cfg.RateLimitRPS != def.RateLimitRPS {
			t.Errorf("Expected RateLimitRPS %v, got %v", def.RateLimitRPS, cfg.RateLimitRPS)
		}
		if cfg.RateLimitBurst != def.RateLimitBurst {
			t.Errorf("Expected RateLimitBurst %d, got %d", def.RateLimitBurst, cfg.RateLimitBurst)
		}
		if cfg.ShutdownTimeout != def.ShutdownTimeout {
			t.Errorf("Expected ShutdownTimeout %s, got %s", def.ShutdownTimeout, cfg.ShutdownTimeout)
		}
	})
}
