// Package payload builds the JSON bodies served by the fixture. Every
// builder is a pure function of its inputs so handlers can inject the
// clock, the environment and runtime details.
package payload

import (
	"runtime"
	"strings"
	"time"
)

const (
	GreetingMessage = "Hello from Flow Test Go App!"
	StatusHealthy   = "healthy"

	// MetricUnavailable stands in for uptime and memory, which the fixture
	// does not measure.
	MetricUnavailable = "N/A (process metrics not collected)"

	TimestampLayout = "2006-01-02 15:04:05 UTC"
)

type GreetingResponse struct {
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp" example:"2026-10-17 12:00:00 UTC"`
	Environment string `json:"environment" example:"development"`
	Port        int    `json:"port" example:"8080"`
}

type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
	Uptime string `json:"uptime"`
	Memory string `json:"memory"`
}

type EnvironmentResponse struct {
	Environment    map[string]string `json:"environment"`
	RuntimeVersion string            `json:"runtime_version" example:"go1.25.7"`
	Platform       string            `json:"platform" example:"linux/amd64"`
}

// Runtime identifies the toolchain and host the process runs on.
type Runtime struct {
	Version  string
	Platform string
}

func CurrentRuntime() Runtime {
	return Runtime{
		Version:  runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// FormatTimestamp renders t in UTC with one-second resolution.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func Greeting(environment string, now time.Time, port int) GreetingResponse {
	return GreetingResponse{
		Message:     GreetingMessage,
		Timestamp:   FormatTimestamp(now),
		Environment: environment,
		Port:        port,
	}
}

func Health() HealthResponse {
	return HealthResponse{
		Status: StatusHealthy,
		Uptime: MetricUnavailable,
		Memory: MetricUnavailable,
	}
}

func Environment(environ []string, rt Runtime) EnvironmentResponse {
	return EnvironmentResponse{
		Environment:    ParseEnviron(environ),
		RuntimeVersion: rt.Version,
		Platform:       rt.Platform,
	}
}

// ParseEnviron turns KEY=VALUE pairs, as returned by os.Environ, into a map.
// Values may contain '='; only the first one separates the key. Entries
// without '=' map to "". Later duplicates win.
func ParseEnviron(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, _ := strings.Cut(kv, "=")
		if key == "" {
			continue
		}
		env[key] = value
	}
	return env
}
