// Package probe checks a running fixture from the outside, the way a
// deployment pipeline verifies a rollout.
package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/projecthelena/flowtest/internal/payload"
)

type Result struct {
	Path       string    `json:"path"`
	Timestamp  time.Time `json:"timestamp"`
	IsUp       bool      `json:"isUp"`
	Latency    int64     `json:"latencyMs"` // milliseconds
	StatusCode int       `json:"statusCode"`
	Error      string    `json:"error,omitempty"`
}

// Endpoint is one route to check and how to validate its decoded body.
type Endpoint struct {
	Path     string
	Validate func(body []byte) error
}

// Endpoints covers every fixture route.
var Endpoints = []Endpoint{
	{Path: "/", Validate: validateGreeting},
	{Path: "/health", Validate: validateHealth},
	{Path: "/env", Validate: validateEnvironment},
}

type Checker struct {
	baseURL string
	client  *http.Client
}

func NewChecker(baseURL string, timeout time.Duration) *Checker {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     30 * time.Second,
	}
	return &Checker{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Check probes all endpoints concurrently. Results keep the order of
// endpoints. A failing endpoint is reported in its Result; the error is
// only set when ctx ends before the checks complete.
func (c *Checker) Check(ctx context.Context, endpoints []Endpoint) ([]Result, error) {
	results := make([]Result, len(endpoints))

	g, gctx := errgroup.WithContext(ctx)
	for i, ep := range endpoints {
		g.Go(func() error {
			results[i] = c.checkOne(gctx, ep)
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("check %s: %w", c.baseURL, err)
	}

	return results, nil
}

func (c *Checker) checkOne(ctx context.Context, ep Endpoint) Result {
	start := time.Now().UTC()
	res := Result{Path: ep.Path, Timestamp: start}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+ep.Path, nil)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	resp, err := c.client.Do(req)
	if err != nil {
		res.Latency = time.Since(start).Milliseconds()
		res.Error = err.Error()
		return res
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	res.Latency = time.Since(start).Milliseconds()
	res.StatusCode = resp.StatusCode
	if err != nil {
		res.Error = fmt.Sprintf("read body: %v", err)
		return res
	}

	if resp.StatusCode != http.StatusOK {
		res.Error = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		return res
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		res.Error = fmt.Sprintf("unexpected content type %q", ct)
		return res
	}
	if ep.Validate != nil {
		if err := ep.Validate(body); err != nil {
			res.Error = err.Error()
			return res
		}
	}

	res.IsUp = true
	return res
}

// AllUp reports whether every result passed.
func AllUp(results []Result) bool {
	for _, r := range results {
		if !r.IsUp {
			return false
		}
	}
	return true
}

func validateGreeting(body []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return fmt.Errorf("decode greeting: %w", err)
	}
	for _, key := range []string{"message", "timestamp", "environment", "port"} {
		if _, ok := fields[key]; !ok {
			return fmt.Errorf("greeting missing %q", key)
		}
	}

	var g payload.GreetingResponse
	if err := json.Unmarshal(body, &g); err != nil {
		return fmt.Errorf("decode greeting: %w", err)
	}
	if _, err := time.Parse(payload.TimestampLayout, g.Timestamp); err != nil {
		return fmt.Errorf("greeting timestamp %q: %w", g.Timestamp, err)
	}
	if g.Port < 1 || g.Port > 65535 {
		return fmt.Errorf("greeting port %d out of range", g.Port)
	}
	return nil
}

func validateHealth(body []byte) error {
	var h payload.HealthResponse
	if err := json.Unmarshal(body, &h); err != nil {
		return fmt.Errorf("decode health: %w", err)
	}
	if h.Status != payload.StatusHealthy {
		return fmt.Errorf("health status %q", h.Status)
	}
	return nil
}

func validateEnvironment(body []byte) error {
	var e payload.EnvironmentResponse
	if err := json.Unmarshal(body, &e); err != nil {
		return fmt.Errorf("decode env: %w", err)
	}
	if e.Environment == nil {
		return fmt.Errorf("env missing environment object")
	}
	if e.RuntimeVersion == "" || e.Platform == "" {
		return fmt.Errorf("env missing runtime details")
	}
	return nil
}
