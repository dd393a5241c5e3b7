package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/projecthelena/flowtest/internal/probe"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify a running flowtest instance",
		Long: `Probe /, /health and /env on a running instance and validate each body.

Exits non-zero if any endpoint is down, so it can gate a rollout.

Examples:
  flowtest check                                # http://localhost:8080
  flowtest check --url https://app.example.com
  flowtest check -o json`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}

	cmd.Flags().String("url", "http://localhost:8080", "Base URL of the instance")
	cmd.Flags().Duration("timeout", 5*time.Second, "Per-request timeout")
	cmd.Flags().StringP("output", "o", "text", "Output format: text, json")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	baseURL, _ := cmd.Flags().GetString("url")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	format, _ := cmd.Flags().GetString("output")

	if format != "text" && format != "json" {
		return fmt.Errorf("unknown output format %q", format)
	}

	results, err := probe.NewChecker(baseURL, timeout).Check(cmd.Context(), probe.Endpoints)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else {
		up := color.New(color.FgGreen).SprintFunc()
		down := color.New(color.FgRed).SprintFunc()
		for _, r := range results {
			if r.IsUp {
				printf(out, "%s  %-8s %d  %dms\n", up("UP  "), r.Path, r.StatusCode, r.Latency)
				continue
			}
			printf(out, "%s  %-8s %d  %s\n", down("DOWN"), r.Path, r.StatusCode, r.Error)
		}
	}

	if !probe.AllUp(results) {
		return fmt.Errorf("%s: one or more endpoints failed", baseURL)
	}
	return nil
}
