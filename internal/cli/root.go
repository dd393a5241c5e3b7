package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information set at build time
	Version   = "dev"
	GitCommit = "unknown"
)

// NewRootCmd builds the flowtest command tree. Running it without a
// subcommand serves, so the binary can be a container entrypoint as-is.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "flowtest",
		Short: "Sample deployable HTTP app for pipeline testing",
		Long: `flowtest - a disposable HTTP fixture

Endpoints:
  GET /        greeting with timestamp, environment and port
  GET /health  liveness probe
  GET /env     full process environment (includes secrets!)

Commands:
  flowtest serve    run the server (default)
  flowtest check    verify a running instance

Configuration comes from the environment (PORT, FLASK_ENV, ...) and an
optional .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serve := newServeCmd()
	root.Flags().AddFlagSet(serve.Flags())
	root.RunE = serve.RunE

	root.AddCommand(serve, newCheckCmd(), newVersionCmd())
	return root
}

func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
