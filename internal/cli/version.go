package cli

import (
	"github.com/spf13/cobra"

	"github.com/projecthelena/flowtest/internal/payload"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			rt := payload.CurrentRuntime()
			out := cmd.OutOrStdout()
			printf(out, "flowtest %s\n", Version)
			printf(out, "  commit:   %s\n", GitCommit)
			printf(out, "  go:       %s\n", rt.Version)
			printf(out, "  platform: %s\n", rt.Platform)
		},
	}
}
