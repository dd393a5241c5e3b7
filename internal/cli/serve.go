package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/projecthelena/flowtest/internal/api"
	"github.com/projecthelena/flowtest/internal/config"
	"github.com/projecthelena/flowtest/internal/logging"
	"github.com/projecthelena/flowtest/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server on HOST:PORT (default 0.0.0.0:8080).

Examples:
  flowtest serve                  # PORT from the environment, else 8080
  flowtest serve --port 9999      # override PORT
  flowtest serve --port 0         # any free port (logged at startup)`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().Int("port", 0, "TCP port to bind (overrides PORT, 0 picks a free port)")
	cmd.Flags().String("host", "", "Address to bind (overrides HOST)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	logger := logging.New("flowtest")
	logger.Printf("Environment: %s", cfg.Environment)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	if err := srv.Listen(); err != nil {
		return err
	}
	cfg.Port = srv.Port()

	router := api.NewRouter(ctx, cfg, api.NewHandler(cfg), logging.New("http"))
	return srv.Serve(ctx, router)
}

// applyFlags lets explicit flags win over the environment.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("port") {
		port, _ := cmd.Flags().GetInt("port")
		if port < 0 || port > 65535 {
			return fmt.Errorf("invalid --port %d", port)
		}
		cfg.Port = port
	}
	if cmd.Flags().Changed("host") {
		cfg.Host, _ = cmd.Flags().GetString("host")
	}
	return nil
}
