package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/notebare/notebare-facts/internal/config"
	"github.com/notebare/notebare-facts/internal/logging"
	"github.com/notebare/notebare-facts/internal/server"
	"github.com/spf13/cobra"
)

var (
	transport string
	httpAddr  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long:  `Starts the MCP server on stdio (default) or streamable HTTP.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&transport, "transport", "", "transport to serve on: stdio or http (overrides NOTEBARE_TRANSPORT)")
	serveCmd.Flags().StringVar(&httpAddr, "addr", "", "listen address for the http transport (overrides NOTEBARE_HTTP_ADDR)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if transport != "" {
		cfg.Transport = transport
	}
	if httpAddr != "" {
		cfg.HTTPAddr = httpAddr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(os.Stderr, cfg.Debug)
	logging.Install(logger)
	logger.Info().
		Str("version", server.Version).
		Str("api_url", cfg.APIURL).
		Msg("starting notebare-facts")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := server.New(cfg)
	if err := server.Serve(ctx, s, cfg, logger); err != nil {
		return fmt.Errorf("serving %s: %w", cfg.Transport, err)
	}

	if cfg.Transport == config.TransportHTTP {
		logger.Info().Msg("notebare-facts has been shut down gracefully")
	}
	return nil
}
