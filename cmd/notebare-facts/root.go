package main

import (
	"github.com/notebare/notebare-facts/internal/config"
	"github.com/spf13/cobra"
)

var (
	debug   bool
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "notebare-facts",
	Short: "MCP server for the notebare facts store",
	Long: `notebare-facts exposes the notebare facts API to MCP hosts.

Configuration (environment):
  NOTEBARE_API_TOKEN   personal access token (required)
  NOTEBARE_API_URL     API base URL (default https://api.notebare.com)
  NOTEBARE_TRANSPORT   stdio or http (default stdio)
  NOTEBARE_HTTP_ADDR   listen address for http (default :8080)
  NOTEBARE_DEBUG       enable debug logging

Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "notebare-facts": {
        "command": "notebare-facts",
        "env": { "NOTEBARE_API_TOKEN": "..." }
      }
    }
  }`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "load environment variables from a dotenv file")
}

// loadConfig resolves the startup configuration, applying the dotenv file
// and flag overrides on top of the environment.
func loadConfig() (config.Config, error) {
	if err := config.LoadDotenv(envFile); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if debug {
		cfg.Debug = true
	}
	return cfg, nil
}
