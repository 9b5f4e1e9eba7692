package main

import (
	"fmt"

	"github.com/notebare/notebare-facts/internal/server"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "notebare-facts v%s\n", server.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
