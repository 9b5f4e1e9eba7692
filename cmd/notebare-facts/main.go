// notebare-facts: MCP server for the notebare facts store.
//
// Exposes the facts API (https://api.notebare.com) to any MCP host as two
// read-only tools, search_facts and list_domains. Requires a personal
// access token in NOTEBARE_API_TOKEN.
//
// Usage:
//
//	notebare-facts            # Start MCP server (stdio transport)
//	notebare-facts serve      # Same, with transport flags
//	notebare-facts version    # Print the version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
