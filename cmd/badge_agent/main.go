// Package main provides the entry point for the credly-sync badge agent.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "badge_agent",
	Short: "Sync the README badge section with Credly",
	Long: `badge_agent fetches a user's earned Credly badges, groups them by issuing
organization, and rewrites the marker-delimited badge section of the README.

Invoked with no arguments it uses the built-in defaults. Configuration can be
loaded from a JSON file using --config; command-line flags override config
file values.`,
	RunE:          runSyncCmd,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
