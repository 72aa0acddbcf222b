package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arash/credly-sync/internal/config"
	"github.com/arash/credly-sync/internal/pipeline"
)

var (
	syncConfigPath string
	syncUser       string
	syncReadme     string
	syncVerbose    bool
)

func init() {
	// Config file flag (processed first)
	rootCmd.Flags().StringVar(&syncConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	rootCmd.Flags().StringVarP(&syncUser, "user", "u", "", "Credly user to sync (optional, defaults to CREDLY_USER env var or the built-in user)")
	rootCmd.Flags().StringVarP(&syncReadme, "readme", "r", "", "Path to the README to patch")
	rootCmd.Flags().BoolVarP(&syncVerbose, "verbose", "v", false, "Print a summary of fetched badge groups")
}

func runSyncCmd(cmd *cobra.Command, _ []string) error {
	// Step 1: Load config file if provided
	var cfg config.Config
	if syncConfigPath != "" {
		loadedCfg, err := config.LoadConfig(syncConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if syncVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", syncConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("user") {
		cfg.User = syncUser
	}
	if cmd.Flags().Changed("readme") {
		cfg.Readme = syncReadme
	}
	if syncVerbose {
		cfg.Verbose = true
	}

	// Step 3: Environment fallback, then built-in defaults
	if cfg.User == "" {
		cfg.User = os.Getenv("CREDLY_USER")
	}
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if err := cfg.Validate(); err != nil {
		return err
	}

	return pipeline.Run(cmd.Context(), pipeline.RunOptions{
		BadgesURL:   cfg.BadgesURL(),
		ReadmePath:  cfg.Readme,
		StartMarker: cfg.StartMarker,
		EndMarker:   cfg.EndMarker,
		IssuerOrder: cfg.IssuerOrder,
		Verbose:     cfg.Verbose,
	})
}
