package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"decklight/internal/config"
)

// validateCmd validates a config file without connecting to a host.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file",
	Long: `Validate a decklight configuration file without starting the plugin.

This command parses the YAML and validates all fields. Per-key settings
live in the host's property inspector and are not covered here.

Exit codes:
  0 - Config is valid
  1 - Config is invalid (error details printed to stderr)

Example:
  decklight validate -c decklight.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("config", "c", "", "path to config file (required)")
	_ = validateCmd.MarkFlagRequired("config")
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logFile := cfg.LogFile
	if logFile == "" {
		logFile = "(temp dir)"
	}

	fmt.Printf("Config is valid!\n")
	fmt.Printf("  API base URL:    %s\n", cfg.APIBaseURL)
	fmt.Printf("  Request timeout: %s\n", cfg.RequestTimeout.Duration())
	fmt.Printf("  Log level:       %s\n", cfg.LogLevel)
	fmt.Printf("  Log file:        %s\n", logFile)

	return nil
}
