// Package main is the entry point for the decklight plugin binary.
//
// The panel host launches the binary itself, passing the websocket
// port and registration parameters on the command line:
//
//	decklight run -port 28196 -pluginUUID <id> -registerEvent <name> -info <blob>
//
// The validate and version subcommands exist for humans.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "decklight",
	Short: "CI workflow status on a hardware panel",
	Long: `Decklight shows GitHub Actions workflow-run status on a hardware
panel key: a color-coded glyph plus the last-updated time, refreshed on
a per-key cadence. A short press refreshes immediately; a long press
opens the run in the browser.

The host launches the plugin with "run" and its connection parameters;
keys are configured per-instance through the host's property inspector
(token, owner, repository, optional workflow, refresh interval).`,
	// No Run/RunE means this just shows help when called without subcommands
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this decklight binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("decklight %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
