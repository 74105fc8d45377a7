// Package cli implements the deckmockd command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command. Running deckmockd without a
// subcommand starts the server, so `deckmockd 3000` works the way the
// original dev script did.
var rootCmd = &cobra.Command{
	Use:   "deckmockd [port]",
	Short: "deckmockd is a mock deck API server for deck editor development",
	Long: `deckmockd serves the deck editor page and simulates the deck storage API
(list, fetch, save, rename) against an in-memory store seeded with three
decks. Nothing is persisted; state lives for the life of the process.

It exists so the deck editor page can be developed without a real backend.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	initServeCmd()
	initVersionCmd()
}
