// Package main provides the talentdesk command: the recruitment HTTP API
// server and offline tools for the CV review queue.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "talentdesk",
		Short:         "Recruitment API server and CV review tools",
		Long:          "talentdesk imports CVs into a review queue, tracks candidates through the hiring pipeline, schedules interviews and manages job postings.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a JSON config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override the configured log level")

	cmd.AddCommand(
		newServeCmd(opts),
		newMigrateCmd(opts),
		newExtractCmd(),
		newImportCmd(opts),
		newReviewCmd(opts),
		newListCVsCmd(opts),
		newExportCmd(opts),
		newSyncCmd(opts),
		newValidateCmd(opts),
		newRestoreCmd(opts),
		newHashPasswordCmd(),
	)
	return cmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
