package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for podassess
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "podassess",
		Short: "Pod delivery self-assessment tool",
		Long: `Podassess runs the pod delivery self-assessment: it loads the
questionnaire (from the shared store, a CSV file, or the embedded
dataset), scores a set of answers across the five delivery dimensions,
generates prioritized focus areas, and exports spreadsheet and document
reports.

A companion set of bank commands lets an operator pull, validate and
publish the question bank held in the shared configuration store.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", ".podassess/config.yaml", "path to the tool configuration file")
	cmd.PersistentFlags().String("log-level", "", "log verbosity (trace, debug, info, warn, error)")

	cmd.AddCommand(NewRunCommand())
	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewQuestionsCommand())
	cmd.AddCommand(NewBankCommand())
	cmd.AddCommand(NewSessionsCommand())

	return cmd
}
