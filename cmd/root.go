package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "graphcodec",
	Short: "GRPH graph codec tool",
	Long: `graphcodec converts undirected weighted graphs between a tab-separated
edge list and the compact GRPH binary format, and provides supporting
commands for fingerprinting, indexing, batch conversion, and archival.`,
	SilenceUsage: true,
}

// Execute executes the root command.
func Execute() error {
	return RootCmd.Execute()
}

// ExecuteWithContext executes the root command with the given context.
func ExecuteWithContext(ctx context.Context) error {
	RootCmd.SetContext(ctx)
	return RootCmd.Execute()
}
