// Package cli implements statementctl, the offline companion of the API
// server. It generates statements from ledger snapshot files.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/vickinc/eazybizy/internal/middleware"
)

// NewRootCmd builds the statementctl command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "statementctl",
		Short:         "Generate financial statements from ledger snapshots",
		Long:          "Builds IFRS-style profit and loss, balance sheet, cash flow and equity statements from a YAML ledger snapshot, and resolves reporting periods.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			cmd.SetContext(middleware.WithLogger(cmd.Context(), logger))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	root.AddCommand(newGenerateCmd(), newResolveCmd(), newTokenCmd())
	return root
}

// Execute runs statementctl with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
