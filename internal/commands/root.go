package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balanza-dev/balanza/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "balanza",
		Short:   "Plain-file personal and small business finance tracker",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newAccountsCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newPurchaseCommand())
	rootCmd.AddCommand(newCreditCommand())

	return rootCmd
}
