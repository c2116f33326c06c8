package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/truecash-dev/truecash/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "truecash",
		Short:   "Cash-flow classification and debt payoff projections",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Credentials live in .env when present; a missing file is fine.
			_ = godotenv.Load()
		},
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newCashCommand())
	rootCmd.AddCommand(newCardsCommand())
	rootCmd.AddCommand(newForecastCommand())
	rootCmd.AddCommand(newPayoffCommand())

	return rootCmd
}
