package cmd

import (
	"github.com/spf13/cobra"
)

// Root builds the command tree. A fresh tree per call keeps flag state out of tests.
func Root() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "do",
		Short:        "Development tools for fittrack",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(DevCmd())
	rootCmd.AddCommand(MigrateCmd())
	rootCmd.AddCommand(CatalogCmd())
	rootCmd.AddCommand(PreviewCmd())
	rootCmd.AddCommand(TokenCmd())

	return rootCmd
}
