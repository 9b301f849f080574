package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexbotov/turk/pkg/turk"
)

// Version is stamped at build time.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and API protocol information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "turk %s (API version %s)\n", Version, turk.APIVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
