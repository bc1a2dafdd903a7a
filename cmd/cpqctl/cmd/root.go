// Package cmd provides the CLI commands for cpqctl.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "cpqctl",
	Short: "Generate commercial offers for corrugated packaging",
	Long: `cpqctl runs the quote pipeline without the HTTP server: it reads a
quote form from a JSON file, validates it, resolves the three pricing
tiers and renders the offer document.

Examples:
  cpqctl render --input form.json --out offer.pdf
  cpqctl render --input form.json --html-only --out offer.html`,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("cpqctl version 0.1.0")
	},
}
