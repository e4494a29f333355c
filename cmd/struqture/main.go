package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "struqture",
	Short: "Inspect and convert symbolic quantum operator data",
	Long: `struqture parses operator product strings and converts serialized
operator containers between format versions.`,
}

func main() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(truncateCmd)

	rootCmd.PersistentFlags().Bool("no-color", false, "disable colorized output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
