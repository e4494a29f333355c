package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var truncateCmd = &cobra.Command{
	Use:   "truncate [flags] file.json",
	Short: "Drop container terms below a coefficient threshold",
	Long: `Truncate decodes a current-format JSON container, removes every term
whose numeric coefficient lies below the threshold (symbolic coefficients
always survive) and prints the filtered container.`,
	Args: cobra.ExactArgs(1),
	RunE: runTruncate,
}

func init() {
	truncateCmd.Flags().String("type", "", "container type, e.g. spin-hamiltonian (required)")
	truncateCmd.Flags().Float64("threshold", 1e-12, "coefficients at or below this magnitude are dropped")
	truncateCmd.Flags().StringP("output", "o", "", "write the filtered payload to a file instead of stdout")
	_ = truncateCmd.MarkFlagRequired("type")
}

func runTruncate(cmd *cobra.Command, args []string) error {
	typeName, err := cmd.Flags().GetString("type")
	if err != nil {
		return err
	}
	threshold, err := cmd.Flags().GetFloat64("threshold")
	if err != nil {
		return err
	}
	c, err := codecFor(typeName)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	filtered, err := c.truncate(data, threshold)
	if err != nil {
		return fmt.Errorf("truncating %s: %w", args[0], err)
	}
	out, err := json.MarshalIndent(filtered, "", "  ")
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("output"); path != "" {
		if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("wrote %s", path))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
