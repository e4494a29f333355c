package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] file.json",
	Short: "Convert a struqture 1.x JSON payload to the current format",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().String("type", "", "container type, e.g. spin-hamiltonian (required)")
	convertCmd.Flags().StringP("output", "o", "", "write the converted payload to a file instead of stdout")
	_ = convertCmd.MarkFlagRequired("type")
}

func runConvert(cmd *cobra.Command, args []string) error {
	typeName, err := cmd.Flags().GetString("type")
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
	converted, err := c.convert(data)
	if err != nil {
		return fmt.Errorf("converting %s: %w", args[0], err)
	}
	out, err := json.MarshalIndent(converted, "", "  ")
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
