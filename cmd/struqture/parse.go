package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/struqture/bosons"
	"github.com/katalvlaran/struqture/fermions"
	"github.com/katalvlaran/struqture/mixed"
	"github.com/katalvlaran/struqture/spins"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] PRODUCT",
	Short: "Parse an operator product string",
	Long: `Parse canonicalizes an operator product string and prints the stored
form, its Hermitian conjugate and the conjugation sign.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("species", "spin", "product species (spin|decoherence|boson|fermion|mixed)")
}

// parseProduct canonicalizes the input for one species and reports the
// stored string, its conjugate and the conjugation sign.
func parseProduct(species, input string) (canonical, conjugate string, sign float64, err error) {
	switch species {
	case "spin":
		p, perr := spins.ParsePauliProduct(input)
		if perr != nil {
			return "", "", 0, perr
		}
		conj, sg := p.HermitianConjugate()
		return p.String(), conj.String(), sg, nil
	case "decoherence":
		p, perr := spins.ParseDecoherenceProduct(input)
		if perr != nil {
			return "", "", 0, perr
		}
		conj, sg := p.HermitianConjugate()
		return p.String(), conj.String(), sg, nil
	case "boson":
		p, perr := bosons.ParseBosonProduct(input)
		if perr != nil {
			return "", "", 0, perr
		}
		conj, sg := p.HermitianConjugate()
		return p.String(), conj.String(), sg, nil
	case "fermion":
		p, perr := fermions.ParseFermionProduct(input)
		if perr != nil {
			return "", "", 0, perr
		}
		conj, sg := p.HermitianConjugate()
		return p.String(), conj.String(), sg, nil
	case "mixed":
		p, perr := mixed.ParseMixedProduct(input)
		if perr != nil {
			return "", "", 0, perr
		}
		conj, sg := p.HermitianConjugate()
		return p.String(), conj.String(), sg, nil
	default:
		return "", "", 0, fmt.Errorf("unknown species: %s", species)
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	species, err := cmd.Flags().GetString("species")
	if err != nil {
		return err
	}
	if noColor, _ := cmd.Root().PersistentFlags().GetBool("no-color"); noColor {
		color.NoColor = true
	}

	canonical, conjugate, sign, err := parseProduct(species, args[0])
	if err != nil {
		return err
	}

	label := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintln(cmd.OutOrStdout(), label("canonical:"), canonical)
	fmt.Fprintln(cmd.OutOrStdout(), label("conjugate:"), conjugate)
	fmt.Fprintln(cmd.OutOrStdout(), label("sign:     "), strconv.FormatFloat(sign, 'g', -1, 64))
	return nil
}
