// Package cli provides the fitcalc command-line interface to the calculators.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

// NewRootCmd builds the fitcalc command tree.
func NewRootCmd() *cobra.Command {
	var asJSON bool

	root := &cobra.Command{
		Use:   "fitcalc",
		Short: "Health calculators: BMI, daily calories and body fat",
		Long: `fitcalc runs the same BMI, calorie and U.S. Navy body fat calculators
the server exposes, without a database or network.

Examples:
  fitcalc bmi --height 175 --weight 70
  fitcalc calories --gender male --age 30 --height 180 --weight 80 --activity 1.55 --goal maintain
  fitcalc bodyfat --gender female --age 28 --height 165 --weight 60 --neck 32 --waist 70 --hip 95 --json`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	root.AddCommand(
		newBMICmd(&asJSON),
		newCaloriesCmd(&asJSON),
		newBodyFatCmd(&asJSON),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
