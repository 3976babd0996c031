package cli

import (
	"fmt"

	"aifit/calculator"

	"github.com/spf13/cobra"
)

func newBodyFatCmd(asJSON *bool) *cobra.Command {
	var (
		gender string
		age    int

		height, weight, neck, waist, hip float64
	)

	cmd := &cobra.Command{
		Use:   "bodyfat",
		Short: "U.S. Navy body fat estimate",
		Long: `Estimate body fat percentage with the U.S. Navy circumference method.
Females must pass --hip.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := calculator.BodyFatInput{
				Gender: calculator.Gender(gender),
				Age:    age,
				Height: height,
				Weight: weight,
				Neck:   neck,
				Waist:  waist,
			}
			if cmd.Flags().Changed("hip") {
				in.Hip = &hip
			}

			res, err := calculator.ComputeBodyFat(in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if *asJSON {
				return printJSON(out, res)
			}
			fmt.Fprintf(out, "Body fat: %.1f%%\n", res.BodyFat)
			fmt.Fprintf(out, "Category: %s\n", res.Category)
			if res.Clamped {
				fmt.Fprintln(out, "(estimate clamped to the supported range)")
			}
			fmt.Fprintln(out, res.Message)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&gender, "gender", "", "male or female")
	f.IntVar(&age, "age", 0, "age in years (15-100)")
	f.Float64Var(&height, "height", 0, "height in cm (50-300)")
	f.Float64Var(&weight, "weight", 0, "weight in kg (20-500)")
	f.Float64Var(&neck, "neck", 0, "neck circumference in cm (20-80)")
	f.Float64Var(&waist, "waist", 0, "waist circumference in cm (40-200)")
	f.Float64Var(&hip, "hip", 0, "hip circumference in cm (required for females)")
	for _, name := range []string{"gender", "age", "height", "weight", "neck", "waist"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
