package cli

import (
	"fmt"

	"aifit/calculator"

	"github.com/spf13/cobra"
)

func newBMICmd(asJSON *bool) *cobra.Command {
	var height, weight float64

	cmd := &cobra.Command{
		Use:   "bmi",
		Short: "Body mass index from height (cm) and weight (kg)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := calculator.ComputeBMI(calculator.BMIInput{Height: height, Weight: weight})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if *asJSON {
				return printJSON(out, res)
			}
			fmt.Fprintf(out, "BMI:      %.1f\n", res.BMI)
			fmt.Fprintf(out, "Category: %s\n", res.Category)
			fmt.Fprintln(out, res.Message)
			return nil
		},
	}
	cmd.Flags().Float64Var(&height, "height", 0, "height in cm (50-300)")
	cmd.Flags().Float64Var(&weight, "weight", 0, "weight in kg (20-500)")
	_ = cmd.MarkFlagRequired("height")
	_ = cmd.MarkFlagRequired("weight")
	return cmd
}
