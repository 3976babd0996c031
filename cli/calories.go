package cli

import (
	"fmt"

	"aifit/calculator"

	"github.com/spf13/cobra"
)

func newCaloriesCmd(asJSON *bool) *cobra.Command {
	var (
		gender, goal             string
		age                      int
		height, weight, activity float64
	)

	cmd := &cobra.Command{
		Use:   "calories",
		Short: "Daily calorie target and macro split",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := calculator.ComputeEnergy(calculator.EnergyInput{
				Gender:        calculator.Gender(gender),
				Age:           age,
				Height:        height,
				Weight:        weight,
				ActivityLevel: activity,
				Goal:          calculator.Goal(goal),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if *asJSON {
				return printJSON(out, res)
			}
			fmt.Fprintf(out, "Calories: %d kcal/day\n", res.Calories)
			fmt.Fprintf(out, "Protein:  %d g\n", res.Macros.Protein)
			fmt.Fprintf(out, "Carbs:    %d g\n", res.Macros.Carbs)
			fmt.Fprintf(out, "Fats:     %d g\n", res.Macros.Fats)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&gender, "gender", "", "male or female")
	f.IntVar(&age, "age", 0, "age in years (15-100)")
	f.Float64Var(&height, "height", 0, "height in cm (50-300)")
	f.Float64Var(&weight, "weight", 0, "weight in kg (20-500)")
	f.Float64Var(&activity, "activity", 1.2, "activity multiplier (1.2-1.9)")
	f.StringVar(&goal, "goal", string(calculator.GoalMaintain), "lose, maintain or gain")
	for _, name := range []string{"gender", "age", "height", "weight"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
