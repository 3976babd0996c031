package calculator

const (
	goalAdjustment = 500.0 // kcal/day

	proteinPerKg  = 2.0
	fatShare      = 0.25
	kcalPerGramPC = 4.0 // protein and carbs
	kcalPerGramF  = 9.0
)

// BMR is the Mifflin-St Jeor resting energy estimate in kcal/day.
func BMR(gender Gender, age int, height, weight float64) float64 {
	bmr := 10*weight + 6.25*height - 5*float64(age)
	if gender == Male {
		return bmr + 5
	}
	return bmr - 161
}

// TDEE scales the BMR by an activity multiplier.
func TDEE(bmr, activityLevel float64) float64 {
	return bmr * activityLevel
}

// GoalCalories shifts the TDEE by a fixed daily deficit or surplus. There is
// no lower floor.
func GoalCalories(tdee float64, goal Goal) float64 {
	switch goal {
	case GoalLose:
		return tdee - goalAdjustment
	case GoalGain:
		return tdee + goalAdjustment
	default:
		return tdee
	}
}

// ComputeEnergy returns the goal-adjusted calorie target and the macro split.
// Each figure is rounded on its own, so the macros may not add up to the
// calories exactly. Carbs are not clamped and go negative when protein and fat
// alone exceed the target.
func ComputeEnergy(in EnergyInput) (EnergyResult, error) {
	if err := Validate(in); err != nil {
		return EnergyResult{}, err
	}

	bmr := BMR(in.Gender, in.Age, in.Height, in.Weight)
	calories := GoalCalories(TDEE(bmr, in.ActivityLevel), in.Goal)

	protein := in.Weight * proteinPerKg
	fats := calories * fatShare / kcalPerGramF
	carbs := (calories - protein*kcalPerGramPC - fats*kcalPerGramF) / kcalPerGramPC

	return EnergyResult{
		Calories: roundInt(calories),
		Macros: Macros{
			Protein: roundInt(protein),
			Carbs:   roundInt(carbs),
			Fats:    roundInt(fats),
		},
	}, nil
}
