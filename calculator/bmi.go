package calculator

import "math"

// ComputeBMI expects height in centimeters and weight in kilograms.
// The category is taken from the unrounded value, so a BMI of 24.96 is shown
// as 25.0 but still classified as normal.
func ComputeBMI(in BMIInput) (BMIResult, error) {
	if err := Validate(in); err != nil {
		return BMIResult{}, err
	}

	h := in.Height / 100.0 // to meters
	bmi := in.Weight / (h * h)

	category := BMICategoryFor(bmi)
	return BMIResult{
		BMI:      roundTo(bmi, 1),
		Category: category,
		Message:  BMIMessage(category),
	}, nil
}

func BMICategoryFor(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25.0:
		return Normal
	case bmi < 30.0:
		return Overweight
	default:
		return Obese
	}
}

// roundTo rounds half toward positive infinity.
func roundTo(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Floor(v*p+0.5) / p
}

func roundInt(v float64) int {
	return int(math.Floor(v + 0.5))
}
