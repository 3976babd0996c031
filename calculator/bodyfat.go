package calculator

import "math"

const (
	MinBodyFat = 3.0
	MaxBodyFat = 45.0
)

type bodyFatThresholds struct {
	essential, athletic, fitness float64
}

var (
	maleThresholds   = bodyFatThresholds{essential: 6, athletic: 14, fitness: 25}
	femaleThresholds = bodyFatThresholds{essential: 16, athletic: 24, fitness: 32}
)

// ComputeBodyFat estimates body fat with the U.S. Navy circumference method.
//
// The category is decided on the raw formula value; the reported percentage
// is clamped to [MinBodyFat, MaxBodyFat] and rounded to one decimal.
func ComputeBodyFat(in BodyFatInput) (BodyFatResult, error) {
	if err := Validate(in); err != nil {
		return BodyFatResult{}, err
	}

	raw, err := navyBodyFat(in)
	if err != nil {
		return BodyFatResult{}, &DomainError{Op: "bodyfat", Err: err}
	}

	category := BodyFatCategoryFor(in.Gender, raw)
	clamped := math.Max(MinBodyFat, math.Min(MaxBodyFat, raw))

	return BodyFatResult{
		BodyFat:  roundTo(clamped, 1),
		Category: category,
		Message:  BodyFatMessage(category),
		Clamped:  clamped != raw,
	}, nil
}

func navyBodyFat(in BodyFatInput) (float64, error) {
	var arg, denom float64
	switch in.Gender {
	case Female:
		if in.Hip == nil || *in.Hip <= 0 {
			return 0, ErrHipRequired
		}
		arg = in.Waist + *in.Hip - in.Neck
		if arg <= 0 {
			return 0, ErrInvalidMeasurement
		}
		denom = 1.29579 - 0.35004*math.Log10(arg) + 0.22100*math.Log10(in.Height)
	default:
		arg = in.Waist - in.Neck
		if arg <= 0 {
			return 0, ErrInvalidMeasurement
		}
		denom = 1.0324 - 0.19077*math.Log10(arg) + 0.15456*math.Log10(in.Height)
	}

	if denom <= 0 {
		return 0, ErrInvalidMeasurement
	}
	bf := 495/denom - 450
	if math.IsNaN(bf) || math.IsInf(bf, 0) {
		return 0, ErrInvalidMeasurement
	}
	return bf, nil
}

func BodyFatCategoryFor(gender Gender, bf float64) BodyFatCategory {
	t := maleThresholds
	if gender == Female {
		t = femaleThresholds
	}

	switch {
	case bf < t.essential:
		return Essential
	case bf < t.athletic:
		return Athletic
	case bf < t.fitness:
		return Fitness
	default:
		return Average
	}
}
