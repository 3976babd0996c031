// Package calculator holds the health calculators: BMI, daily energy needs
// with a macro split, and U.S. Navy body-fat estimation.
//
// Every function here is pure. Callers hand in a typed record and get back a
// result or an error; nothing is stored or logged.
package calculator

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// BMIInput expects height in centimeters and weight in kilograms.
type BMIInput struct {
	Height float64 `json:"height" validate:"required,gte=50,lte=300"`
	Weight float64 `json:"weight" validate:"required,gte=20,lte=500"`
}

type BMICategory string

const (
	Underweight BMICategory = "underweight"
	Normal      BMICategory = "normal"
	Overweight  BMICategory = "overweight"
	Obese       BMICategory = "obese"
)

type BMIResult struct {
	BMI      float64     `json:"bmi"`
	Category BMICategory `json:"category"`
	Message  string      `json:"message"`
}

type EnergyInput struct {
	Gender        Gender  `json:"gender" validate:"required,oneof=male female"`
	Age           int     `json:"age" validate:"required,gte=15,lte=100"`
	Height        float64 `json:"height" validate:"required,gte=50,lte=300"`
	Weight        float64 `json:"weight" validate:"required,gte=20,lte=500"`
	ActivityLevel float64 `json:"activityLevel" validate:"required,gte=1.2,lte=1.9"`
	Goal          Goal    `json:"goal" validate:"required,oneof=lose maintain gain"`
}

// Macros are grams per day.
type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

type EnergyResult struct {
	Calories int    `json:"calories"`
	Macros   Macros `json:"macros"`
}

// BodyFatInput takes circumferences in centimeters. Hip is only read for
// females, where it is mandatory.
type BodyFatInput struct {
	Gender Gender   `json:"gender" validate:"required,oneof=male female"`
	Age    int      `json:"age" validate:"required,gte=15,lte=100"`
	Height float64  `json:"height" validate:"required,gte=50,lte=300"`
	Weight float64  `json:"weight" validate:"required,gte=20,lte=500"`
	Neck   float64  `json:"neck" validate:"required,gte=20,lte=80"`
	Waist  float64  `json:"waist" validate:"required,gte=40,lte=200"`
	Hip    *float64 `json:"hip,omitempty"`
}

type BodyFatCategory string

const (
	Essential BodyFatCategory = "essential"
	Athletic  BodyFatCategory = "athletic"
	Fitness   BodyFatCategory = "fitness"
	Average   BodyFatCategory = "average"
)

// BodyFatResult reports the clamped, rounded percentage. Clamped is set when
// the raw formula value fell outside [MinBodyFat, MaxBodyFat].
type BodyFatResult struct {
	BodyFat  float64         `json:"bodyFat"`
	Category BodyFatCategory `json:"category"`
	Message  string          `json:"message"`
	Clamped  bool            `json:"clamped"`
}
