package calculator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report failures under the wire names callers actually send.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type fieldLabel struct {
	name string
	unit string
}

var fieldLabels = map[string]fieldLabel{
	"height":        {"Height", "cm"},
	"weight":        {"Weight", "kg"},
	"age":           {"Age", ""},
	"neck":          {"Neck", "cm"},
	"waist":         {"Waist", "cm"},
	"activityLevel": {"Activity level", ""},
	"gender":        {"Gender", ""},
	"goal":          {"Goal", ""},
}

// Validate checks a calculator input record against its declared ranges and
// enumerations. It returns nil or a *ValidationError naming every failed field.
func Validate(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate %T: %w", in, err)
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:      fe.Field(),
			Constraint: fe.Tag(),
			Param:      fe.Param(),
			Message:    fieldMessage(fe.Field(), fe.Tag(), fe.Param()),
		})
	}
	return out
}

func fieldMessage(field, tag, param string) string {
	label, ok := fieldLabels[field]
	if !ok {
		label = fieldLabel{name: field}
	}

	switch tag {
	case "required":
		return label.name + " is required"
	case "gte":
		return fmt.Sprintf("%s must be at least %s%s", label.name, param, label.unit)
	case "lte":
		return fmt.Sprintf("%s cannot exceed %s%s", label.name, param, label.unit)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label.name, strings.Join(strings.Fields(param), ", "))
	default:
		return fmt.Sprintf("%s is invalid", label.name)
	}
}

// NewBMIInput builds a validated BMIInput.
func NewBMIInput(height, weight float64) (BMIInput, error) {
	in := BMIInput{Height: height, Weight: weight}
	if err := Validate(in); err != nil {
		return BMIInput{}, err
	}
	return in, nil
}

// NewEnergyInput builds a validated EnergyInput.
func NewEnergyInput(gender Gender, age int, height, weight, activityLevel float64, goal Goal) (EnergyInput, error) {
	in := EnergyInput{
		Gender:        gender,
		Age:           age,
		Height:        height,
		Weight:        weight,
		ActivityLevel: activityLevel,
		Goal:          goal,
	}
	if err := Validate(in); err != nil {
		return EnergyInput{}, err
	}
	return in, nil
}

// NewBodyFatInput builds a BodyFatInput that passed field validation. The
// female hip rule is a cross-field check and is left to ComputeBodyFat.
func NewBodyFatInput(gender Gender, age int, height, weight, neck, waist float64, hip *float64) (BodyFatInput, error) {
	in := BodyFatInput{
		Gender: gender,
		Age:    age,
		Height: height,
		Weight: weight,
		Neck:   neck,
		Waist:  waist,
		Hip:    hip,
	}
	if err := Validate(in); err != nil {
		return BodyFatInput{}, err
	}
	return in, nil
}
