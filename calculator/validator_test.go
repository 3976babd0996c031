package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBMIInput(t *testing.T) {
	in, err := NewBMIInput(180, 80)
	require.NoError(t, err)
	assert.Equal(t, BMIInput{Height: 180, Weight: 80}, in)

	_, err = NewBMIInput(0, 0)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 2)
}

func TestNewEnergyInput(t *testing.T) {
	_, err := NewEnergyInput(Male, 30, 180, 80, 1.2, GoalLose)
	require.NoError(t, err)

	_, err = NewEnergyInput("other", 30, 180, 80, 1.9, GoalGain)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, FieldError{
		Field:      "gender",
		Constraint: "oneof",
		Param:      "male female",
		Message:    "Gender must be one of: male, female",
	}, verr.Fields[0])
}

func TestValidate_MissingFieldsAreRequired(t *testing.T) {
	err := Validate(EnergyInput{Height: 180, Weight: 80})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 4)
	assert.Equal(t, FieldError{
		Field:      "gender",
		Constraint: "required",
		Message:    "Gender is required",
	}, verr.Fields[0])
	assert.Equal(t, "Age is required", verr.Fields[1].Message)
	assert.Equal(t, "Activity level is required", verr.Fields[2].Message)
	assert.Equal(t, "Goal is required", verr.Fields[3].Message)
}

func TestNewBodyFatInput_LeavesHipToEngine(t *testing.T) {
	in, err := NewBodyFatInput(Female, 30, 165, 60, 34, 75, nil)
	require.NoError(t, err)
	assert.Nil(t, in.Hip)
}

func TestValidate_NonFiniteNumbers(t *testing.T) {
	err := Validate(BMIInput{Height: math.NaN(), Weight: math.Inf(1)})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("height"))
	assert.True(t, verr.Has("weight"))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{
		{Field: "age", Message: "Age must be at least 15"},
		{Field: "neck", Message: "Neck cannot exceed 80cm"},
	}}
	assert.Equal(t, "validation failed: age: Age must be at least 15; neck: Neck cannot exceed 80cm", err.Error())
}
