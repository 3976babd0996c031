package calculator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBMI(t *testing.T) {
	tests := []struct {
		name     string
		height   float64
		weight   float64
		bmi      float64
		category BMICategory
	}{
		{"underweight", 165, 50.3, 18.5, Underweight},
		{"lower bound of normal", 165, 50.37, 18.5, Normal},
		{"normal", 180, 80, 24.7, Normal},
		{"overweight", 175, 85, 27.8, Overweight},
		{"obese", 170, 100, 34.6, Obese},
		{"exactly 30 is obese", 100, 30, 30, Obese},
		{"exactly 25 is overweight", 200, 100, 25, Overweight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeBMI(BMIInput{Height: tt.height, Weight: tt.weight})
			require.NoError(t, err)
			assert.InDelta(t, tt.bmi, got.BMI, 1e-9)
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, BMIMessage(tt.category), got.Message)
		})
	}
}

func TestComputeBMI_ClassifiesOnUnroundedValue(t *testing.T) {
	// 80.87 / 1.8^2 = 24.9599..., displayed as 25.0
	got, err := ComputeBMI(BMIInput{Height: 180, Weight: 80.87})
	require.NoError(t, err)
	assert.Equal(t, 25.0, got.BMI)
	assert.Equal(t, Normal, got.Category)

	// 50.35 / 1.65^2 = 18.494..., displayed as 18.5
	got, err = ComputeBMI(BMIInput{Height: 165, Weight: 50.35})
	require.NoError(t, err)
	assert.Equal(t, 18.5, got.BMI)
	assert.Equal(t, Underweight, got.Category)
}

func TestComputeBMI_RejectsOutOfRange(t *testing.T) {
	_, err := ComputeBMI(BMIInput{Height: 49, Weight: 501})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "height", verr.Fields[0].Field)
	assert.Equal(t, "Height must be at least 50cm", verr.Fields[0].Message)
	assert.Equal(t, "weight", verr.Fields[1].Field)
	assert.Equal(t, "Weight cannot exceed 500kg", verr.Fields[1].Message)
}

func TestComputeBMI_BoundsAreInclusive(t *testing.T) {
	for _, in := range []BMIInput{
		{Height: 50, Weight: 20},
		{Height: 300, Weight: 500},
	} {
		_, err := ComputeBMI(in)
		assert.NoError(t, err, "%+v", in)
	}
}

func TestComputeBMI_Deterministic(t *testing.T) {
	in := BMIInput{Height: 172.4, Weight: 68.9}
	a, err := ComputeBMI(in)
	require.NoError(t, err)
	b, err := ComputeBMI(in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 18.5, roundTo(18.46, 1))
	assert.Equal(t, 18.4, roundTo(18.44, 1))
	assert.Equal(t, -2, roundInt(-2.5))
	assert.Equal(t, 3, roundInt(2.5))
}
