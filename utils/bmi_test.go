package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(180, 75)
	require.NoError(t, err)
	assert.InDelta(t, 23.15, bmi, 0.01)

	_, err = CalculateBMI(0, 75)
	assert.Error(t, err)
	_, err = CalculateBMI(180, -5)
	assert.Error(t, err)
	_, err = CalculateBMI(300, 75)
	assert.Error(t, err)
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(17.0))
	assert.Equal(t, "Normal weight", BMICategory(18.5))
	assert.Equal(t, "Normal weight", BMICategory(24.9))
	assert.Equal(t, "Overweight", BMICategory(25.0))
	assert.Equal(t, "Obese", BMICategory(30.0))
}
