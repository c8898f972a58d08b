package engerr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInvalidParameter(t *testing.T) {
	err := NewInvalidParameter("Classify", "r", "NaN", "rate must be finite")

	assert.Equal(t, InvalidParameter, err.Kind)
	assert.Contains(t, err.Error(), "r")
	assert.Contains(t, err.Error(), "rate must be finite")
}

func TestNewOutOfBounds(t *testing.T) {
	err := NewOutOfBounds("BuildGrid", "sigma", 6.0, "must be in [0.001, 5.0]")

	assert.Equal(t, OutOfBounds, err.Kind)
	assert.Contains(t, err.Error(), "sigma")
	assert.Contains(t, err.Error(), "6")
}

func TestNewNumericalBreakdown(t *testing.T) {
	err := NewNumericalBreakdown("StepBackward", "thomas pivot below machine epsilon")

	assert.Equal(t, NumericalBreakdown, err.Kind)
	assert.Empty(t, err.Parameter)
	assert.Contains(t, err.Error(), "pivot")
}

func TestIs(t *testing.T) {
	var err error = NewOutOfBounds("BuildGrid", "tau", 40.0, "must be <= 30")

	assert.True(t, Is(err, OutOfBounds))
	assert.False(t, Is(err, InvalidParameter))
	assert.False(t, Is(nil, OutOfBounds))
}
