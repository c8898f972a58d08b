package numeric

import (
	"testing"

	"github.com/quantgrid/amerioption/internal/engerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThomas_SolvesKnownSystem(t *testing.T) {
	// [2 1 0; 1 3 1; 0 1 2] x = [3, 5, 3] -> x = [1, 1, 1]
	a := []float64{0, 1, 1}
	b := []float64{2, 3, 2}
	c := []float64{1, 1, 0}
	d := []float64{3, 5, 3}

	x, err := Thomas(a, b, c, d)
	require.NoError(t, err)
	require.Len(t, x, 3)
	assert.InDelta(t, 1.0, x[0], 1e-9)
	assert.InDelta(t, 1.0, x[1], 1e-9)
	assert.InDelta(t, 1.0, x[2], 1e-9)
}

func TestThomas_DoesNotMutateInputs(t *testing.T) {
	a := []float64{0, 1, 1}
	b := []float64{2, 3, 2}
	c := []float64{1, 1, 0}
	d := []float64{3, 5, 3}

	aCopy := append([]float64{}, a...)
	bCopy := append([]float64{}, b...)
	cCopy := append([]float64{}, c...)
	dCopy := append([]float64{}, d...)

	_, err := Thomas(a, b, c, d)
	require.NoError(t, err)

	assert.Equal(t, aCopy, a)
	assert.Equal(t, bCopy, b)
	assert.Equal(t, cCopy, c)
	assert.Equal(t, dCopy, d)
}

func TestThomas_RejectsUnderflowPivot(t *testing.T) {
	a := []float64{0, 1}
	b := []float64{0, 1}
	c := []float64{1, 0}
	d := []float64{1, 1}

	_, err := Thomas(a, b, c, d)
	require.Error(t, err)
	assert.True(t, engerr.Is(err, engerr.NumericalBreakdown))
}

func TestCentralFirstDerivative_UniformGridMatchesSymmetricDifference(t *testing.T) {
	// f(x) = x^2 at x=1,2,3 -> f'(2) should be 4.
	got := CentralFirstDerivative(1, 2, 3, 1, 4, 9)
	assert.InDelta(t, 4.0, got, 1e-9)
}

func TestCentralSecondDerivative_UniformGridMatchesSecondDifference(t *testing.T) {
	// f(x) = x^2 -> f''(x) == 2 everywhere.
	got := CentralSecondDerivative(1, 2, 3, 1, 4, 9)
	assert.InDelta(t, 2.0, got, 1e-9)
}

func TestCentralDerivatives_NonUniformGrid(t *testing.T) {
	// f(x) = x^2, non-uniform spacing around x0=2: xm=0.5, xp=3.
	got1 := CentralFirstDerivative(0.5, 2, 3, 0.25, 4, 9)
	assert.InDelta(t, 4.0, got1, 1e-9)

	got2 := CentralSecondDerivative(0.5, 2, 3, 0.25, 4, 9)
	assert.InDelta(t, 2.0, got2, 1e-9)
}

func TestCubicInterp_ExactOnCubicPolynomial(t *testing.T) {
	// f(x) = x^3 - 2x
	f := func(x float64) float64 { return x*x*x - 2*x }
	xs := [4]float64{1, 2.5, 4, 6}
	ys := [4]float64{f(1), f(2.5), f(4), f(6)}

	for _, q := range []float64{1.5, 3.0, 5.2} {
		got := CubicInterp(xs, ys, q)
		assert.InDelta(t, f(q), got, 1e-9)
	}
}

func TestLinearInterp(t *testing.T) {
	assert.InDelta(t, 15.0, LinearInterp(0, 10, 10, 20, 5), 1e-9)
}

func TestBracketIndex(t *testing.T) {
	xs := []float64{10, 20, 30, 40, 50}

	assert.Equal(t, 0, BracketIndex(xs, 5))   // below range
	assert.Equal(t, 0, BracketIndex(xs, 15))
	assert.Equal(t, 2, BracketIndex(xs, 35))
	assert.Equal(t, 3, BracketIndex(xs, 50))  // at last node
	assert.Equal(t, 3, BracketIndex(xs, 100)) // above range
}
