package numeric

import (
	"math"

	"github.com/quantgrid/amerioption/internal/engerr"
)

// epsilon is the machine-epsilon pivot floor spec §4.4.6 requires the
// Thomas algorithm to enforce.
const epsilon = 2.220446049250313e-16

// Thomas solves the tridiagonal system A*x = d in O(n), where A has
// sub-diagonal a (a[0] is unused), diagonal b, and super-diagonal c
// (c[n-1] is unused). It does not mutate its inputs; the caller's
// coefficient slices remain reusable across time steps.
//
// Fails with NumericalBreakdown if any forward-sweep pivot has magnitude
// below machine epsilon, or if any coefficient or the result is
// non-finite.
func Thomas(a, b, c, d []float64) ([]float64, error) {
	n := len(b)
	if n == 0 {
		return nil, engerr.NewNumericalBreakdown("Thomas", "empty system")
	}

	cPrime := make([]float64, n)
	dPrime := make([]float64, n)

	pivot := b[0]
	if math.Abs(pivot) < epsilon {
		return nil, engerr.NewNumericalBreakdown("Thomas", "pivot below machine epsilon at row 0")
	}
	cPrime[0] = c[0] / pivot
	dPrime[0] = d[0] / pivot

	for i := 1; i < n; i++ {
		pivot = b[i] - a[i]*cPrime[i-1]
		if math.Abs(pivot) < epsilon || math.IsNaN(pivot) || math.IsInf(pivot, 0) {
			return nil, engerr.NewNumericalBreakdown("Thomas", "pivot below machine epsilon or non-finite")
		}
		if i < n-1 {
			cPrime[i] = c[i] / pivot
		}
		dPrime[i] = (d[i] - a[i]*dPrime[i-1]) / pivot
	}

	x := make([]float64, n)
	x[n-1] = dPrime[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dPrime[i] - cPrime[i]*x[i+1]
	}

	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, engerr.NewNumericalBreakdown("Thomas", "non-finite solution component")
		}
	}

	return x, nil
}
