package numeric

// BracketIndex returns the largest i such that xs[i] <= x, clamped to
// [0, len(xs)-2] so that [xs[i], xs[i+1]] always brackets x (or is the
// nearest pair, if x lies outside the range). xs must be sorted
// ascending.
func BracketIndex(xs []float64, x float64) int {
	lo, hi := 0, len(xs)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if xs[mid] <= x {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	if lo > len(xs)-2 {
		lo = len(xs) - 2
	}
	if lo < 0 {
		lo = 0
	}
	return lo
}

// LinearInterp evaluates the line through (x0,y0)-(x1,y1) at x. It is the
// two-point alternative to CubicInterp; the pricing pipeline itself always
// uses CubicInterp.
func LinearInterp(x0, x1, y0, y1, x float64) float64 {
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}

// CubicInterp evaluates, at x, the cubic polynomial passing through the
// four points (xs[i], ys[i]) via Newton divided differences. xs need not
// be uniformly spaced; it is the "local cubic" interpolation spec §4.2
// and §4.4.5 call for when reading the price off the grid at S0.
func CubicInterp(xs, ys [4]float64, x float64) float64 {
	// First-order divided differences.
	d1 := [3]float64{
		(ys[1] - ys[0]) / (xs[1] - xs[0]),
		(ys[2] - ys[1]) / (xs[2] - xs[1]),
		(ys[3] - ys[2]) / (xs[3] - xs[2]),
	}
	// Second-order.
	d2 := [2]float64{
		(d1[1] - d1[0]) / (xs[2] - xs[0]),
		(d1[2] - d1[1]) / (xs[3] - xs[1]),
	}
	// Third-order.
	d3 := (d2[1] - d2[0]) / (xs[3] - xs[0])

	result := ys[0]
	result += d1[0] * (x - xs[0])
	result += d2[0] * (x - xs[0]) * (x - xs[1])
	result += d3 * (x - xs[0]) * (x - xs[1]) * (x - xs[2])
	return result
}
