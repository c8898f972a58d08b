package domain

// RateRegime is a tagged variant over the three free-boundary structures
// the solver must handle, selected by (r, q, kind). See internal/regime
// for the classifier; this file only carries the type and its labels.
type RateRegime int

const (
	// Standard is the ordinary single-exercise-frontier problem.
	Standard RateRegime = iota

	// SingleBoundaryNegative: one frontier persists under negative rates.
	SingleBoundaryNegative

	// DoubleBoundary: two frontiers bracket a continuation region.
	DoubleBoundary
)

func (r RateRegime) String() string {
	switch r {
	case Standard:
		return "Standard"
	case SingleBoundaryNegative:
		return "SingleBoundaryNegative"
	case DoubleBoundary:
		return "DoubleBoundary"
	default:
		return "Unknown"
	}
}
