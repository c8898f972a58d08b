package boundary

import (
	"math"

	"github.com/quantgrid/amerioption/internal/domain"
	"github.com/quantgrid/amerioption/internal/engerr"
)

// TerminalPayoff evaluates the terminal condition max(S-K,0) (call) or
// max(K-S,0) (put) at every node of spotNodes.
func TerminalPayoff(kind domain.OptionKind, spotNodes []float64, K float64) []float64 {
	payoff := make([]float64, len(spotNodes))
	for i, s := range spotNodes {
		payoff[i] = kind.Intrinsic(s, K)
	}
	return payoff
}

// Values evaluates the Dirichlet boundary pair (low, high) at S_min and
// S_max for time-to-expiry u, per spec §4.3's regime table. Every regime
// clamps its boundary to the intrinsic payoff at that node, so the
// discounted analytical formula can never undershoot an exercise value
// that is already optimal at the domain edge; for regimes where the
// analytical value already dominates intrinsic, the clamp is a no-op.
func Values(kind domain.OptionKind, regimeKind domain.RateRegime, u, K, sMin, sMax, r, q float64) (low, high float64, err error) {
	const op = "boundary.Values"

	switch kind {
	case domain.Call:
		low = 0
		if regimeKind == domain.DoubleBoundary {
			high = sMax - K
		} else {
			high = sMax*math.Exp(-q*u) - K*math.Exp(-r*u)
		}
	case domain.Put:
		high = 0
		if regimeKind == domain.DoubleBoundary {
			low = K - sMin
		} else {
			low = K*math.Exp(-r*u) - sMin*math.Exp(-q*u)
		}
	default:
		return 0, 0, engerr.NewInvalidParameter(op, "kind", int(kind), "unrecognised option kind")
	}

	low = math.Max(low, kind.Intrinsic(sMin, K))
	high = math.Max(high, kind.Intrinsic(sMax, K))

	if math.IsNaN(low) || math.IsInf(low, 0) || math.IsNaN(high) || math.IsInf(high, 0) {
		return 0, 0, engerr.NewNumericalBreakdown(op, "boundary evaluation produced a non-finite value")
	}
	return low, high, nil
}
