package regime

import (
	"github.com/quantgrid/amerioption/internal/domain"
	"github.com/quantgrid/amerioption/internal/validate"
)

// Classify maps (r, q, kind) to a domain.RateRegime per the decision
// table in spec §4.1. It is a total function over finite (r, q, kind):
// every quadrant of (r, q) resolves to exactly one regime, and ties at
// r == q resolve to SingleBoundaryNegative when either rate is negative,
// Standard otherwise — both fall out of the table below without special
// casing because the Put rule uses r <= q (not r < q).
func Classify(r, q float64, kind domain.OptionKind) (domain.RateRegime, error) {
	if err := validate.Kind("Classify", kind); err != nil {
		return domain.Standard, err
	}
	if err := validate.Rates("Classify", r, q); err != nil {
		return domain.Standard, err
	}

	if kind == domain.Put {
		switch {
		case q < r && r < 0:
			return domain.DoubleBoundary, nil
		case r < 0 && r <= q:
			return domain.SingleBoundaryNegative, nil
		default:
			return domain.Standard, nil
		}
	}

	// Call.
	switch {
	case 0 < r && r < q:
		return domain.DoubleBoundary, nil
	case r < 0:
		return domain.SingleBoundaryNegative, nil
	default:
		return domain.Standard, nil
	}
}
