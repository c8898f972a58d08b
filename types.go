package option

import "github.com/quantgrid/amerioption/internal/domain"

// OptionKind distinguishes calls from puts.
type OptionKind = domain.OptionKind

const (
	Call = domain.Call
	Put  = domain.Put
)

// RateRegime identifies which of the three free-boundary structures a
// given (r, q, kind) triple classifies into.
type RateRegime = domain.RateRegime

const (
	Standard               = domain.Standard
	SingleBoundaryNegative = domain.SingleBoundaryNegative
	DoubleBoundary         = domain.DoubleBoundary
)

// EngineConfig tunes the grid: time/spot step counts and the
// Tavella-Randall sinh-transform heuristics. Use DefaultEngineConfig and
// chain With... calls to override individual fields.
type EngineConfig = domain.EngineConfig

// DefaultEngineConfig returns the reference tuning (N_t=200, N_s=400,
// concentration=0.35, far-field multiplier=4).
func DefaultEngineConfig() EngineConfig {
	return domain.DefaultEngineConfig()
}

// PricingResult is the full output of PriceWithDetails: price, every
// Greek, the classified regime, the method label, and the early-exercise
// premium over the closed-form European price. Price returns the same
// shape with the Greeks left zero, since computing them requires
// additional solves a plain price lookup does not need.
type PricingResult = domain.PricingResult

const MethodFiniteDifference = domain.MethodFiniteDifference
