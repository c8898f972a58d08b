package validate

import (
	"math"

	"github.com/quantgrid/amerioption/internal/domain"
	"github.com/quantgrid/amerioption/internal/engerr"
)

// MinSigma and MaxSigma bound the volatility input (spec §4.2/§6).
const (
	MinSigma = 0.001
	MaxSigma = 5.0

	// MinTau is the shortest maturity the grid builder accepts once
	// tau > 0 (one trading day in years); tau = 0 bypasses the grid
	// entirely via the short-circuit in spec §4.5.
	MinTau = 1.0 / 252.0
	MaxTau = 30.0

	// MaxLogMoneyness bounds |ln(K/S)| once tau > 0.
	MaxLogMoneyness = 3.0
)

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Kind fails with InvalidParameter if kind is not Call or Put.
func Kind(op string, kind domain.OptionKind) error {
	if !kind.Valid() {
		return engerr.NewInvalidParameter(op, "kind", int(kind), "unrecognised option kind")
	}
	return nil
}

// Rates fails with InvalidParameter if r or q is NaN/Inf; used by the
// regime classifier, which is defined over all finite (r, q) pairs.
func Rates(op string, r, q float64) error {
	if !finite(r) {
		return engerr.NewInvalidParameter(op, "r", r, "must be finite")
	}
	if !finite(q) {
		return engerr.NewInvalidParameter(op, "q", q, "must be finite")
	}
	return nil
}

// PricingInputs enforces the full precondition set of spec §6 for a
// price/Greek call: S, K > 0; tau >= 0; sigma > 0 and in
// [MinSigma, MaxSigma]; tau in [0, MaxTau]; |ln(K/S)| <= MaxLogMoneyness
// when tau > 0; r, q finite; kind recognised.
func PricingInputs(op string, S, K, tau, r, q, sigma float64, kind domain.OptionKind) error {
	if err := Kind(op, kind); err != nil {
		return err
	}
	if err := Rates(op, r, q); err != nil {
		return err
	}
	if !finite(S) || S <= 0 {
		return engerr.NewInvalidParameter(op, "S", S, "must be a positive finite number")
	}
	if !finite(K) || K <= 0 {
		return engerr.NewInvalidParameter(op, "K", K, "must be a positive finite number")
	}
	if !finite(sigma) || sigma <= 0 {
		return engerr.NewInvalidParameter(op, "sigma", sigma, "must be a positive finite number")
	}
	if !finite(tau) || tau < 0 {
		return engerr.NewInvalidParameter(op, "tau", tau, "must be a non-negative finite number")
	}
	if sigma < MinSigma || sigma > MaxSigma {
		return engerr.NewOutOfBounds(op, "sigma", sigma, "must be in [0.001, 5.0]")
	}
	if tau > MaxTau {
		return engerr.NewOutOfBounds(op, "tau", tau, "must be <= 30")
	}
	if tau > 0 {
		if logMoneyness := math.Abs(math.Log(K / S)); logMoneyness > MaxLogMoneyness {
			return engerr.NewOutOfBounds(op, "ln(K/S)", logMoneyness, "must satisfy |ln(K/S)| <= 3")
		}
	}
	return nil
}

// GridInputs enforces spec §4.2's bounds for the grid builder, which is
// only invoked once tau > 0 (the tau=0 case never reaches it). In
// addition to the PricingInputs bounds, tau must be >= MinTau.
func GridInputs(op string, S, K, tau, sigma float64) error {
	if !finite(S) || S <= 0 {
		return engerr.NewInvalidParameter(op, "S", S, "must be a positive finite number")
	}
	if !finite(K) || K <= 0 {
		return engerr.NewInvalidParameter(op, "K", K, "must be a positive finite number")
	}
	if !finite(sigma) || sigma < MinSigma || sigma > MaxSigma {
		return engerr.NewOutOfBounds(op, "sigma", sigma, "must be in [0.001, 5.0]")
	}
	if !finite(tau) || tau < MinTau || tau > MaxTau {
		return engerr.NewOutOfBounds(op, "tau", tau, "must be in [1/252, 30]")
	}
	if logMoneyness := math.Abs(math.Log(K / S)); logMoneyness > MaxLogMoneyness {
		return engerr.NewOutOfBounds(op, "ln(K/S)", logMoneyness, "must satisfy |ln(K/S)| <= 3")
	}
	return nil
}
