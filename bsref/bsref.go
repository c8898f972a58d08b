// Package bsref exposes the engine's closed-form European Black-Scholes
// reference implementation to external callers and test suites that want
// to compare the American finite-difference price against its European
// floor directly, without constructing an Engine (spec.md §6 names this
// reference as a testing collaborator in its own right).
package bsref

import (
	"github.com/quantgrid/amerioption/internal/blackscholes"
	"github.com/quantgrid/amerioption/internal/domain"
)

// Greeks bundles the five European sensitivities.
type Greeks = blackscholes.Greeks

// Price evaluates the dividend-adjusted (Garman-Kohlhagen) European
// Black-Scholes price. At tau=0 it returns the intrinsic payoff.
func Price(S, K, tau, r, q, sigma float64, kind domain.OptionKind) (float64, error) {
	return blackscholes.Price(S, K, tau, r, q, sigma, kind)
}

// EvaluateGreeks evaluates the full European Greeks set in one pass.
func EvaluateGreeks(S, K, tau, r, q, sigma float64, kind domain.OptionKind) (Greeks, error) {
	return blackscholes.EvaluateGreeks(S, K, tau, r, q, sigma, kind)
}
