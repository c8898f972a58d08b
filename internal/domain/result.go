package domain

// MethodFiniteDifference is the only Method value the engine ever
// produces; it exists as a named constant so callers never compare
// against a string literal.
const MethodFiniteDifference = "FiniteDifference"

// PricingResult is the value returned by a full price() call: the price,
// every Greek, the classified regime, the method used, and the early-
// exercise premium over the closed-form European price. It is pure data,
// constructed fresh per call.
type PricingResult struct {
	Price  float64
	Delta  float64
	Gamma  float64
	Vega   float64
	Theta  float64
	Rho    float64
	Regime RateRegime
	Method string

	// EarlyExercisePremium is Price minus the closed-form European
	// Black-Scholes price for the same parameters; always >= -ε_num.
	EarlyExercisePremium float64
}
