// Package validate centralizes the input-precondition checks named in
// spec §4.1, §4.2, and §6 so every entry point enforces them identically.
//
// What:
//
//   - Rates validates (r, q) are finite, for the classifier.
//   - PricingInputs validates the full precondition set for price/Greek
//     calls: positivity, finiteness, volatility and maturity ranges, and
//     the log-moneyness band.
//   - Kind validates an OptionKind is one of the two recognised values.
//
// Why:
//
//   - Spec §6 and §4.2 state overlapping but not identical bound sets
//     (the API allows tau=0, the grid builder requires tau in
//     [1/252, 30] once tau>0); collecting both here keeps the two call
//     sites (Engine facade, grid builder) from drifting apart.
//
// Errors:
//
//   - InvalidParameter for NaN/Inf/non-positive/unrecognised-kind inputs.
//   - OutOfBounds for well-formed values outside a validated range.
package validate
