// Package blackscholes is the closed-form European reference pricer
// named in spec §6: "a closed-form European Black-Scholes price/greeks
// routine is exposed alongside the American engine; this is used by the
// test suite to assert the American >= European invariant and to
// spot-check convergence under vanishing early-exercise premium."
//
// What:
//
//   - Price and EvaluateGreeks evaluate the dividend-adjusted (Garman-Kohlhagen)
//     Black-Scholes formulas for a European call or put.
//
// Why:
//
//   - Grounded on the retrieved johnayoung/go-crypto-quant-toolkit
//     Black-Scholes implementation (Abramowitz-Stegun cumulative-normal
//     approximation, same d1/d2 structure), generalized here to carry a
//     continuous dividend yield q the reference file did not support —
//     the American engine always prices a dividend-paying underlying, so
//     its European baseline must too.
//
// Errors:
//
//   - InvalidParameter for non-positive or non-finite S/K/sigma, or an
//     unrecognised kind. r, q and tau are not checked here.
package blackscholes
