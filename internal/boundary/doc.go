// Package boundary implements C3: the terminal payoff and the
// regime-aware spatial Dirichlet boundary conditions applied at every
// time slice of the backward sweep.
//
// What:
//
//   - TerminalPayoff evaluates max(S-K,0) or max(K-S,0) across every spot
//     node at t=tau.
//   - Values evaluates the boundary pair (V at S_min, V at S_max) at a
//     given time-to-expiry u, per the regime-specific table in spec §4.3.
//
// Why:
//
//   - DoubleBoundary and SingleBoundaryNegative regimes can let a naive
//     discounted analytical boundary undershoot the exercise payoff; this
//     is the regime-aware clamp spec §4.3 calls "a key correctness point
//     for negative-rate regimes", so it lives in one place rather than
//     being re-derived inside the stepper.
//
// Errors:
//
//   - NumericalBreakdown if a discount-factor evaluation overflows to a
//     non-finite value.
package boundary
