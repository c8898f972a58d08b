// Package solver implements C4, the time stepper: it marches the value
// grid backward in time (forward in time-to-expiry u = tau-t) under the
// Black-Scholes operator, applying the Crank-Nicolson/Rannacher scheme
// and the Bermudan early-exercise projection at every step.
//
// What:
//
//   - StepBackward builds the constant tridiagonal operator coefficients
//     once (spec §4.4.4: they depend only on S_i, sigma, r, q), then for
//     each time step solves A*V^{n+1} = B*V^n + b via the Thomas
//     algorithm and projects the continuation value onto the payoff.
//   - The first two steps use theta=1 (fully implicit, Rannacher
//     smoothing) to damp the terminal-payoff kink; every later step uses
//     Crank-Nicolson (theta=0.5).
//
// Why:
//
//   - This is where the early-exercise optimality condition actually
//     gets enforced: Bermudan projection after each implicit solve is
//     the reference technique spec §4.4.2 names, cheap and robust across
//     all three regimes including DoubleBoundary's non-monotone frontier.
//
// Complexity: O(N_t * N_s) total (O(N_s) Thomas solve per step).
//
// Errors:
//
//   - NumericalBreakdown if a boundary evaluation or a Thomas solve fails
//     at any step (propagated from internal/boundary and internal/numeric).
package solver
