// Package greeks implements C5, the Greeks extractor: Delta and Gamma
// read directly off the base solve's value slice by central differencing,
// and Vega/Theta/Rho by perturbed re-solves of the full pipeline.
//
// What:
//
//   - Delta/Gamma: three-point non-uniform central difference of the
//     base solve's final value slice around the grid node nearest S0
//     (spec §4.4.5/§4.5 — no extra solve needed, they come off the grid
//     already computed for Price).
//   - Vega: centered difference of two re-solves at sigma +/- 0.01.
//   - Theta: one-sided difference over one calendar day, (V(tau-h)-V(tau))/h,
//     h = 1/365, from a single re-solve at the shortened maturity; this is
//     dV/dt in calendar time (equivalently -dV/du).
//   - Rho: centered difference of two re-solves at r +/- 1e-4.
//
// Why:
//
//   - The five perturbed re-solves are mutually independent pure
//     computations (spec §4.5), so Extract fans them out with
//     errgroup.Group instead of running them one after another.
//
// Complexity: O(N_t * N_s) per perturbed re-solve, 5 re-solves total
// (2 for Vega, 2 for Rho, 1 for Theta), run concurrently.
//
// Errors: propagates whatever internal/pipeline returns for any
// perturbed re-solve; a single failing re-solve fails the whole Extract
// call (no partial Greeks are ever returned).
package greeks
