// Package pipeline wires C1-C4 (classify, build grid, step backward,
// interpolate) into the single "solve at one parameter point" routine
// that both the public facade's base-case call and internal/greeks'
// perturbed re-solves share. Factoring it out here, instead of letting
// the facade and internal/greeks each call regime/grid/solver directly,
// keeps the perturbed Vega/Theta/Rho re-solves bit-identical in method to
// the base case they are differenced against.
//
// What:
//
//   - Solve classifies the regime, builds the grid, steps the PDE
//     backward, and reads the price off the final slice at S via the
//     four-node cubic interpolation spec §4.4.5 calls for.
//
// Why:
//
//   - A single shared entry point means a future change to the
//     discretisation (e.g. a different interpolation order) only has to
//     be made once to stay consistent across every Greek.
//
// Complexity: O(N_t * N_s) per call, dominated by internal/solver.
//
// Errors: propagates whatever internal/regime, internal/grid, or
// internal/solver return; adds no error cases of its own.
package pipeline
