// Package grid implements C2, the grid builder: a non-uniform spatial
// grid in underlying price (Tavella-Randall sinh transform, concentrated
// near the strike) and a uniform temporal grid.
//
// What:
//
//   - BuildGrid validates (S0, K, tau, sigma) against spec §4.2's bounds,
//     picks a spot range wide enough that the discounted far-field
//     boundary error is negligible, and returns a Grid whose SpotNodes
//     are strictly increasing and whose TimeGrid is uniform.
//   - The strike K is pinned onto the nearest node after construction so
//     the payoff kink always sits exactly on a grid point.
//
// Why:
//
//   - A uniform spatial grid would need thousands of nodes to resolve
//     the payoff kink near K to the same accuracy a few hundred
//     sinh-concentrated nodes achieve; this is what makes N_s ~= 400
//     workable at the latency target in spec §5.
//
// Complexity: O(N_s) to build, O(log N_s) to query via BracketIndex.
//
// Errors:
//
//   - OutOfBounds if S0, K, tau, or sigma falls outside spec §4.2's
//     validated ranges.
package grid
