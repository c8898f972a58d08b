// Package regime implements C1, the regime classifier: a total, pure
// function mapping (r, q, kind) to one of three free-boundary structures.
//
// What:
//
//   - Classify decides between domain.Standard, domain.SingleBoundaryNegative,
//     and domain.DoubleBoundary by the decision table in spec §4.1.
//
// Why:
//
//   - Downstream components (boundary, solver) need to know which
//     analytical boundary formula applies and whether both ends of the
//     spatial domain carry an intrinsic Dirichlet condition; classifying
//     once up front keeps that branching out of the hot loop.
//
// Complexity: O(1).
//
// Errors:
//
//   - InvalidParameter if r or q is NaN/Inf, or kind is unrecognised.
package regime
