// Package numeric holds the shared numerical primitives used by both the
// time stepper (C4) and the Greeks extractor (C5): the Thomas algorithm
// for tridiagonal systems, non-uniform-grid central-difference stencils,
// and local cubic interpolation across four bracketing nodes.
//
// What:
//
//   - Thomas solves A x = d for tridiagonal A in O(n).
//   - CentralFirstDerivative / CentralSecondDerivative evaluate ∂V/∂S and
//     ∂²V/∂S² at an interior node on a non-uniform grid via the standard
//     unequal-spacing three-point stencils.
//   - CubicInterp evaluates a cubic fit through four bracketing (x, y)
//     pairs at a query point, via Newton divided differences; LinearInterp
//     is a two-point alternative. The pricing pipeline does not call
//     LinearInterp: at the domain edges it shifts the four-node cubic
//     window inward instead.
//
// Why:
//
//   - C4 uses Thomas for the linear solve each step; C5 uses the stencils
//     for Delta/Gamma off the final slice, and the pipeline uses
//     CubicInterp to read the price at S0. C4's operator coefficients
//     (internal/solver) inline the same three-point stencil weights rather
//     than calling the functions here.
//
// Errors:
//
//   - Thomas returns NumericalBreakdown if a pivot magnitude falls below
//     machine epsilon, per spec §4.4.6.
package numeric
