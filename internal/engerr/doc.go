// Package engerr defines the typed error taxonomy returned by every
// fallible operation in the pricing engine.
//
// What:
//
//   - EngineError carries a Kind (InvalidParameter, OutOfBounds,
//     NumericalBreakdown), the offending Op and Parameter, the offending
//     Value, and a short diagnostic Message.
//   - No error is ever recovered internally; every constructor here
//     produces a value the caller inspects and acts on.
//
// Why:
//
//   - The engine has no logging and no retry path (it is a pure,
//     synchronous function): the only way a caller learns what went
//     wrong is the returned error, so it must name the parameter and
//     carry a message rather than being a bare sentinel.
//
// Errors:
//
//   - InvalidParameter: NaN/Inf input, unrecognised option kind, or a
//     value that is structurally nonsensical (e.g. negative strike).
//   - OutOfBounds: a well-formed value outside a validated range.
//   - NumericalBreakdown: the solver produced a non-finite intermediate
//     or a tridiagonal pivot underflowed.
package engerr
