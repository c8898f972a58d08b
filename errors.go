package option

import "github.com/quantgrid/amerioption/internal/engerr"

// ErrorKind categorizes a failed Engine call. It is a closed set of
// three: InvalidParameter, OutOfBounds, NumericalBreakdown.
type ErrorKind = engerr.Kind

const (
	InvalidParameter   = engerr.InvalidParameter
	OutOfBounds        = engerr.OutOfBounds
	NumericalBreakdown = engerr.NumericalBreakdown
)

// EngineError is the concrete type behind every error an Engine method
// returns. It carries the failing operation, the offending parameter and
// value when there is one, and a diagnostic message; it is never wrapped
// around an external cause since the engine performs no I/O.
type EngineError = engerr.EngineError

// IsKind reports whether err is an *EngineError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return engerr.Is(err, kind)
}
