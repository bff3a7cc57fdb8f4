package advanced

import "github.com/pkg/errors"

// Errors returned by the verified constructors. They are wrapped with the
// offending vertices, so compare with errors.Cause.
var (
	ErrNotRightAngled = errors.New("no pair of edges is perpendicular")
	ErrDegenerate     = errors.New("vertices are collinear")
)

// Panic for states no exported constructor can produce.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}
