package advanced

import (
	"math"

	"github.com/golang/geo/r2"
)

// Tolerance is only consulted by operations that say so. The plain predicates
// (IsParallelTo, IsPerpendicularTo) compare exactly, which is what callers with
// already-quantized coordinates want.
const Tolerance = 1e-6

func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Conversions to and from r2 for the vector algebra. We keep our own Point type
// so that the public API doesn't change if the vector library does.
func (p Point) vec() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

func pointFromVec(v r2.Point) Point {
	return Point{X: v.X, Y: v.Y}
}
