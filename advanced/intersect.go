package advanced

import (
	"math"

	"github.com/golang/geo/r2"
)

// Find the point where two segments meet.
//
// Segments are closed: a shared endpoint or a T-junction counts as an
// intersection. The test is against the segments themselves, not the infinite
// lines through them, so lines that cross outside either segment report false.
//
// Parallel segments have no single crossing point, so they only intersect when
// they lie on the same line and meet end to end. Collinear segments that
// overlap along a stretch report false. Zero length segments have no direction
// and never intersect anything.
func (s Segment) Intersection(o Segment) (Point, bool) {
	d := s.direction()
	e := o.direction()
	denom := d.Cross(e)
	if denom == 0 {
		return s.endToEnd(o)
	}

	// Solve s.Start + t*d = o.Start + u*e. Crossing both sides with e
	// eliminates u, and crossing with d eliminates t.
	w := o.Start.vec().Sub(s.Start.vec())
	t := w.Cross(e) / denom
	u := w.Cross(d) / denom
	tolT := parameterTolerance(d)
	tolU := parameterTolerance(e)
	if !inClosedUnitInterval(t, tolT) || !inClosedUnitInterval(u, tolU) {
		return Point{}, false
	}

	// If we landed on an endpoint, hand back the endpoint itself rather than
	// something a few ulps away from it. Callers compare these exactly.
	switch {
	case math.Abs(t) <= tolT:
		return s.Start, true
	case math.Abs(t-1) <= tolT:
		return s.End, true
	case math.Abs(u) <= tolU:
		return o.Start, true
	case math.Abs(u-1) <= tolU:
		return o.End, true
	}
	return pointFromVec(s.Start.vec().Add(d.Mul(t))), true
}

// Collinear segments meet at a single point only when one ends where the other
// begins (in either direction).
func (s Segment) endToEnd(o Segment) (Point, bool) {
	d := s.direction()
	e := o.direction()
	length := d.Norm()
	if length == 0 || e.Norm() == 0 {
		return Point{}, false
	}

	// Is o on the line through s at all?
	w := o.Start.vec().Sub(s.Start.vec())
	if math.Abs(w.Cross(d)) > Tolerance*length {
		return Point{}, false
	}

	// Where o's endpoints fall along s, as parameters of s
	dd := d.Dot(d)
	u0 := w.Dot(d) / dd
	u1 := o.End.vec().Sub(s.Start.vec()).Dot(d) / dd
	lo, hi := math.Min(u0, u1), math.Max(u0, u1)

	tol := parameterTolerance(d)
	switch {
	case math.Abs(hi) <= tol:
		return s.Start, true
	case math.Abs(lo-1) <= tol:
		return s.End, true
	}
	return Point{}, false
}

// Tolerance is a distance, so on a segment's parameter it shrinks with the
// segment's length. It never grows past Tolerance itself, or a tiny segment
// would treat its whole length as "at the endpoint".
func parameterTolerance(direction r2.Point) float64 {
	return Tolerance / math.Max(1, direction.Norm())
}

func inClosedUnitInterval(t, tol float64) bool {
	return t >= -tol && t <= 1+tol
}
