package advanced

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

func NewSegment(start, end Point) Segment {
	return Segment{Start: start, End: end}
}

// The vector from Start to End.
func (s Segment) Direction() Point {
	return pointFromVec(s.direction())
}

func (s Segment) direction() r2.Point {
	return s.End.vec().Sub(s.Start.vec())
}

func (s Segment) Length() float64 {
	return Distance(s.Start, s.End)
}

func (s Segment) Midpoint() Point {
	return Point{
		X: (s.Start.X + s.End.X) / 2,
		Y: (s.Start.Y + s.End.Y) / 2,
	}
}

func (s Segment) Reversed() Segment {
	return Segment{Start: s.End, End: s.Start}
}

func (s *Segment) MoveByVector(dx, dy float64) {
	s.Start.MoveByVector(dx, dy)
	s.End.MoveByVector(dx, dy)
}

func (s *Segment) RotateByAngle(angle float64, ref Point) {
	s.Start.RotateByAngle(angle, ref)
	s.End.RotateByAngle(angle, ref)
}

// Are the direction vectors parallel? This is an exact test on the cross
// product, so segments which are parallel up to rounding error are not
// parallel. Use IsParallelWithin if the coordinates have been through any
// arithmetic.
//
// A zero length segment has no direction, and so is parallel to everything.
func (s Segment) IsParallelTo(o Segment) bool {
	d := s.direction()
	e := o.direction()
	return d.X*e.Y == d.Y*e.X
}

// Are the direction vectors perpendicular? Exact test on the dot product, with
// the same caveats as IsParallelTo.
func (s Segment) IsPerpendicularTo(o Segment) bool {
	d := s.direction()
	e := o.direction()
	return d.X*e.X == -(d.Y * e.Y)
}

// Tolerant parallel test. The cross product is normalized by both lengths, so
// eps bounds the sine of the angle between the segments rather than an
// absolute distance.
func (s Segment) IsParallelWithin(o Segment, eps float64) bool {
	d := s.direction()
	e := o.direction()
	return math.Abs(d.Cross(e)) <= eps*d.Norm()*e.Norm()
}

// Tolerant perpendicular test. Here eps bounds the cosine of the angle.
func (s Segment) IsPerpendicularWithin(o Segment, eps float64) bool {
	d := s.direction()
	e := o.direction()
	return math.Abs(d.Dot(e)) <= eps*d.Norm()*e.Norm()
}

func (s Segment) String() string {
	return fmt.Sprintf("%s→%s", s.Start, s.End)
}
