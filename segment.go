package geometry

import "github.com/osuushi/geometry/advanced"

type Segment struct {
	start, end *Point
}

// Copies both points. Returns nil if either is absent.
func NewSegment(start, end *Point) *Segment {
	if start == nil || end == nil {
		return nil
	}
	return &Segment{start.clone(), end.clone()}
}

// The segment's own endpoints, not copies. Moving them moves the segment. Both
// are nil for an absent segment.
func (s *Segment) Points() (start, end *Point) {
	if s == nil {
		return nil, nil
	}
	return s.start, s.end
}

func (s *Segment) MoveByVector(dx, dy float64) {
	if s == nil {
		return
	}
	s.start.MoveByVector(dx, dy)
	s.end.MoveByVector(dx, dy)
}

func (s *Segment) RotateByAngle(angle float64, ref *Point) {
	if s == nil || ref == nil {
		return
	}
	// ref may be one of our own endpoints, so pin it down first
	r := ref.clone()
	s.start.RotateByAngle(angle, r)
	s.end.RotateByAngle(angle, r)
}

func (s *Segment) Length() float64 {
	if s == nil {
		return Invalid
	}
	return s.value().Length()
}

func (s *Segment) value() advanced.Segment {
	return advanced.Segment{Start: s.start.p, End: s.end.p}
}

func (s *Segment) String() string {
	if s == nil {
		return "<nil>"
	}
	return s.value().String()
}

// Exact test; false if either segment is absent. See
// advanced.Segment.IsParallelWithin for a tolerant version.
func AreParallel(a, b *Segment) bool {
	if a == nil || b == nil {
		return false
	}
	return a.value().IsParallelTo(b.value())
}

// Exact test; false if either segment is absent.
func ArePerpendicular(a, b *Segment) bool {
	if a == nil || b == nil {
		return false
	}
	return a.value().IsPerpendicularTo(b.value())
}

// The point where two segments meet, as a new point owned by the caller. Nil
// if either segment is absent, if they don't meet, or if they are parallel.
// Endpoints count, so segments sharing one endpoint meet there.
func Intersection(a, b *Segment) *Point {
	if a == nil || b == nil {
		return nil
	}
	p, ok := a.value().Intersection(b.value())
	if !ok {
		return nil
	}
	return &Point{p}
}
