// Planar geometry primitives: points, segments and triangles, with rigid
// motions and the usual measurements.
//
// This package keeps the pointer-and-sentinel contract that existing callers
// rely on. A nil *Point, *Segment or *Triangle is "absent". Coordinate getters
// on an absent point return 0, IsRight on an absent triangle returns false, and
// measurements return Invalid (-1). Every constructor copies the points it is
// given, so the caller's points and the new shape never affect each other.
//
// The computations all live in the advanced package, which uses plain values,
// errors instead of sentinels, and a real type for right triangles. Prefer it
// in new code.
package geometry

import "github.com/osuushi/geometry/advanced"

// Returned by measurements when an input is absent, or by Hypotenuse when the
// triangle isn't flagged as right-angled. All real measurements are
// non-negative, so treat any negative result as a failure.
const Invalid = -1.0

type Point struct {
	p advanced.Point
}

func NewPoint(x, y float64) *Point {
	return &Point{advanced.Point{X: x, Y: y}}
}

// Zero for an absent point, which is indistinguishable from a real zero.
func (p *Point) X() float64 {
	if p == nil {
		return 0
	}
	return p.p.X
}

func (p *Point) Y() float64 {
	if p == nil {
		return 0
	}
	return p.p.Y
}

func (p *Point) MoveByVector(dx, dy float64) {
	if p == nil {
		return
	}
	p.p.MoveByVector(dx, dy)
}

// Rotate counterclockwise around ref by angle radians. Does nothing if either
// point is absent.
func (p *Point) RotateByAngle(angle float64, ref *Point) {
	if p == nil || ref == nil {
		return
	}
	p.p.RotateByAngle(angle, ref.p)
}

// The advanced form of the point. ok is false for an absent point.
func (p *Point) Value() (v advanced.Point, ok bool) {
	if p == nil {
		return advanced.Point{}, false
	}
	return p.p, true
}

func (p *Point) String() string {
	if p == nil {
		return "<nil>"
	}
	return p.p.String()
}

func (p *Point) clone() *Point {
	return &Point{p.p}
}

// Euclidean distance, or Invalid if either point is absent.
func Distance(a, b *Point) float64 {
	if a == nil || b == nil {
		return Invalid
	}
	return advanced.Distance(a.p, b.p)
}
