package geometry

import "github.com/osuushi/geometry/advanced"

// A triangle with a right-angle flag that the caller vouches for. Nothing
// checks the flag: a flagged triangle computes its area from two legs found by
// exact perpendicular tests, and if none are found, it assumes the legs meet at
// the third vertex. Use advanced.NewRightTriangle to have the angle verified.
type Triangle struct {
	first, second, third *Point
	isRight              bool
}

// Copies all three points. Returns nil if any is absent. Collinear points are
// accepted.
func NewTriangle(first, second, third *Point, isRight bool) *Triangle {
	if first == nil || second == nil || third == nil {
		return nil
	}
	return &Triangle{first.clone(), second.clone(), third.clone(), isRight}
}

// The triangle's own vertices, not copies. All nil for an absent triangle.
func (t *Triangle) Points() (first, second, third *Point) {
	if t == nil {
		return nil, nil, nil
	}
	return t.first, t.second, t.third
}

func (t *Triangle) IsRight() bool {
	if t == nil {
		return false
	}
	return t.isRight
}

func (t *Triangle) MoveByVector(dx, dy float64) {
	if t == nil {
		return
	}
	for _, p := range t.vertices() {
		p.MoveByVector(dx, dy)
	}
}

func (t *Triangle) RotateByAngle(angle float64, ref *Point) {
	if t == nil || ref == nil {
		return
	}
	r := ref.clone()
	for _, p := range t.vertices() {
		p.RotateByAngle(angle, r)
	}
}

func (t *Triangle) Perimeter() float64 {
	if t == nil {
		return Invalid
	}
	return t.Shape().Perimeter()
}

// Half the product of the legs for a flagged triangle, Heron's formula
// otherwise. Invalid for an absent triangle.
func (t *Triangle) Area() float64 {
	if t == nil {
		return Invalid
	}
	return t.Shape().Area()
}

// Invalid unless the triangle is flagged as right-angled.
func (t *Triangle) Hypotenuse() float64 {
	if t == nil || !t.isRight {
		return Invalid
	}
	return t.rightShape().Hypotenuse()
}

// The advanced form of the triangle, picked by the flag. Nil for an absent
// triangle.
func (t *Triangle) Shape() advanced.Triangle {
	if t == nil {
		return nil
	}
	if t.isRight {
		return t.rightShape()
	}
	return advanced.NewGeneralTriangle(t.first.p, t.second.p, t.third.p)
}

func (t *Triangle) rightShape() *advanced.RightTriangle {
	return advanced.AssumeRightTriangle(t.first.p, t.second.p, t.third.p)
}

func (t *Triangle) vertices() [3]*Point {
	return [3]*Point{t.first, t.second, t.third}
}

func (t *Triangle) String() string {
	if t == nil {
		return "<nil>"
	}
	return t.Shape().String()
}

// Do the triangles have no points in common? Touching at a vertex or along an
// edge counts as overlapping. False if either triangle is absent.
func AreDisjoint(a, b *Triangle) bool {
	if a == nil || b == nil {
		return false
	}
	return advanced.Disjoint(a.Shape(), b.Shape())
}
