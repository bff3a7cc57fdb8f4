package advanced

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// A triangle is either general or right-angled, and the two compute area
// differently. Rather than trusting a flag, the kind is the concrete type, and
// only a *RightTriangle has a hypotenuse.
//
// The interface is closed: *GeneralTriangle and *RightTriangle are the only
// implementations.
type Triangle interface {
	Points() (first, second, third Point)
	Vertices() [3]Point
	// The three directed edges first→second, second→third, third→first.
	Segments() [3]Segment
	IsRight() bool
	Perimeter() float64
	Area() float64
	MoveByVector(dx, dy float64)
	RotateByAngle(angle float64, ref Point)
	String() string
	DbgName() string

	// This is a dummy method that keeps other types from satisfying Triangle.
	triangleVariantHint()
}

// Triangle variants enumerated here with type hint
func (*GeneralTriangle) triangleVariantHint() {}
func (*RightTriangle) triangleVariantHint()   {}

// Storage and the operations that don't care about the variant. Rigid motions
// preserve right angles, so moving and rotating are safe for both.
type vertexSet [3]Point

func (v *vertexSet) Points() (first, second, third Point) {
	return v[0], v[1], v[2]
}

func (v *vertexSet) Vertices() [3]Point {
	return *v
}

func (v *vertexSet) Segments() [3]Segment {
	return [3]Segment{
		{v[0], v[1]},
		{v[1], v[2]},
		{v[2], v[0]},
	}
}

func (v *vertexSet) Perimeter() float64 {
	return Distance(v[0], v[1]) + Distance(v[1], v[2]) + Distance(v[0], v[2])
}

func (v *vertexSet) MoveByVector(dx, dy float64) {
	for i := range v {
		v[i].MoveByVector(dx, dy)
	}
}

func (v *vertexSet) RotateByAngle(angle float64, ref Point) {
	for i := range v {
		v[i].RotateByAngle(angle, ref)
	}
}

// Heron's formula from the three distinct side lengths. Rounding can push the
// product slightly negative for collinear points, so it is clamped to zero.
func (v *vertexSet) heronArea() float64 {
	a := Distance(v[0], v[1])
	b := Distance(v[0], v[2])
	c := Distance(v[1], v[2])
	s := (a + b + c) / 2
	return math.Sqrt(math.Max(0, s*(s-a)*(s-b)*(s-c)))
}

func (v *vertexSet) isDegenerate() bool {
	return Segment{v[0], v[1]}.IsParallelWithin(Segment{v[0], v[2]}, Tolerance)
}

// Look for the vertex where the legs meet, trying the pairs in a fixed order:
//
//	first:  (first, second) ⊥ (first, third)
//	second: (first, second) ⊥ (second, third)
//	third:  (first, third)  ⊥ (second, third)
//
// If nothing matches, ok is false and corner is the third vertex, which is
// where callers that trust the right angle assume it is.
func (v *vertexSet) findRightAngle(perpendicular func(s, o Segment) bool) (corner int, ok bool) {
	firstSecond := Segment{v[0], v[1]}
	firstThird := Segment{v[0], v[2]}
	if perpendicular(firstSecond, firstThird) {
		return 0, true
	}
	secondThird := Segment{v[1], v[2]}
	if perpendicular(firstSecond, secondThird) {
		return 1, true
	}
	return 2, perpendicular(firstThird, secondThird)
}

type GeneralTriangle struct {
	vertexSet
}

// No validation; collinear points make a triangle with zero area.
func NewGeneralTriangle(first, second, third Point) *GeneralTriangle {
	return &GeneralTriangle{vertexSet{first, second, third}}
}

func (t *GeneralTriangle) IsRight() bool {
	return false
}

func (t *GeneralTriangle) Area() float64 {
	return t.heronArea()
}

func (t *GeneralTriangle) String() string {
	return fmt.Sprintf("Triangle{%s %s %s}", t.vertexSet[0], t.vertexSet[1], t.vertexSet[2])
}

type RightTriangle struct {
	vertexSet
	// Index of the vertex the legs meet at.
	corner int
}

// Build a right triangle, checking that one of the vertices really is a right
// angle (within Tolerance, so rotated triangles still qualify).
func NewRightTriangle(first, second, third Point) (*RightTriangle, error) {
	v := vertexSet{first, second, third}
	if v.isDegenerate() {
		return nil, errors.Wrapf(ErrDegenerate, "right triangle %s %s %s", first, second, third)
	}
	corner, ok := v.findRightAngle(func(s, o Segment) bool {
		return s.IsPerpendicularWithin(o, Tolerance)
	})
	if !ok {
		return nil, errors.Wrapf(ErrNotRightAngled, "right triangle %s %s %s", first, second, third)
	}
	return &RightTriangle{v, corner}, nil
}

// Build a right triangle on the caller's word. The legs are located with the
// exact perpendicular test, and if none of the pairs is exactly perpendicular,
// the legs are assumed to meet at the third vertex. Area and hypotenuse are
// meaningless if the caller was wrong.
func AssumeRightTriangle(first, second, third Point) *RightTriangle {
	v := vertexSet{first, second, third}
	corner, _ := v.findRightAngle(Segment.IsPerpendicularTo)
	return &RightTriangle{v, corner}
}

// Pick the variant from a flag. A right triangle goes through the verified
// constructor.
func NewTriangle(first, second, third Point, right bool) (Triangle, error) {
	if !right {
		return NewGeneralTriangle(first, second, third), nil
	}
	t, err := NewRightTriangle(first, second, third)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (t *RightTriangle) IsRight() bool {
	return true
}

func (t *RightTriangle) RightAngleVertex() Point {
	return t.vertexSet[t.corner]
}

// The two edges that meet at the right angle, both starting from the vertex
// with the lower index.
func (t *RightTriangle) Legs() (Segment, Segment) {
	v := &t.vertexSet
	switch t.corner {
	case 0:
		return Segment{v[0], v[1]}, Segment{v[0], v[2]}
	case 1:
		return Segment{v[0], v[1]}, Segment{v[1], v[2]}
	case 2:
		return Segment{v[0], v[2]}, Segment{v[1], v[2]}
	}
	fatalf("invalid right angle vertex %d", t.corner)
	return Segment{}, Segment{}
}

func (t *RightTriangle) Area() float64 {
	a, b := t.Legs()
	return 0.5 * a.Length() * b.Length()
}

func (t *RightTriangle) Hypotenuse() float64 {
	a, b := t.Legs()
	la, lb := a.Length(), b.Length()
	return math.Sqrt(la*la + lb*lb)
}

func (t *RightTriangle) String() string {
	return fmt.Sprintf("RightTriangle{%s %s %s ∟%s}", t.vertexSet[0], t.vertexSet[1], t.vertexSet[2], t.RightAngleVertex())
}
