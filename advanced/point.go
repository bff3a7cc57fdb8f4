package advanced

import (
	"fmt"
	"math"
)

// Euclidean distance. Non-finite coordinates propagate into the result.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func (p Point) DistanceTo(q Point) float64 {
	return Distance(p, q)
}

func (p *Point) MoveByVector(dx, dy float64) {
	p.X += dx
	p.Y += dy
}

// Rotate the point counterclockwise around ref. The angle is in radians, in the
// usual frame where x points right and y points up.
func (p *Point) RotateByAngle(angle float64, ref Point) {
	sin, cos := math.Sincos(angle)
	x := p.X - ref.X
	y := p.Y - ref.Y
	p.X = ref.X + x*cos - y*sin
	p.Y = ref.Y + x*sin + y*cos
}

// Tolerance based comparison of both coordinates.
func (p Point) Equal(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
