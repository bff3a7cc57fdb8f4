package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1, 1+Tolerance/2))
	assert.False(t, Equal(1, 1+Tolerance*2))
	assert.True(t, Point{1, 2}.Equal(Point{1 + Tolerance/2, 2 - Tolerance/2}))
	assert.False(t, Point{1, 2}.Equal(Point{1, 2.1}))
}

func TestPointMoveByVector(t *testing.T) {
	startX, startY := 234.6453, 3453.345
	vectorX, vectorY := 123123.1231, -324.345
	p := Point{startX, startY}
	p.MoveByVector(vectorX, vectorY)
	assert.Equal(t, startX+vectorX, p.X)
	assert.Equal(t, startY+vectorY, p.Y)
}

func TestPointRotateByAngle(t *testing.T) {
	cases := []struct {
		name     string
		p, ref   Point
		angle    float64
		expected Point
	}{
		{"quarter turn about origin", Point{1, 0}, Point{0, 0}, math.Pi / 2, Point{0, 1}},
		{"quarter turn clockwise", Point{1, 0}, Point{0, 0}, -math.Pi / 2, Point{0, -1}},
		{"half turn about another point", Point{2, 1}, Point{1, 1}, math.Pi, Point{0, 1}},
		{"zero angle", Point{3.5, -7.25}, Point{100, -4}, 0, Point{3.5, -7.25}},
		{"full turn", Point{3.5, -7.25}, Point{100, -4}, 2 * math.Pi, Point{3.5, -7.25}},
		{"about itself", Point{5, 6}, Point{5, 6}, 1.234, Point{5, 6}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := c.p
			p.RotateByAngle(c.angle, c.ref)
			assert.InDelta(t, c.expected.X, p.X, Tolerance)
			assert.InDelta(t, c.expected.Y, p.Y, Tolerance)
		})
	}

	t.Run("rotation preserves distance to the reference", func(t *testing.T) {
		ref := Point{-3, 2}
		p := Point{4, 5}
		radius := Distance(p, ref)
		for i := 0; i < 14; i++ {
			p.RotateByAngle(math.Pi/7, ref)
			assert.InDelta(t, radius, Distance(p, ref), Tolerance)
		}
		// Fourteen sevenths of pi is a full turn
		assert.InDelta(t, 4.0, p.X, Tolerance)
		assert.InDelta(t, 5.0, p.Y, Tolerance)
	})
}

func TestDistance(t *testing.T) {
	a := Point{0, 0}
	b := Point{3, 4}
	assert.Equal(t, 5.0, Distance(a, b))
	assert.Equal(t, Distance(a, b), Distance(b, a))
	assert.Equal(t, Distance(a, b), a.DistanceTo(b))
	assert.Equal(t, 0.0, Distance(b, b))

	t.Run("non-finite coordinates propagate", func(t *testing.T) {
		assert.True(t, math.IsNaN(Distance(Point{math.NaN(), 0}, a)))
		assert.True(t, math.IsInf(Distance(Point{math.Inf(1), 0}, a), 1))
	})
}

func TestPointIsFinite(t *testing.T) {
	assert.True(t, Point{1, -2}.IsFinite())
	assert.False(t, Point{math.NaN(), 0}.IsFinite())
	assert.False(t, Point{0, math.Inf(-1)}.IsFinite())
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "(1.5, -2)", Point{1.5, -2}.String())
}
