package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisjoint_Fixtures(t *testing.T) {
	names := fixtureNames()
	require.NotEmpty(t, names)
	for _, name := range names {
		name := name
		t.Run(name, func(t *testing.T) {
			fixture := LoadFixture(name)
			assert.Equal(t, fixture.Disjoint, Disjoint(fixture.A, fixture.B))
			// Disjointness is symmetric
			assert.Equal(t, fixture.Disjoint, Disjoint(fixture.B, fixture.A))
		})
	}
}

func TestDisjoint_IgnoresVariant(t *testing.T) {
	right := AssumeRightTriangle(rightAtFirst[0], rightAtFirst[1], rightAtFirst[2])
	general := NewGeneralTriangle(rightAtFirst[0], rightAtFirst[1], rightAtFirst[2])
	assert.False(t, Disjoint(right, general))

	general.MoveByVector(100, 0)
	assert.True(t, Disjoint(right, general))
}

func TestDisjoint_Motion(t *testing.T) {
	// Slide one triangle across the other, and check that it overlaps exactly
	// while the x ranges overlap.
	fixed := NewGeneralTriangle(Point{0, 0}, Point{2, 0}, Point{1, 2})
	moving := NewGeneralTriangle(Point{-10, 0}, Point{-8, 0}, Point{-9, 2})
	for x := -10.0; x <= 10; x++ {
		// The moving triangle spans [x, x+2], touching the fixed one at x = -2 and x = 2
		expected := x < -2 || x > 2
		assert.Equal(t, expected, Disjoint(fixed, moving), "moving triangle at x = %v", x)
		moving.MoveByVector(1, 0)
	}
}

func TestDisjoint_Rotation(t *testing.T) {
	// A thin triangle spinning around a point outside of another triangle.
	// It only ever reaches the other triangle while pointing at it.
	target := NewGeneralTriangle(Point{5, -1}, Point{7, -1}, Point{6, 1})
	spinner := NewGeneralTriangle(Point{0, -0.1}, Point{0, 0.1}, Point{6, 0})
	angle := math.Pi / 8
	for i := 0; i < 16; i++ {
		heading := math.Mod(float64(i)*angle, 2*math.Pi)
		expected := heading != 0
		assert.Equal(t, expected, Disjoint(target, spinner), "heading %v", heading)
		spinner.RotateByAngle(angle, Point{0, 0})
	}
}
