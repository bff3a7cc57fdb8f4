package advanced

import (
	"math"

	"github.com/golang/geo/r2"
)

// Do two triangles have no points in common?
//
// Triangles are closed, so sharing a vertex or part of an edge counts as
// overlapping. This is a separating axis test over the edge normals of both
// triangles: two convex shapes are disjoint iff their projections onto one of
// those normals don't overlap.
//
// The bounding box check up front is a cheap rejection, but it also matters
// for degenerate triangles. Collinear points have no usable normal along their
// own line, and the bounding boxes are what separate two collinear triangles
// lying on the same line.
func Disjoint(a, b Triangle) bool {
	av, bv := a.Vertices(), b.Vertices()
	if !boundingRect(av).Intersects(boundingRect(bv)) {
		return true
	}

	for _, tri := range [...][3]Point{av, bv} {
		for i := range tri {
			edge := tri[(i+1)%3].vec().Sub(tri[i].vec())
			axis := edge.Ortho()
			min1, max1 := project(av, axis)
			min2, max2 := project(bv, axis)
			if !overlaps(min1, max1, min2, max2) {
				return true
			}
		}
	}
	return false
}

func boundingRect(vertices [3]Point) r2.Rect {
	return r2.RectFromPoints(vertices[0].vec(), vertices[1].vec(), vertices[2].vec())
}

func project(vertices [3]Point, axis r2.Point) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, v := range vertices {
		dot := v.vec().Dot(axis)
		min = math.Min(min, dot)
		max = math.Max(max, dot)
	}
	return min, max
}

// Inclusive: touching intervals overlap.
func overlaps(min1, max1, min2, max2 float64) bool {
	return !(max1 < min2 || max2 < min1)
}
