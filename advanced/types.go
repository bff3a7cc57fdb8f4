package advanced

// Points are plain values. Everything that holds a point holds its own copy, so
// moving a caller's point after building a segment or triangle from it never
// reaches into the shape, and vice versa.
type Point struct {
	X float64
	Y float64
}

// A segment is directed from Start to End. The direction matters for the sign
// of the cross and dot products, though not for any of the predicates built on
// them. Start and End may coincide.
type Segment struct {
	Start Point
	End   Point
}
