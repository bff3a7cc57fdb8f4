package advanced

import (
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/geometry/internal/dbg"
)

// Debug names are random but stable per pointer, and colored by shape: cyan for
// right triangles, red for anything with zero area or length, green otherwise.

func (t *GeneralTriangle) DbgName() string {
	name := dbg.Name(t)
	if Equal(t.Area(), 0) {
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}

func (t *RightTriangle) DbgName() string {
	return aurora.Cyan(dbg.Name(t)).String()
}

func (s *Segment) DbgName() string {
	name := dbg.Name(s)
	if Equal(s.Length(), 0) {
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}
