package advanced

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg pictures and outputs triangle pairs. This is not a
// full (or even correct) svg parser. Each fixture holds exactly two polygons of
// three points each, and the root element says whether they are disjoint in a
// data-disjoint attribute. If anything goes wrong, it dies.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

type trianglePairFixture struct {
	A, B     Triangle
	Disjoint bool
}

func fixtureNames() []string {
	entries, err := fixtures.ReadDir("fixtures")
	if err != nil {
		log.Fatalf("Could not list fixtures: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".svg"))
	}
	return names
}

func LoadFixture(name string) trianglePairFixture {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	disjoint, err := strconv.ParseBool(rootEl.Attributes["data-disjoint"])
	if err != nil {
		log.Fatalf("Invalid data-disjoint in fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 2 {
		log.Fatalf("Expected two polygons in fixture %q, found %d", name, len(polygons))
	}

	var triangles [2]Triangle
	for i, polygonEl := range polygons {
		points := parsePoints(polygonEl.Attributes["points"])
		if len(points) != 3 {
			log.Fatalf("Polygon %d in fixture %q is not a triangle", i, name)
		}
		triangles[i] = NewGeneralTriangle(points[0], points[1], points[2])
	}
	return trianglePairFixture{A: triangles[0], B: triangles[1], Disjoint: disjoint}
}

func parsePoints(pointString string) []Point {
	var points []Point
	for _, pointString := range strings.Fields(pointString) {
		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, Point{x, y})
	}
	return points
}
