package geom

import (
	"embed"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Each holds a single <polygon> element.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(t *testing.T, name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err, "could not load fixture %q", name)
	defer fixture.Close()

	points, err := ReadSVGPolygon(fixture)
	require.NoError(t, err, "failed to parse fixture %q", name)
	return points
}

// Area of a simple ring by the shoelace formula, independent of any
// decomposition.
func shoelaceArea(points []Point) float64 {
	var sum float64
	for i, p := range points {
		q := points[CircularIndex(i+1, len(points))]
		sum += p.X()*q.Y() - q.X()*p.Y()
	}
	return math.Abs(sum) / 2
}

func reversed(points []Point) []Point {
	result := make([]Point, len(points))
	for i, p := range points {
		result[len(points)-1-i] = p
	}
	return result
}

func assertPointEqual(t *testing.T, expected, actual Point, eps float64) {
	t.Helper()
	assert.True(t, expected.Equals(actual, eps), "expected %v, got %v", expected, actual)
}

// Check a decomposition against the even-odd rule applied to the raw ring, on
// a grid of sample points. The grid is offset by an irrational amount so that
// no sample lands on an edge or lines up with a vertex.
func validatePolygonBySampling(t *testing.T, polygon *Polygon) {
	b := polygon.AABB()
	xPadding := b.Width() * 0.1
	yPadding := b.Height() * 0.1
	minX, maxX := b.XMin()-xPadding, b.XMax()+xPadding
	minY, maxY := b.YMin()-yPadding, b.YMax()+yPadding
	step := math.Max(maxX-minX, maxY-minY) / 50

	for y := minY + step/math.Pi; y <= maxY; y += step {
		for x := minX + step/math.E; x <= maxX; x += step {
			p := NewPoint(x, y)
			if polygon.ContainsPointByEvenOdd(p) {
				assert.True(t, polygon.IntersectsPoint(p, 1e-9), "point %v should be in the polygon", p)
			} else {
				assert.False(t, polygon.IntersectsPoint(p, 1e-9), "point %v should not be in the polygon", p)
			}
		}
	}
}
