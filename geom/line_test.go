package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	assert.Panics(t, func() { NewLine(Vector{1, 1}, Vector{}) })
	assert.Panics(t, func() { NewLineThrough(NewPoint(1, 1), NewPoint(1, 1), 1e-9) })

	l := NewLineThrough(NewPoint(1, 1), NewPoint(3, 2), 1e-9)
	assert.Equal(t, Vector{2, 1}, l.Direction())
	assertPointEqual(t, NewPoint(1, 1), l.P(), 0)
	assertPointEqual(t, NewPoint(3, 2), l.Q(), 0)
}

func TestLineIntersection(t *testing.T) {
	xAxis := NewLine(Vector{}, Vector{1, 0})

	t.Run("crossing", func(t *testing.T) {
		yAxis := NewLineThrough(NewPoint(0, -1), NewPoint(0, 4), 1e-9)
		result := xAxis.Intersection(yAxis, 1e-9)
		require.IsType(t, Point{}, result)
		assertPointEqual(t, NewPoint(0, 0), result.(Point), 1e-12)

		diagonal := NewLine(Vector{0, 2}, Vector{1, 1})
		result = xAxis.Intersection(diagonal, 1e-9)
		require.IsType(t, Point{}, result)
		assertPointEqual(t, NewPoint(-2, 0), result.(Point), 1e-12)
	})

	t.Run("parallel", func(t *testing.T) {
		assert.Nil(t, xAxis.Intersection(NewLine(Vector{0, 1}, Vector{-3, 0}), 1e-9))
	})

	t.Run("coincident", func(t *testing.T) {
		result := xAxis.Intersection(NewLine(Vector{5, 0}, Vector{-2, 0}), 1e-9)
		require.IsType(t, &Line{}, result)
		assert.True(t, result.(*Line).Equals(xAxis, 1e-9))
	})
}

func TestIsOnSameSide(t *testing.T) {
	l := NewLine(Vector{}, Vector{1, 0})
	assert.True(t, l.IsOnSameSide(NewPoint(0, 1), NewPoint(5, 2), 1e-9))
	assert.True(t, l.IsOnSameSide(NewPoint(0, -1), NewPoint(-5, -2), 1e-9))
	assert.False(t, l.IsOnSameSide(NewPoint(0, 1), NewPoint(0, -1), 1e-9))

	t.Run("a point on the line is on every side", func(t *testing.T) {
		assert.True(t, l.IsOnSameSide(NewPoint(3, 0), NewPoint(0, -1), 1e-9))
		assert.True(t, l.IsOnSameSide(NewPoint(0, 1), NewPoint(3, 1e-10), 1e-9))
	})
}

func TestLineDistance(t *testing.T) {
	l := NewLineThrough(NewPoint(0, 0), NewPoint(1, 1), 1e-9)
	assert.InDelta(t, math.Sqrt2, l.Distance(NewPoint(2, 0)), 1e-12)
	assert.InDelta(t, 0, l.Distance(NewPoint(-4, -4)), 1e-12)
	assert.True(t, l.IntersectsPoint(NewPoint(7, 7), 1e-9))
	assert.False(t, l.IntersectsPoint(NewPoint(7, 7.1), 1e-9))

	assertPointEqual(t, NewPoint(1, 1), l.Project(NewPoint(2, 0)), 1e-12)
	perp := l.Perpendicular(NewPoint(1, 1))
	assert.True(t, perp.IntersectsPoint(NewPoint(2, 0), 1e-9))
	assert.True(t, perp.Direction().IsOrthogonal(l.Direction(), 1e-9))
}

func TestLineTransforms(t *testing.T) {
	l := NewLine(Vector{1, 0}, Vector{0, 1})
	// Read P to fill the memoized points
	assertPointEqual(t, NewPoint(1, 0), l.P(), 0)

	moved := l.Clone()
	moved.Translate(Vector{2, 3})
	assertPointEqual(t, NewPoint(3, 3), moved.P(), 0)
	assertPointEqual(t, NewPoint(3, 4), moved.Q(), 0)
	assertPointEqual(t, NewPoint(1, 0), l.P(), 0)

	moved.Translate(Vector{-2, -3})
	assert.True(t, moved.Equals(l, 1e-12))

	rotated := l.Rotate(Point{}, math.Pi/2)
	assertPointEqual(t, NewPoint(0, -1), rotated.P(), 1e-12)
	assertVectorEqual(t, Vector{1, 0}, rotated.Direction())
}
