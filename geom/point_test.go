package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointOffset(t *testing.T) {
	p := NewPointWithOffset(Vector{1, 2}, Vector{10, 20})
	assert.Equal(t, 11.0, p.X())
	assert.Equal(t, 22.0, p.Y())

	moved := p.Translate(Vector{1, 1})
	assert.Equal(t, Vector{1, 2}, moved.Rel(), "translation only touches the offset")
	assert.Equal(t, Vector{12, 23}, moved.Vector())

	rebased := p.WithOffset(Vector{})
	assert.Equal(t, Vector{11, 22}, rebased.Rel())
	assert.True(t, rebased.Equals(p, 0))

	rel := p.WithRel(Vector{})
	assert.Equal(t, Vector{11, 22}, rel.Offset())
	assert.True(t, rel.Equals(p, 0))
}

func TestPointRotate(t *testing.T) {
	t.Run("quarter turn", func(t *testing.T) {
		assertPointEqual(t, NewPoint(0, -1), NewPoint(1, 0).Rotate(Point{}, math.Pi/2), 1e-9)
		assertPointEqual(t, NewPoint(3, 2), NewPoint(2, 3).Rotate(NewPoint(2, 2), math.Pi/2), 1e-9)
	})

	t.Run("keeps the offset", func(t *testing.T) {
		p := NewPointWithOffset(Vector{1, 0}, Vector{5, 5})
		rotated := p.Rotate(NewPoint(5, 5), math.Pi)
		assert.Equal(t, Vector{5, 5}, rotated.Offset())
		assertPointEqual(t, NewPoint(4, 5), rotated, 1e-9)
	})

	t.Run("zero angle is an identity", func(t *testing.T) {
		p := NewPoint(0.3, 0.9)
		assert.Equal(t, p, p.Rotate(NewPoint(1, 1), 0))
	})

	t.Run("round trip", func(t *testing.T) {
		pivots := []Point{{}, NewPoint(1, 1), NewPoint(-3.5, 12.25)}
		points := []Point{NewPoint(0, 0), NewPoint(4, -2), NewPointWithOffset(Vector{7, 1}, Vector{-2, 3})}
		for _, pivot := range pivots {
			for _, p := range points {
				for theta := -7.0; theta < 7; theta += 0.9 {
					back := p.Rotate(pivot, theta).Rotate(pivot, -theta)
					assertPointEqual(t, p, back, 1e-9)
				}
			}
		}
	})
}

func TestPointTranslateInverse(t *testing.T) {
	p := NewPoint(1.5, -2)
	v := Vector{0.3, 7.1}
	assertPointEqual(t, p, p.Translate(v).Translate(v.Reverse()), 1e-12)
}

func TestPointCompare(t *testing.T) {
	assert.Equal(t, -1, NewPoint(5, 0).Compare(NewPoint(0, 1)), "y first")
	assert.Equal(t, -1, NewPoint(0, 1).Compare(NewPoint(1, 1)), "then x")
	assert.Equal(t, 1, NewPoint(0, 2).Compare(NewPoint(1, 1)))
	assert.Equal(t, 0, NewPoint(1, 1).Compare(NewPointWithOffset(Vector{}, Vector{1, 1})))
}

func TestPointEquals(t *testing.T) {
	assert.True(t, NewPoint(1, 1).Equals(NewPoint(1+1e-7, 1-1e-7), 1e-6))
	assert.False(t, NewPoint(1, 1).Equals(NewPoint(1+1e-5, 1), 1e-6))
}

func TestIsBetween(t *testing.T) {
	a, b := NewPoint(0, 0), NewPoint(2, 0)
	assert.True(t, NewPoint(1, 0).IsBetween(a, b, 1e-9))
	assert.True(t, NewPoint(1, 5).IsBetween(a, b, 1e-9), "only the strip is checked, not collinearity")
	assert.True(t, a.IsBetween(a, b, 1e-9))
	assert.True(t, b.IsBetween(a, b, 1e-9))
	assert.False(t, NewPoint(3, 0).IsBetween(a, b, 1e-9))
	assert.False(t, NewPoint(-1, 1).IsBetween(a, b, 1e-9))
}

func TestGetUnique(t *testing.T) {
	points := []Point{
		NewPoint(0, 0),
		NewPoint(1, 1),
		NewPoint(1e-9, 0),
		NewPoint(1, 1),
		NewPoint(2, 0),
	}
	unique := GetUnique(points, 1e-6)
	assert.Equal(t, []Point{NewPoint(0, 0), NewPoint(1, 1), NewPoint(2, 0)}, unique, "first seen order is kept")
}

func TestPointAsShape(t *testing.T) {
	p := NewPoint(1, 2)
	assert.Equal(t, KindPoint, p.Kind())
	assert.True(t, p.IntersectsPoint(NewPoint(1, 2), 0))
	assert.False(t, p.ContainsPoint(NewPoint(1, 2), 0), "points have no interior")
	assert.Equal(t, 0.0, p.AABB().Width())
	assert.Equal(t, "(1, 2)", p.String())
}
