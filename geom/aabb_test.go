package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAABB(t *testing.T) {
	assert.Panics(t, func() { NewAABB() })
	assert.Panics(t, func() { NewAABBFromExtents(1, 0, 0, 1) })

	b := NewAABB(NewPoint(1, 5), NewPoint(-2, 3), NewPoint(0, 7))
	assert.Equal(t, -2.0, b.XMin())
	assert.Equal(t, 1.0, b.XMax())
	assert.Equal(t, 3.0, b.YMin())
	assert.Equal(t, 7.0, b.YMax())
	assert.Equal(t, 3.0, b.Width())
	assert.Equal(t, 4.0, b.Height())
}

func TestAABBIntersection(t *testing.T) {
	unit := NewAABBFromExtents(0, 1, 0, 1)

	t.Run("disjoint", func(t *testing.T) {
		far := NewAABBFromExtents(5, 6, 5, 6)
		assert.False(t, unit.Intersects(far, 1e-9))
		assert.True(t, unit.IsBeyond(far, 1e-9))
		assert.Nil(t, unit.Intersection(far, 1e-9))
	})

	t.Run("overlapping", func(t *testing.T) {
		a := NewAABBFromExtents(0, 2, 0, 2)
		b := NewAABBFromExtents(1, 3, 1, 3)
		result := a.Intersection(b, 1e-9)
		require.NotNil(t, result)
		assert.True(t, result.Equals(NewAABBFromExtents(1, 2, 1, 2), 0))
	})

	t.Run("touching", func(t *testing.T) {
		side := NewAABBFromExtents(1, 2, 0, 1)
		assert.True(t, unit.Intersects(side, 0))
		result := unit.Intersection(side, 0)
		require.NotNil(t, result)
		assert.Equal(t, 0.0, result.Width())
	})

	t.Run("padded by epsilon", func(t *testing.T) {
		near := NewAABBFromExtents(1.05, 2, 0, 1)
		assert.False(t, unit.Intersects(near, 0.01))
		assert.True(t, unit.Intersects(near, 0.1))
	})
}

func TestAABBContains(t *testing.T) {
	b := NewAABBFromExtents(0, 1, 0, 1)
	assert.True(t, b.ContainsPoint(NewPoint(0.5, 0.5), 0))
	assert.True(t, b.ContainsPoint(NewPoint(1, 1), 0), "the boundary is included")
	assert.False(t, b.ContainsPoint(NewPoint(1.1, 1), 0))

	assert.True(t, b.ContainsAABB(NewAABBFromExtents(0.2, 1, 0, 0.5), 0))
	assert.False(t, b.ContainsAABB(NewAABBFromExtents(0.2, 1.5, 0, 0.5), 0))
}

func TestAABBUnion(t *testing.T) {
	boxes := []*AABB{
		NewAABBFromExtents(0, 1, 0, 1),
		NewAABBFromExtents(5, 6, 5, 6),
		NewAABBFromExtents(-1, 0.5, 0.2, 3),
	}
	for _, a := range boxes {
		assert.True(t, a.Union(a).Equals(a, 0), "union with itself")
		for _, b := range boxes {
			union := a.Union(b)
			assert.True(t, union.ContainsAABB(a, 0))
			assert.True(t, union.ContainsAABB(b, 0))
			assert.True(t, union.Equals(b.Union(a), 0), "union commutes")
		}
	}
}

func TestAABBCornersAndEdges(t *testing.T) {
	b := NewAABBFromExtents(0, 2, 0, 1)
	assertPointEqual(t, NewPoint(0, 0), b.LL(), 0)
	assertPointEqual(t, NewPoint(0, 1), b.UL(), 0)
	assertPointEqual(t, NewPoint(2, 1), b.UR(), 0)
	assertPointEqual(t, NewPoint(2, 0), b.LR(), 0)
	requireSegment(t, seg(0, 1, 2, 1), b.Top())
	requireSegment(t, seg(2, 0, 2, 1), b.Right())

	t.Run("translate drops the caches", func(t *testing.T) {
		moved := b.Clone()
		moved.LL()
		moved.Top()
		moved.Translate(Vector{2, 3})
		assertPointEqual(t, NewPoint(2, 3), moved.LL(), 0)
		requireSegment(t, seg(2, 4, 4, 4), moved.Top())
		assert.Equal(t, 2.0, moved.Width())

		moved.Translate(Vector{-2, -3})
		assert.True(t, moved.Equals(b, 0))
	})

	t.Run("degenerate edges are points", func(t *testing.T) {
		flat := NewAABB(NewPoint(0, 0), NewPoint(3, 0))
		requirePoint(t, NewPoint(0, 0), flat.Left())
		requireSegment(t, seg(0, 0, 3, 0), flat.Top())
	})
}
