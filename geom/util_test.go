package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointStack(t *testing.T) {
	var ps PointStack
	assert.True(t, ps.Empty())
	_, ok := ps.Pop()
	assert.False(t, ok)

	ps.Push(NewPoint(1, 2))
	assert.False(t, ps.Empty())
	p, ok := ps.Peek()
	assert.True(t, ok)
	assert.Equal(t, NewPoint(1, 2), p)
	_, ok = ps.PeekSecond()
	assert.False(t, ok)

	ps.Push(NewPoint(3, 4))
	assert.Equal(t, 2, ps.Len())
	p, _ = ps.Peek()
	assert.Equal(t, NewPoint(3, 4), p)
	p, _ = ps.PeekSecond()
	assert.Equal(t, NewPoint(1, 2), p)

	p, _ = ps.Pop()
	assert.Equal(t, NewPoint(3, 4), p)
	p, _ = ps.Pop()
	assert.Equal(t, NewPoint(1, 2), p)
	assert.True(t, ps.Empty())
}

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		assert.Equal(t, expectedIndexes[i+3], CircularIndex(i, n))
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1, 1.5, 0.5), "comparison is inclusive")
	assert.False(t, Equal(1, 1.5, 0.4))
	assert.True(t, Equal(3, 3, 0))
}

func TestNormalizeAngle(t *testing.T) {
	for _, tc := range []struct {
		in, expected float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{-4 * math.Pi, 0},
	} {
		assert.InDelta(t, tc.expected, NormalizeAngle(tc.in), 1e-12, "normalizing %g", tc.in)
	}
}

func TestEnv(t *testing.T) {
	env := NewEnv(0.5)
	assert.Equal(t, 0.5, env.Epsilon)
	assert.Equal(t, 1, env.NextID())
	assert.Equal(t, 2, env.NextID())

	assert.Panics(t, func() { NewEnv(-1) })

	t.Run("ids are unique across areas", func(t *testing.T) {
		env := NewEnv(DefaultEpsilon)
		a := NewTriangle(env, NewPoint(0, 0), NewPoint(1, 0), NewPoint(0, 1))
		b := NewTriangle(env, NewPoint(0, 0), NewPoint(1, 0), NewPoint(0, 1))
		assert.NotEqual(t, a.ID(), b.ID())
		assert.Same(t, env, a.Env())
	})
}
