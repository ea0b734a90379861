package geom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraw(t *testing.T) {
	env := NewEnv(1e-9)
	shapes := []Shape{
		square(env),
		NewPolygon(env, ring(3, 0, 7, 0, 7, 4, 5, 2, 3, 4), 1e-9),
		NewPoint(1, 1),
		seg(0, 0, 2, 2),
		NewLine(Vector{0, 1}, Vector{1, 0}),
		NewRay(NewPoint(1, 1), Vector{1, 1}),
	}

	c := Draw(shapes, 10)
	// The box spans x in [0, 7] and y in [0, 4], plus padding on each side
	assert.Equal(t, 70+2*drawPadding, c.Width())
	assert.Equal(t, 40+2*drawPadding, c.Height())

	t.Run("nothing to draw", func(t *testing.T) {
		c := Draw(nil, 1)
		assert.Equal(t, 1+2*drawPadding, c.Width())
	})

	t.Run("save", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "shapes.png")
		require.NoError(t, SavePNG(shapes, 10, path, false))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))

		assert.Error(t, SavePNG(shapes, 10, filepath.Join(t.TempDir(), "missing", "shapes.png"), false))
	})
}

func TestFitScale(t *testing.T) {
	env := NewEnv(1e-9)
	assert.Equal(t, 50.0, FitScale([]Shape{square(env)}, 100))
	assert.Equal(t, 25.0, FitScale([]Shape{square(env), seg(0, 0, 4, 1)}, 100))
	assert.Equal(t, 1.0, FitScale(nil, 100))
}
