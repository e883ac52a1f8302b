package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderScatter(t *testing.T) {
	coords := []Coordinate{
		{0, 0}, {0.1, 0.05}, {0.05, 0.12},
		{1, 1}, {1.1, 0.9},
		{-1, 1},
	}
	labels := []int{1, 1, 1, 2, 2, 3}

	t.Run("writes a png, small clusters get no hull", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "clusters.png")
		require.NoError(t, RenderScatter(coords, labels, "Cluster map", path, 42))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	})

	t.Run("length mismatch", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "clusters.png")
		err := RenderScatter(coords, labels[:2], "Cluster map", path, 42)
		assert.Error(t, err)
	})
}

func TestJitterIsSeeded(t *testing.T) {
	coords := []Coordinate{{0, 0}, {1, 1}, {2, 0}}
	a := jitter(coords, 7)
	b := jitter(coords, 7)
	assert.Equal(t, a, b)

	c := jitter(coords, 8)
	assert.NotEqual(t, a, c)
}
