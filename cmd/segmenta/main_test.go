package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmenta-org/segmenta/summary"
)

func resetFlags() {
	configPath = ""
	inputPath = ""
	outputDir = ""
	plotPath = ""
	numClusters = 0
	allowMiss = false
}

func TestBuildConfig(t *testing.T) {
	t.Cleanup(resetFlags)

	t.Run("defaults without flags", func(t *testing.T) {
		resetFlags()
		cfg, err := buildConfig()
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.NumClusters)
		assert.Empty(t, cfg.InputPath)
	})

	t.Run("flags override config file", func(t *testing.T) {
		resetFlags()
		path := filepath.Join(t.TempDir(), "run.yaml")
		require.NoError(t, os.WriteFile(path, []byte("input_path: from_file.csv\nnum_clusters: 3\n"), 0o644))

		configPath = path
		inputPath = "from_flag.csv"
		numClusters = 5

		cfg, err := buildConfig()
		require.NoError(t, err)
		assert.Equal(t, "from_flag.csv", cfg.InputPath)
		assert.Equal(t, 5, cfg.NumClusters)
	})

	t.Run("config file values survive when flags are unset", func(t *testing.T) {
		resetFlags()
		path := filepath.Join(t.TempDir(), "run.yaml")
		require.NoError(t, os.WriteFile(path, []byte("input_path: from_file.csv\n"), 0o644))

		configPath = path
		cfg, err := buildConfig()
		require.NoError(t, err)
		assert.Equal(t, "from_file.csv", cfg.InputPath)
	})
}

func TestRenderTable(t *testing.T) {
	out := renderTable(summary.Table{
		Title:   "Cluster Summary",
		Headers: []string{"Cluster", "Cases"},
		Rows:    [][]string{{"1", "3"}, {"2", "5"}},
	})
	assert.Contains(t, out, "Cluster Summary")
	assert.Contains(t, out, "Cases")
	assert.Contains(t, out, "5")
}
