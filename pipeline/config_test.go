package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 4, cfg.NumClusters)
	assert.Equal(t, LinkageWard, cfg.Linkage)
	assert.Equal(t, MetricGower, cfg.Metric)
	assert.Len(t, cfg.ClusteringColumns, 5)
	assert.Equal(t, []string{"italy", "austria"}, cfg.CountryColumns)
}

func TestLoadConfig(t *testing.T) {
	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
input_path: data/survey.xlsx
output_dir: results
plot_path: results/clusters.png
num_clusters: 3
allow_missing: true
jitter_seed: 7
`), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "data/survey.xlsx", cfg.InputPath)
		assert.Equal(t, "results", cfg.OutputDir)
		assert.Equal(t, 3, cfg.NumClusters)
		assert.True(t, cfg.AllowMissing)
		assert.Equal(t, int64(7), cfg.JitterSeed)
		// Untouched keys keep their defaults.
		assert.Equal(t, LinkageWard, cfg.Linkage)
		assert.Len(t, cfg.ClusteringColumns, 5)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("num_clusters: [not an int"), 0o644))
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	base := func() Config {
		cfg := DefaultConfig()
		cfg.InputPath = "survey.csv"
		return cfg
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("input path required", func(t *testing.T) {
		cfg := base()
		cfg.InputPath = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("unrecognized linkage", func(t *testing.T) {
		cfg := base()
		cfg.Linkage = "complete"
		assert.ErrorContains(t, cfg.Validate(), "unrecognized linkage")
	})

	t.Run("unrecognized metric", func(t *testing.T) {
		cfg := base()
		cfg.Metric = "euclidean"
		assert.ErrorContains(t, cfg.Validate(), "unrecognized metric")
	})

	t.Run("cluster count must be positive", func(t *testing.T) {
		cfg := base()
		cfg.NumClusters = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestDefaultInterpretationsCoverDefaultK(t *testing.T) {
	notes := DefaultInterpretations()
	for k := 1; k <= DefaultConfig().NumClusters; k++ {
		assert.NotEmpty(t, notes[k], "cluster %d", k)
	}
}
