package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/segmenta-org/segmenta/schema"
	"github.com/segmenta-org/segmenta/summary"
)

// ============================================================================
// CONFIG — Explicit run parameters
// ============================================================================
// Everything the run needs is passed in here: no working-directory state,
// no hardcoded paths. Linkage and metric are recognized enums so a config
// file asking for something the pipeline does not implement fails before
// any data is read.
// ============================================================================

// Recognized linkage and metric options.
const (
	LinkageWard = "ward"
	MetricGower = "gower"
)

// Config holds every parameter of one pipeline run.
type Config struct {
	InputPath string `yaml:"input_path"`
	OutputDir string `yaml:"output_dir"`
	// PlotPath is where the scatter plot is written; empty skips the plot.
	PlotPath string `yaml:"plot_path"`

	ClusteringColumns []string `yaml:"clustering_columns"`
	CountryColumns    []string `yaml:"country_columns"`
	AllowMissing      bool     `yaml:"allow_missing"`

	NumClusters int    `yaml:"num_clusters"`
	Linkage     string `yaml:"linkage"`
	Metric      string `yaml:"metric"`

	// JitterSeed feeds the display jitter; fixed so re-runs render
	// identically.
	JitterSeed int64 `yaml:"jitter_seed"`
}

// DefaultConfig returns the run parameters of the original study:
// the bundled survey schema, four clusters, Ward over Gower.
func DefaultConfig() Config {
	sch := schema.Default()
	return Config{
		OutputDir:         ".",
		ClusteringColumns: sch.ClusteringColumns,
		CountryColumns:    sch.CountryColumns,
		NumClusters:       4,
		Linkage:           LinkageWard,
		Metric:            MetricGower,
		JitterSeed:        42,
	}
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("pipeline: read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("pipeline: parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the config before any data is touched.
func (c Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("pipeline: input_path is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("pipeline: output_dir is required")
	}
	if c.NumClusters < 1 {
		return fmt.Errorf("pipeline: num_clusters must be at least 1, got %d", c.NumClusters)
	}
	if c.Linkage != LinkageWard {
		return fmt.Errorf("pipeline: unrecognized linkage %q (recognized: %s)", c.Linkage, LinkageWard)
	}
	if c.Metric != MetricGower {
		return fmt.Errorf("pipeline: unrecognized metric %q (recognized: %s)", c.Metric, MetricGower)
	}
	return c.SchemaConfig().Validate()
}

// SchemaConfig derives the loader schema from the run config.
func (c Config) SchemaConfig() schema.Config {
	return schema.Config{
		Name:              "run",
		ClusteringColumns: c.ClusteringColumns,
		CountryColumns:    c.CountryColumns,
		AllowMissing:      c.AllowMissing,
	}
}

// DefaultInterpretations is the analyst-authored reading of the four
// clusters the default configuration produces on the bundled survey.
// The labels are arbitrary numbering, not an ordering: this table must
// be re-authored whenever the cluster count or the population changes.
func DefaultInterpretations() summary.Interpretations {
	return summary.Interpretations{
		1: "Rural wineries serving as classic second and third places, with hybridisation kept low.",
		2: "Venues positioned as fourth places: settings deliberately mixed beyond home, work and leisure.",
		3: "Moderately hybrid wineries blending hospitality functions without committing to one profile.",
		4: "Low-hybridity holdouts: single-purpose operations largely untouched by place-mixing.",
	}
}
