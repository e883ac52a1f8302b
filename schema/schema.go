package schema

import (
	"fmt"
	"strings"
)

// ============================================================================
// SCHEMA — Describes the shape of a dataset for the pipeline
// ============================================================================
// Declared by the analyst, not discovered: the clustering columns carry the
// semantics of the study design, so the loader validates against an explicit
// column list instead of guessing from the data.
// ============================================================================

// Config describes the columns the pipeline expects in the input file.
type Config struct {
	Name string `json:"name" yaml:"name"`

	// ClusteringColumns are the binary attributes the distance matrix is
	// computed over. Order is significant and preserved end to end.
	ClusteringColumns []string `json:"clusteringColumns" yaml:"clustering_columns"`

	// CountryColumns are binary indicator columns reported per cluster.
	// They never enter the distance computation.
	CountryColumns []string `json:"countryColumns" yaml:"country_columns"`

	// AllowMissing turns empty cells in clustering columns into missing
	// observations (excluded pairwise from the Gower denominator) instead
	// of load failures.
	AllowMissing bool `json:"allowMissing" yaml:"allow_missing"`
}

// Default returns the survey schema the pipeline was built for:
// five location/hybridity attributes plus two country indicators.
func Default() Config {
	return Config{
		Name: "winery_survey",
		ClusteringColumns: []string{
			"rural_area",
			"second_third_place",
			"fourth_place",
			"moderate_hybridity",
			"low_hybridity",
		},
		CountryColumns: []string{"italy", "austria"},
	}
}

// Validate checks the schema itself for internal consistency.
func (c Config) Validate() error {
	if len(c.ClusteringColumns) == 0 {
		return fmt.Errorf("schema %q: no clustering columns declared", c.Name)
	}
	seen := make(map[string]bool)
	for _, col := range append(append([]string{}, c.ClusteringColumns...), c.CountryColumns...) {
		if strings.TrimSpace(col) == "" {
			return fmt.Errorf("schema %q: empty column name", c.Name)
		}
		if seen[col] {
			return fmt.Errorf("schema %q: column %q declared twice", c.Name, col)
		}
		seen[col] = true
	}
	return nil
}

// AllColumns returns the clustering columns followed by the country columns.
func (c Config) AllColumns() []string {
	all := make([]string, 0, len(c.ClusteringColumns)+len(c.CountryColumns))
	all = append(all, c.ClusteringColumns...)
	all = append(all, c.CountryColumns...)
	return all
}
