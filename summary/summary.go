package summary

import (
	"fmt"
	"math"
	"sort"

	"github.com/segmenta-org/segmenta/dataset"
)

// ============================================================================
// SUMMARY — Per-cluster descriptive profiles
// ============================================================================
// Computed once from the final cluster assignment, never revised. Country
// breakdowns are informational only: the country columns never entered
// the distance matrix, so clusters are not guaranteed to separate by
// country.
// ============================================================================

// Profile is the descriptive summary of one realized cluster.
type Profile struct {
	Cluster int
	Count   int
	// PercentPositive holds, per clustering column in schema order, the
	// share of records in the cluster with that attribute set, in
	// percent rounded to one decimal.
	PercentPositive []float64
	// CountryCounts holds, per country column in schema order, the
	// number of records in the cluster with that flag set.
	CountryCounts []int
}

// Profiles computes one Profile per realized cluster label, in numeric
// label order. The dataset must carry a complete cluster assignment.
func Profiles(ds *dataset.Dataset) ([]Profile, error) {
	nAttrs := len(ds.Schema.ClusteringColumns)
	nCountries := len(ds.Schema.CountryColumns)

	byLabel := make(map[int]*Profile)
	positives := make(map[int][]int)

	for i := 0; i < ds.Len(); i++ {
		rec := ds.Record(i)
		if rec.Cluster < 1 {
			return nil, fmt.Errorf("summary: record %d has no cluster assignment", i)
		}
		p, ok := byLabel[rec.Cluster]
		if !ok {
			p = &Profile{
				Cluster:         rec.Cluster,
				PercentPositive: make([]float64, nAttrs),
				CountryCounts:   make([]int, nCountries),
			}
			byLabel[rec.Cluster] = p
			positives[rec.Cluster] = make([]int, nAttrs)
		}
		p.Count++
		for j := 0; j < nAttrs; j++ {
			if v, missing := ds.Attribute(i, j); !missing && v == 1 {
				positives[rec.Cluster][j]++
			}
		}
		for j := 0; j < nCountries; j++ {
			if rec.Countries[j] == 1 {
				p.CountryCounts[j]++
			}
		}
	}

	labels := make([]int, 0, len(byLabel))
	for l := range byLabel {
		labels = append(labels, l)
	}
	sort.Ints(labels)

	profiles := make([]Profile, 0, len(labels))
	for _, l := range labels {
		p := byLabel[l]
		for j := 0; j < nAttrs; j++ {
			pct := 100 * float64(positives[l][j]) / float64(p.Count)
			p.PercentPositive[j] = math.Round(pct*10) / 10
		}
		profiles = append(profiles, *p)
	}
	return profiles, nil
}

// FormatPercent renders a rounded percentage as the string the tables
// and the export carry, e.g. "66.7%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
