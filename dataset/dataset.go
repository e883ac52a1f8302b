package dataset

import (
	"fmt"

	"github.com/segmenta-org/segmenta/schema"
)

// ============================================================================
// DATASET — Ordered binary records
// ============================================================================
// Row order is preserved from the source file and doubles as row identity
// for distance-matrix indexing. Records are immutable after load except
// for the cluster label appended once clustering completes.
// ============================================================================

// Record is one observed unit: binary clustering attributes, binary
// country indicators, and the cluster label assigned by the pipeline.
type Record struct {
	// Attributes holds the clustering column values in schema order.
	Attributes []uint8
	// Missing marks attributes excluded from distance computation.
	// Only populated when the schema allows missing values.
	Missing []bool
	// Countries holds the country indicator values in schema order.
	Countries []uint8
	// Cluster is the assigned label in 1..K, or 0 before assignment.
	Cluster int
}

// Dataset is an ordered collection of Records plus the schema that
// produced them.
type Dataset struct {
	Schema  schema.Config
	records []Record
}

// New builds a Dataset from pre-parsed records. Loaders use this; tests
// use it to construct fixtures without a file.
func New(cfg schema.Config, records []Record) (*Dataset, error) {
	for i, r := range records {
		if len(r.Attributes) != len(cfg.ClusteringColumns) {
			return nil, fmt.Errorf("dataset: record %d has %d attributes, schema declares %d",
				i, len(r.Attributes), len(cfg.ClusteringColumns))
		}
		if len(r.Countries) != len(cfg.CountryColumns) {
			return nil, fmt.Errorf("dataset: record %d has %d country indicators, schema declares %d",
				i, len(r.Countries), len(cfg.CountryColumns))
		}
	}
	return &Dataset{Schema: cfg, records: records}, nil
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// Record returns the record at index i.
func (d *Dataset) Record(i int) Record { return d.records[i] }

// Attribute returns the value of clustering column j for record i and
// whether it is missing.
func (d *Dataset) Attribute(i, j int) (value uint8, missing bool) {
	r := d.records[i]
	if r.Missing != nil && r.Missing[j] {
		return 0, true
	}
	return r.Attributes[j], false
}

// NumAttributes returns the number of clustering columns.
func (d *Dataset) NumAttributes() int { return len(d.Schema.ClusteringColumns) }

// AssignClusters attaches one label per record. Labels are totals in
// 1..K; the assignment happens exactly once per run.
func (d *Dataset) AssignClusters(labels []int) error {
	if len(labels) != len(d.records) {
		return fmt.Errorf("dataset: %d labels for %d records", len(labels), len(d.records))
	}
	for i, l := range labels {
		if l < 1 {
			return fmt.Errorf("dataset: record %d assigned invalid cluster %d", i, l)
		}
		d.records[i].Cluster = l
	}
	return nil
}

// Labels returns the assigned cluster label per record, in row order.
func (d *Dataset) Labels() []int {
	labels := make([]int, len(d.records))
	for i, r := range d.records {
		labels[i] = r.Cluster
	}
	return labels
}
