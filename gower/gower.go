package gower

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/segmenta-org/segmenta/dataset"
)

// ============================================================================
// GOWER — Pairwise dissimilarity over binary attributes
// ============================================================================
// For purely categorical attributes Gower reduces to the mean of per-
// attribute mismatch indicators: 0 if equal, 1 if different, equal
// weighting. Missing values drop out of the pair's denominator, so every
// entry stays in [0,1] regardless of how much of a pair is observed.
// ============================================================================

// DimensionError reports a dataset too small to have pairwise distances.
type DimensionError struct {
	Records int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("gower: need at least 2 records, got %d", e.Records)
}

// Matrix computes the symmetric N×N Gower dissimilarity matrix over the
// dataset's clustering attributes. The diagonal is zero.
func Matrix(ds *dataset.Dataset) (*mat.SymDense, error) {
	n := ds.Len()
	if n < 2 {
		return nil, &DimensionError{Records: n}
	}
	p := ds.NumAttributes()

	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			mismatches, comparable := 0, 0
			for a := 0; a < p; a++ {
				vi, mi := ds.Attribute(i, a)
				vj, mj := ds.Attribute(j, a)
				if mi || mj {
					continue
				}
				comparable++
				if vi != vj {
					mismatches++
				}
			}
			if comparable == 0 {
				return nil, fmt.Errorf("gower: records %d and %d share no comparable attributes", i, j)
			}
			m.SetSym(i, j, float64(mismatches)/float64(comparable))
		}
	}
	return m, nil
}
