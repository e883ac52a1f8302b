package project

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ============================================================================
// PCA — Two principal components of the dissimilarity matrix
// ============================================================================
// The decomposition runs on the dissimilarity matrix treated as a feature
// matrix (each record's row of distances-to-everyone), not on a classical
// MDS embedding. That is a deliberate simplification carried over from the
// study's original analysis: the plot groups records, it does not promise
// a distance-preserving projection.
//
// Columns are mean-centered before projecting. Component sign is fixed by
// forcing each loading vector's largest-magnitude entry positive, so
// repeated runs produce identical coordinates.
// ============================================================================

// Coordinate is one record's position in the projected plane.
type Coordinate struct {
	PC1, PC2 float64
}

// PCA projects every row of the dissimilarity matrix onto its first two
// principal components.
func PCA(d *mat.SymDense) ([]Coordinate, error) {
	n := d.SymmetricDim()
	if n < 2 {
		return nil, fmt.Errorf("project: need at least 2 records, got %d", n)
	}

	// Mean-center each column.
	centered := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		var mean float64
		for i := 0; i < n; i++ {
			mean += d.At(i, j)
		}
		mean /= float64(n)
		for i := 0; i < n; i++ {
			centered.Set(i, j, d.At(i, j)-mean)
		}
	}

	var pc stat.PC
	if ok := pc.PrincipalComponents(centered, nil); !ok {
		return nil, fmt.Errorf("project: principal component decomposition failed")
	}

	var vec mat.Dense
	pc.VectorsTo(&vec)

	const components = 2
	loadings := vec.Slice(0, n, 0, components).(*mat.Dense)

	// Deterministic sign: largest-magnitude loading per component is
	// positive.
	signs := make([]float64, components)
	for c := 0; c < components; c++ {
		maxAbs, sign := 0.0, 1.0
		for i := 0; i < n; i++ {
			v := loadings.At(i, c)
			if a := abs(v); a > maxAbs {
				maxAbs = a
				if v < 0 {
					sign = -1
				} else {
					sign = 1
				}
			}
		}
		signs[c] = sign
	}

	var proj mat.Dense
	proj.Mul(centered, loadings)

	coords := make([]Coordinate, n)
	for i := 0; i < n; i++ {
		coords[i].PC1 = proj.At(i, 0) * signs[0]
		coords[i].PC2 = proj.At(i, 1) * signs[1]
	}
	return coords, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
