package cluster

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ============================================================================
// WARD — Agglomerative clustering, squared-dissimilarity variant
// ============================================================================
// The input is a precomputed dissimilarity matrix, not a coordinate
// embedding, so the minimum-variance criterion runs on squared
// dissimilarities via the Lance-Williams recurrence (the ward.D2 form):
//
//	d²(k, i∪j) = ((nᵢ+nₖ)·d²(k,i) + (nⱼ+nₖ)·d²(k,j) − nₖ·d²(i,j)) / (nᵢ+nⱼ+nₖ)
//
// Merge heights are reported on the original (unsquared) scale. Ward is
// monotone, so heights never decrease from leaves to root. The pair scan
// uses a fixed order with strict comparison, so equal-height candidates
// resolve to the first-computed pair — deterministic for a fixed input
// row order.
// ============================================================================

// Ward agglomerates the N leaves of a dissimilarity matrix into a
// Dendrogram of N−1 merges using the minimum-variance criterion.
func Ward(d *mat.SymDense) (*Dendrogram, error) {
	n := d.SymmetricDim()
	if n < 2 {
		return nil, fmt.Errorf("cluster: need at least 2 records to agglomerate, got %d", n)
	}

	// Active clusters: node id and leaf count. Leaves are 0..n-1; the
	// merge at step s creates node n+s.
	type node struct {
		id   int
		size int
	}
	active := make([]node, n)
	for i := range active {
		active[i] = node{id: i, size: 1}
	}

	// Squared dissimilarities between active clusters, indexed by
	// position in the active slice.
	d2 := make([][]float64, n)
	for i := range d2 {
		d2[i] = make([]float64, n)
		for j := range d2[i] {
			v := d.At(i, j)
			d2[i][j] = v * v
		}
	}

	merges := make([]Merge, 0, n-1)
	for step := 0; len(active) > 1; step++ {
		// Closest pair, first-computed wins ties.
		bi, bj := 0, 1
		best := math.Inf(1)
		for i := 0; i < len(active); i++ {
			for j := i + 1; j < len(active); j++ {
				if d2[i][j] < best {
					best = d2[i][j]
					bi, bj = i, j
				}
			}
		}

		a, b := active[bi], active[bj]
		merged := node{id: n + step, size: a.size + b.size}
		merges = append(merges, Merge{
			A:      a.id,
			B:      b.id,
			Height: math.Sqrt(best),
			Size:   merged.size,
		})

		// Lance-Williams update against every remaining cluster.
		updated := make([]float64, 0, len(active)-1)
		rest := make([]node, 0, len(active)-1)
		for k := 0; k < len(active); k++ {
			if k == bi || k == bj {
				continue
			}
			nk := float64(active[k].size)
			ni := float64(a.size)
			nj := float64(b.size)
			v := ((ni+nk)*d2[k][bi] + (nj+nk)*d2[k][bj] - nk*best) / (ni + nj + nk)
			updated = append(updated, v)
			rest = append(rest, active[k])
		}

		// Rebuild the active set with the merged cluster appended last,
		// preserving creation order for the tie-break scan.
		nd2 := make([][]float64, len(rest)+1)
		for i := range nd2 {
			nd2[i] = make([]float64, len(rest)+1)
		}
		oldPos := make([]int, 0, len(rest))
		for k := 0; k < len(active); k++ {
			if k != bi && k != bj {
				oldPos = append(oldPos, k)
			}
		}
		for i := range rest {
			for j := range rest {
				nd2[i][j] = d2[oldPos[i]][oldPos[j]]
			}
			nd2[i][len(rest)] = updated[i]
			nd2[len(rest)][i] = updated[i]
		}

		active = append(rest, merged)
		d2 = nd2
	}

	return &Dendrogram{leaves: n, merges: merges}, nil
}
