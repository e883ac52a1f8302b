package cluster

import "fmt"

// ============================================================================
// DENDROGRAM — Merge tree and flat cuts
// ============================================================================
// Leaves are numbered 0..N-1 in dataset row order; the merge at step s
// creates internal node N+s. Cutting replays merges in computed order,
// which is equivalent to splitting at the K−1 highest heights but keeps
// the merge-order tie-break explicit.
// ============================================================================

// Merge records one agglomeration step: the two node ids joined, the
// height at which they joined, and the size of the resulting cluster.
type Merge struct {
	A, B   int
	Height float64
	Size   int
}

// Dendrogram is the binary merge tree over the clustered records.
type Dendrogram struct {
	leaves int
	merges []Merge
}

// ConvergenceError reports a cut request no dendrogram over N leaves
// can satisfy.
type ConvergenceError struct {
	K, N int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("cluster: cannot cut %d leaves into %d clusters", e.N, e.K)
}

// Leaves returns the number of records the tree was built over.
func (t *Dendrogram) Leaves() int { return t.leaves }

// Merges returns the agglomeration steps in computed order.
func (t *Dendrogram) Merges() []Merge { return t.merges }

// Heights returns the merge heights in computed order. Ward heights are
// non-decreasing; tests hold that invariant.
func (t *Dendrogram) Heights() []float64 {
	hs := make([]float64, len(t.merges))
	for i, m := range t.merges {
		hs[i] = m.Height
	}
	return hs
}

// Cut slices the tree into exactly k flat clusters and returns one label
// per record. Labels run 1..k, numbered by the first record index that
// appears in each cluster; the numbering carries no semantic meaning.
func (t *Dendrogram) Cut(k int) ([]int, error) {
	n := t.leaves
	if k < 1 || k > n {
		return nil, &ConvergenceError{K: k, N: n}
	}

	// comp maps each leaf to the node id of its current component.
	comp := make([]int, n)
	for i := range comp {
		comp[i] = i
	}
	for step := 0; step < n-k; step++ {
		m := t.merges[step]
		id := n + step
		for i := range comp {
			if comp[i] == m.A || comp[i] == m.B {
				comp[i] = id
			}
		}
	}

	// Number components by first appearance over record indices.
	labels := make([]int, n)
	next := 1
	byComp := make(map[int]int, k)
	for i, c := range comp {
		l, ok := byComp[c]
		if !ok {
			l = next
			byComp[c] = l
			next++
		}
		labels[i] = l
	}
	return labels, nil
}
