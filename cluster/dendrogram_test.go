package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCutScenario(t *testing.T) {
	// The reference scenario: cutting at K=4 must separate the three
	// identical-vector groups and the singleton into pure clusters.
	tree, err := Ward(scenarioMatrix(t))
	require.NoError(t, err)

	labels, err := tree.Cut(4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 2, 2, 3, 3, 4}, labels)
}

func TestCutTotality(t *testing.T) {
	tree, err := Ward(scenarioMatrix(t))
	require.NoError(t, err)

	for k := 1; k <= 8; k++ {
		labels, err := tree.Cut(k)
		require.NoError(t, err, "k=%d", k)
		require.Len(t, labels, 8)

		seen := make(map[int]bool)
		for i, l := range labels {
			assert.GreaterOrEqual(t, l, 1, "record %d", i)
			assert.LessOrEqual(t, l, k, "record %d", i)
			seen[l] = true
		}
		assert.Len(t, seen, k, "every label 1..%d realized", k)
	}
}

func TestCutLabelNumbering(t *testing.T) {
	tree, err := Ward(scenarioMatrix(t))
	require.NoError(t, err)

	labels, err := tree.Cut(3)
	require.NoError(t, err)

	// Labels are numbered by first appearance over record indices.
	assert.Equal(t, 1, labels[0])
	next := 1
	for _, l := range labels {
		if l == next+1 {
			next++
		}
		assert.LessOrEqual(t, l, next, "a label never appears before all smaller labels")
	}
}

func TestCutInvalidK(t *testing.T) {
	tree, err := Ward(scenarioMatrix(t))
	require.NoError(t, err)

	for _, k := range []int{0, -1, 9} {
		_, err := tree.Cut(k)
		var ce *ConvergenceError
		require.ErrorAs(t, err, &ce, "k=%d", k)
		assert.Equal(t, k, ce.K)
		assert.Equal(t, 8, ce.N)
	}
}
