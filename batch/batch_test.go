package batch_test

import (
	"testing"

	"github.com/katalvlaran/hungarian/batch"
	"github.com/katalvlaran/hungarian/matrix"
	"github.com/katalvlaran/hungarian/reduce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustDense builds a Dense from rows or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// testBatch returns a small mixed batch: the 3×3 reference matrix, a
// single cell, and an already-reduced permutation-like matrix.
func testBatch(t *testing.T) []*matrix.Dense {
	t.Helper()

	return []*matrix.Dense{
		mustDense(t, [][]float64{{30, 25, 10}, {15, 10, 20}, {25, 20, 15}}),
		mustDense(t, [][]float64{{7}}),
		mustDense(t, [][]float64{{0, 1}, {1, 0}}),
	}
}

// TestReduce_OrderPreserved verifies each element matches its individual
// reduction and results come back in input order.
func TestReduce_OrderPreserved(t *testing.T) {
	ms := testBatch(t)

	got, err := batch.Reduce(ms, nil)
	require.NoError(t, err)
	require.Len(t, got, len(ms))

	for i, m := range ms {
		want, err := reduce.ToOptimalCover(m, nil)
		require.NoError(t, err)
		assert.True(t, want.Equal(got[i]), "batch element %d must equal its solo reduction", i)
	}
}

// TestReduce_SingleWorkerEquivalence verifies Workers=1 (fully sequential)
// produces the same results as the parallel default.
func TestReduce_SingleWorkerEquivalence(t *testing.T) {
	ms := testBatch(t)

	parallel, err := batch.Reduce(ms, nil)
	require.NoError(t, err)

	opts := batch.DefaultOptions()
	opts.Workers = 1
	sequential, err := batch.Reduce(ms, &opts)
	require.NoError(t, err)

	require.Len(t, sequential, len(parallel))
	for i := range parallel {
		assert.True(t, parallel[i].Equal(sequential[i]), "element %d must not depend on worker count", i)
	}
}

// TestReduce_EmptyBatch verifies an empty batch is a no-op.
func TestReduce_EmptyBatch(t *testing.T) {
	got, err := batch.Reduce(nil, nil)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

// TestReduce_BadWorkers verifies negative worker counts are rejected.
func TestReduce_BadWorkers(t *testing.T) {
	opts := batch.DefaultOptions()
	opts.Workers = -2

	_, err := batch.Reduce(testBatch(t), &opts)
	assert.ErrorIs(t, err, batch.ErrBadWorkers)
}

// TestReduce_FailedElementReported verifies a nil element surfaces the
// kernel's error with its index while the other elements still reduce.
func TestReduce_FailedElementReported(t *testing.T) {
	ms := testBatch(t)
	ms[1] = nil

	got, err := batch.Reduce(ms, nil)
	assert.ErrorIs(t, err, reduce.ErrNilMatrix)
	assert.ErrorContains(t, err, "matrix 1")

	require.Len(t, got, len(ms))
	assert.Nil(t, got[1], "failed element must have no partial result")
	assert.NotNil(t, got[0], "healthy elements must still be reduced")
	assert.NotNil(t, got[2], "healthy elements must still be reduced")
}

// TestReduce_PerMatrixOptionsForwarded verifies Reduce options reach the
// kernel: an impossible iteration budget must fail every element.
func TestReduce_PerMatrixOptionsForwarded(t *testing.T) {
	opts := batch.DefaultOptions()
	opts.Reduce.MaxIterations = 1

	// The 3×3 reference matrix needs two outer iterations.
	_, err := batch.Reduce([]*matrix.Dense{
		mustDense(t, [][]float64{{30, 25, 10}, {15, 10, 20}, {25, 20, 15}}),
	}, &opts)
	assert.ErrorIs(t, err, reduce.ErrIterationBudget)
}
