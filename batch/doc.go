// Package batch runs the Hungarian reduction over many independent cost
// matrices in parallel.
//
// The core in package reduce is strictly single-matrix; a batch is nothing
// more than a parallel map over it. Each worker exclusively owns the
// working state of the matrix it is reducing (matrix, row mask, column
// mask) — no state is ever shared across batch elements, so no locking is
// needed around the kernel itself.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hungarian/batch"
//
//	opts := batch.DefaultOptions()
//	opts.Workers = 4
//	reduced, err := batch.Reduce(matrices, &opts)
//
// Results preserve input order. When any element fails, the returned error
// names the lowest failing index and the remaining successfully reduced
// elements are still returned; retry/skip policy for failed elements stays
// with the caller.
package batch
