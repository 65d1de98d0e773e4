package batch

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/katalvlaran/hungarian/matrix"
	"github.com/katalvlaran/hungarian/reduce"
)

// ErrBadWorkers indicates a negative Workers value in Options.
var ErrBadWorkers = errors.New("batch: Workers must be non-negative")

// Options configures batched reduction.
//
// Fields:
//   - Workers — number of concurrent workers. 0 selects GOMAXPROCS;
//     negative values are rejected with ErrBadWorkers.
//   - Reduce  — per-matrix options forwarded to reduce.ToOptimalCover.
type Options struct {
	Workers int
	Reduce  reduce.Options
}

// DefaultOptions returns the canonical Options: GOMAXPROCS workers and
// default per-matrix reduction settings.
func DefaultOptions() Options {
	return Options{
		Workers: 0,
		Reduce:  reduce.DefaultOptions(),
	}
}

// Reduce applies reduce.ToOptimalCover to every matrix of ms in parallel
// and returns the reduced matrices in input order.
//
// opts may be nil, which selects DefaultOptions. An empty batch returns
// (nil, nil).
//
// On failure the returned error wraps the underlying reduction error of
// the lowest failing index; entries that reduced successfully are still
// present in the result, failed entries are nil. The error for one
// element never aborts the others — each matrix is an independent unit
// of work.
//
// Complexity: the cost of the slowest element, with up to Workers
// reductions in flight.
func Reduce(ms []*matrix.Dense, opts *Options) ([]*matrix.Dense, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Workers < 0 {
		return nil, fmt.Errorf("Workers=%d: %w", o.Workers, ErrBadWorkers)
	}
	if len(ms) == 0 {
		return nil, nil
	}

	workers := o.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(ms) {
		workers = len(ms)
	}

	var (
		out  = make([]*matrix.Dense, len(ms))
		errs = make([]error, len(ms))
		jobs = make(chan int)
		wg   sync.WaitGroup
	)

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				// Exclusive ownership: index i is handled by exactly one
				// worker, so out[i]/errs[i] need no locking.
				out[i], errs[i] = reduce.ToOptimalCover(ms[i], &o.Reduce)
			}
		}()
	}

	for i := range ms {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	// Deterministic error selection: lowest failing index wins.
	for i, err := range errs {
		if err != nil {
			return out, fmt.Errorf("batch: matrix %d: %w", i, err)
		}
	}

	return out, nil
}
