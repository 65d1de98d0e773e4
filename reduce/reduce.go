package reduce

import (
	"fmt"

	"github.com/katalvlaran/hungarian/mask"
	"github.com/katalvlaran/hungarian/matrix"
)

// ToOptimalCover runs the full reduction loop on a square cost matrix and
// returns the reduced matrix whose zero pattern admits a perfect zero-cost
// assignment (minimum line cover size equals the dimension).
//
// The input Dense is never mutated; squareness and finiteness are already
// guaranteed by matrix ingestion, so the only entry checks left are the
// nil matrix and the options themselves (fail fast, never retried).
//
// opts may be nil, which selects DefaultOptions.
//
// Errors:
//   - ErrNilMatrix       — m is nil.
//   - ErrBadOptions      — MaxIterations < 0.
//   - ErrIterationBudget — the outer loop exhausted its budget; with a
//     correct build this is unreachable (progress is guaranteed within
//     n² iterations).
//   - ErrDegenerateCover — forwarded from the dual update (invariant
//     failure of the cover builder / tester pair).
//
// Complexity: O(n³) per outer iteration, ≤ n² iterations.
func ToOptimalCover(m *matrix.Dense, opts *Options) (*matrix.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	// Apply options or defaults.
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.MaxIterations < 0 {
		return nil, fmt.Errorf("MaxIterations=%d: %w", o.MaxIterations, ErrBadOptions)
	}

	n := m.Dim()
	budget := o.MaxIterations
	if budget == 0 {
		budget = n * n // theoretical bound on outer iterations
	}

	// Fresh working copy; the loop owns it exclusively.
	work := m.RowSlices()

	for iter := 1; iter <= budget; iter++ {
		work = Rows(work)
		work = Cols(work)

		rowMask, colMask := CoverZeros(work)
		covered := mask.Count(rowMask) + mask.Count(colMask)
		if o.Verbose {
			fmt.Printf("reduce: iteration %d: %d of %d lines cover all zeros\n", iter, covered, n)
		}

		if IsOptimalAssignment(rowMask, colMask) {
			return matrix.FromRows(work)
		}

		shifted, err := ShiftZeros(work, rowMask, colMask)
		if err != nil {
			return nil, fmt.Errorf("iteration %d: %w", iter, err)
		}
		work = shifted
	}

	return nil, fmt.Errorf("after %d iterations: %w", budget, ErrIterationBudget)
}
