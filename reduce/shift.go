package reduce

import "math"

// maxFinite is the exclusion sentinel used when scanning for the minimum
// uncovered value: cells on a scratched line must never win the scan.
// Scoped to the dual update on purpose — it is not ambient state.
const maxFinite = math.MaxFloat64

// ShiftZeros applies the Hungarian dual update to a matrix whose current
// line cover is not yet optimal. Cells fall into three disjoint classes:
//
//   - outline — on no scratched line;
//   - inline  — on exactly one scratched line (row xor column);
//   - cross   — on a scratched row and a scratched column.
//
// Let delta be the minimum value among outline cells. The update subtracts
// delta from every outline cell, adds delta to every cross cell and leaves
// inline cells untouched, exposing at least one new zero while keeping all
// entries ≥ 0. Masks pass through conceptually unchanged — the next cover
// pass rebuilds them from scratch.
//
// Errors:
//   - ErrMaskMismatch    — mask lengths disagree with the matrix shape.
//   - ErrDegenerateCover — no outline cell exists. CoverZeros prunes
//     redundant lines, so its non-optimal covers always scratch fewer
//     than n rows and fewer than n columns and the outline is non-empty;
//     only hand-built saturated masks reach this, and it is surfaced as
//     an invariant failure rather than masked.
//
// Complexity: O(n²).
func ShiftZeros(m [][]float64, rowMask, colMask []bool) ([][]float64, error) {
	if len(rowMask) != len(m) || len(colMask) != len(m[0]) {
		return nil, ErrMaskMismatch
	}

	// Scan for delta, excluding every covered cell via the sentinel.
	delta, found := maxFinite, false
	for i, row := range m {
		for j, v := range row {
			if rowMask[i] || colMask[j] {
				continue
			}
			found = true
			if v < delta {
				delta = v
			}
		}
	}
	if !found {
		return nil, ErrDegenerateCover
	}

	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			switch {
			case rowMask[i] && colMask[j]: // cross
				out[i][j] = v + delta
			case rowMask[i] || colMask[j]: // inline
				out[i][j] = v
			default: // outline
				out[i][j] = v - delta
			}
		}
	}

	return out, nil
}
