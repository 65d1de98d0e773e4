package reduce

import "github.com/katalvlaran/hungarian/mask"

// zeroPresence derives the residual zero set of m: z[i][j] is true iff
// m[i][j] is exactly zero.
func zeroPresence(m [][]float64) [][]bool {
	z := make([][]bool, len(m))
	for i, row := range m {
		z[i] = make([]bool, len(row))
		for j, v := range row {
			z[i][j] = v == 0
		}
	}

	return z
}

// CoverZeros greedily selects covering lines ("scratches" rows and
// columns) until every zero of m lies on at least one selected line, and
// returns the resulting row and column masks.
//
// Transition rule, applied while any residual zero remains:
//  1. Compare the maximum per-row residual zero count against the maximum
//     per-column count.
//  2. Rows win only on a strictly greater count: scratch the row with the
//     most residual zeros and clear its zeros from further consideration.
//  3. Otherwise scratch the column with the most residual zeros and clear
//     its zeros.
//
// Masks are append-only within the greedy pass: a scratched line never
// reverts while residual zeros remain. Clearing affects only line
// selection; m itself is untouched.
//
// The greedy pass can over-cover: a line scratched early may end up with
// every one of its zeros also lying on lines scratched later (ties always
// favor columns, so e.g. one row plus all n columns is reachable on valid
// reduced matrices). A final minimality pass therefore drops every
// redundant line — one whose zeros the remaining scratched lines already
// cover — so a non-optimal result always leaves at least one uncovered
// cell for the dual update to work with.
//
// This is the textbook greedy line-cover heuristic, not an exact minimum
// vertex cover; the loop's optimality is certified independently by
// IsOptimalAssignment, so the greedy step must be kept as specified.
//
// Complexity: O(n³) worst case (≤ 2n selections, O(n²) scan each).
func CoverZeros(m [][]float64) (rowMask, colMask []bool) {
	z := zeroPresence(m)
	rowMask = make([]bool, len(m))
	colMask = make([]bool, len(m[0]))

	for mask.Any(z) {
		rowCounts := mask.RowZeros(z)
		colCounts := mask.ColZeros(z)

		if maxInt(rowCounts) > maxInt(colCounts) {
			scratched := mask.RowWithMaxZeros(z)
			orInto(rowMask, scratched)
			clearCovered(z, mask.ExpandRows(scratched, len(colMask)))
		} else {
			scratched := mask.ColWithMaxZeros(z)
			orInto(colMask, scratched)
			clearCovered(z, mask.ExpandCols(scratched, len(rowMask)))
		}
	}

	pruneRedundant(zeroPresence(m), rowMask, colMask)

	return rowMask, colMask
}

// pruneRedundant unscratches every line whose zeros are entirely covered
// by the other scratched lines, in place. z is the full zero-presence
// matrix of the covered matrix.
//
// Rows are swept first, then columns, each by ascending index. One sweep
// of each suffices: a row is redundant only against the column mask and
// vice versa, masks only shrink here, and shrinking one mask never makes
// a line of the other kind redundant. Every zero stays covered — a line
// is dropped only when the remaining lines already cover all its zeros.
func pruneRedundant(z [][]bool, rowMask, colMask []bool) {
	for i := range rowMask {
		if rowMask[i] && rowCoveredByCols(z, colMask, i) {
			rowMask[i] = false
		}
	}
	for j := range colMask {
		if colMask[j] && colCoveredByRows(z, rowMask, j) {
			colMask[j] = false
		}
	}
}

// rowCoveredByCols reports whether every zero of row i lies on a
// scratched column.
func rowCoveredByCols(z [][]bool, colMask []bool, i int) bool {
	for j, isZero := range z[i] {
		if isZero && !colMask[j] {
			return false
		}
	}

	return true
}

// colCoveredByRows reports whether every zero of column j lies on a
// scratched row.
func colCoveredByRows(z [][]bool, rowMask []bool, j int) bool {
	for i := range z {
		if z[i][j] && !rowMask[i] {
			return false
		}
	}

	return true
}

// IsOptimalAssignment reports König's criterion: the zeros of the reduced
// matrix admit a perfect matching iff the number of scratched rows plus
// scratched columns equals the dimension n.
//
// Both masks must stem from the same n×n matrix; length mismatches are
// rejected once at the loop entry, so here they are programmer errors.
//
// Complexity: O(n).
func IsOptimalAssignment(rowMask, colMask []bool) bool {
	return mask.Count(rowMask)+mask.Count(colMask) == len(rowMask)
}

// orInto merges the scratched line into the accumulated mask in place.
func orInto(dst, src []bool) {
	for i, set := range src {
		if set {
			dst[i] = true
		}
	}
}

// clearCovered removes every residual zero lying under the element mask.
func clearCovered(z, covered [][]bool) {
	for i, row := range covered {
		for j, set := range row {
			if set {
				z[i][j] = false
			}
		}
	}
}

// maxInt returns the maximum entry of a non-empty int slice.
func maxInt(xs []int) int {
	best := xs[0]
	for _, x := range xs[1:] {
		if x > best {
			best = x
		}
	}

	return best
}
