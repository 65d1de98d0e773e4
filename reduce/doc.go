// Package reduce implements the reduction phase of the Hungarian
// (assignment-problem) method: it transforms a square cost matrix into a
// reduced matrix whose pattern of zeros admits a perfect zero-cost
// assignment.
//
// 🚀 What is the reduction loop?
//
//	loop:
//	  matrix = Rows(matrix)            // subtract per-row minima
//	  matrix = Cols(matrix)            // subtract per-column minima
//	  rowMask, colMask = CoverZeros(matrix)
//	  if IsOptimalAssignment(rowMask, colMask):
//	      return matrix                // König: cover size == n
//	  matrix = ShiftZeros(matrix, rowMask, colMask) // dual update
//
// Every phase is exported and independently testable:
//   - Rows / Cols — line normalization; at least one exact zero per line,
//     all entries stay ≥ 0.
//   - CoverZeros — greedy minimum-line-cover fixpoint: repeatedly scratch
//     the row or column holding the most residual zeros (rows win only on
//     a strictly greater count; ties inside a line kind break to the
//     lowest index), then drop redundant lines so a non-optimal cover
//     always leaves the dual update an uncovered cell.
//   - IsOptimalAssignment — König's criterion: the zeros admit a perfect
//     matching iff rows+columns scratched equals the dimension.
//   - ShiftZeros — when the cover falls short, subtract the minimum
//     uncovered value from uncovered cells and add it to doubly-covered
//     cells, exposing new zeros without disturbing the optimum.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/hungarian/matrix"
//	  "github.com/katalvlaran/hungarian/reduce"
//	)
//
//	m, _ := matrix.FromRows([][]float64{
//	  {30, 25, 10},
//	  {15, 10, 20},
//	  {25, 20, 15},
//	})
//	opts := reduce.DefaultOptions()
//	reduced, err := reduce.ToOptimalCover(m, &opts)
//
// Determinism & termination:
//
//	All tie-breaking is fixed (lowest index), so the loop is fully
//	deterministic. The dual update makes strict progress, bounding the
//	outer loop by n² iterations for an n×n matrix; exceeding that budget
//	is surfaced as ErrIterationBudget, never looped on.
//
// Numeric note:
//
//	Zero tests are exact float64 equality. This is sound because Rows and
//	Cols subtract exactly the minimum found over the same representation,
//	so every line is guaranteed at least one true zero.
//
// Complexity: O(n²) per phase, O(n³) per cover pass in the worst case,
// ≤ n² outer iterations.
//
// The contract ends at the reduced matrix: extracting the explicit
// row→column pairing from its zero pattern is the caller's concern.
package reduce
