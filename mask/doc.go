// Package mask provides the boolean line-mask primitives underneath the
// zero-cover construction of the Hungarian reduction: per-line zero counts,
// single-line argmax selection, and broadcast of a 1-D line mask into a
// 2-D element mask.
//
// Conventions:
//
//   - A zero-presence matrix z is a rectangular [][]bool where z[i][j]=true
//     means "residual zero at cell (i,j)".
//   - A line mask is a []bool with one entry per row (or per column),
//     true meaning the line is selected.
//   - Argmax selection picks exactly one line; ties break to the lowest
//     index, which keeps every downstream pass deterministic.
//
// All primitives are pure and allocate only their result. Shape violations
// (empty or ragged z, negative broadcast width) are programmer errors and
// panic; the caller-facing error surface lives in package reduce.
//
// Complexity: every primitive is O(rows·cols) over its input or better.
package mask
