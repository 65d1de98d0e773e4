// Package hungarian is a small, dependency-free toolkit for the reduction
// phase of the Hungarian (assignment-problem) method: it turns a square
// cost matrix into a reduced matrix whose zero pattern admits a perfect
// zero-cost assignment.
//
// 🚀 What is hungarian?
//
//	A pure-Go library implementing the classical "covering zeros"
//	reduction loop:
//		• Row/column normalization — subtract per-line minima
//		• Greedy zero-cover construction over the residual zero set
//		• Optimality test via König's line-cover criterion
//		• Dual adjustment ("shift zeros") when the cover falls short
//
// ✨ Why choose hungarian?
//
//   - Deterministic — fixed tie-breaking, no randomness, bounded iteration
//   - Rock-solid guarantees — validated ingestion, sentinel errors, in-code docs
//   - Pure Go — no cgo, no hidden deps
//   - Composable — every phase of the loop is an exported, testable operation
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/ — Dense: square, finite, row-major cost-matrix storage
//	mask/   — boolean line-mask primitives (zero counts, argmax lines, broadcast)
//	reduce/ — the reduction loop and its phases (the algorithmic core)
//	batch/  — parallel map over independent matrices, one worker per instance
//
// The contract deliberately ends at the reduced matrix: extracting the
// explicit row→column pairing from its zero pattern, and any loss or
// metric built on top of it, belong to the caller.
//
// Dive into each subpackage's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/hungarian
package hungarian
