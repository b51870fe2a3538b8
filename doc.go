// Package exactcover is a small, focused toolkit for the exact-cover
// problem: given a universe of columns and a collection of rows (each row
// a subset of columns), find every selection of rows that covers each
// column exactly once.
//
// 🚀 What is exactcover?
//
//	A pure-Go implementation of Knuth's Algorithm X over dancing links:
//		• dlx/    — the toroidal linked sparse matrix, reversible
//		            cover/uncover, and the depth-first search driver
//		• sudoku/ — a 9×9 Sudoku reducer, the canonical collaborator
//		            that encodes a puzzle as an exact-cover instance
//
// ✨ Why choose exactcover?
//
//   - Lazy solutions — range over dlx.Instance.Solutions() and break
//     whenever you have enough; nothing else to cancel or close
//   - Deterministic — the same instance always yields the same solutions
//     in the same order
//   - Rock-solid reversal — cover/uncover restore linkage field-for-field,
//     which is what makes millions of backtracks cheap
//   - Pure Go — no cgo, no hidden deps
//
// Quick ASCII example, a 6×7 membership matrix with a unique cover:
//
//	        c0 c1 c2 c3 c4 c5 c6
//	row 0    .  .  1  .  1  1  .
//	row 1    1  .  .  1  .  .  1
//	row 2    .  1  1  .  .  1  .
//	row 3    1  .  .  1  .  .  .   ←
//	row 4    .  1  .  .  .  .  1   ←
//	row 5    .  .  .  1  1  .  1
//
//	rows 3, 0 and 4 cover every column exactly once.
//
// Reductions to exact cover (tilings, combinatorial designs, puzzles)
// supply rows and columns with domain meaning embedded in their
// identifiers and map each solved row index back to a domain fact; the
// sudoku package shows the full pattern.
//
//	go get github.com/katalvlaran/exactcover/dlx
package exactcover
