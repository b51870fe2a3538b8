// Package sudoku reduces classic 9×9 Sudoku to exact cover and solves it
// with the dlx package. It is the canonical external collaborator of the
// solver core: it owns all puzzle knowledge, while dlx sees only named
// columns and rows.
//
// What:
//
//   - New(grid): parse nine row strings ('1'..'9' are givens, anything
//     else is an empty cell) and build the exact-cover reduction.
//   - Puzzle.Solve / Solve(grid): first completion, or ErrNoSolution.
//   - Puzzle.Solutions: lazy stream of every completion.
//   - Puzzle.Unique: whether exactly one completion exists (stops after
//     finding a second).
//
// The reduction:
//
//	Every admissible placement "digit d at (r,c)" becomes one row with
//	four columns — p<r><c> (cell filled), r<r><d>, c<c><d>, b<box><d>
//	(row/column/box each hold d once). Placements clashing with a given
//	are never emitted, so covering every remaining column exactly once
//	is the same thing as legally completing the board. An empty board
//	yields the familiar 729 rows × 324 columns; givens shrink both.
//
// Complexity: building the reduction is O(1) (bounded by 729 candidate
// rows); solving inherits dlx's search behavior, which on 9×9 Sudoku is
// effectively instantaneous thanks to the min-count column heuristic.
//
// Errors:
//
//   - ErrBadGrid     input is not 9 rows of 9 cells
//   - ErrNoSolution  the givens admit no completion
//
// Givens are trusted, not validated: a board with two 5s in one row
// simply turns out to have no completion.
package sudoku
