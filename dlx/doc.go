// Package dlx implements Knuth's Algorithm X over dancing links: an
// exact-cover solver on a toroidal doubly-linked sparse matrix with O(1)
// reversible removal and reinsertion of rows and columns.
//
// What:
//
//   - Instance: an exact-cover problem — named columns plus rows that are
//     subsets of them — built with New or, from a dense 0/1 membership
//     matrix, NewFromMatrix.
//   - Solutions: the lazy, depth-first stream of exact covers as an
//     iter.Seq of row-index slices; break out of the range to stop early.
//   - Solve: the collected form, with options for cancellation
//     (WithContext), solution limits (WithMaxSolutions), per-solution
//     hooks (WithOnSolution), and branching order (WithColumnPolicy).
//
// Why:
//   - Exact cover is the common core of tilings, combinatorial designs
//     and many placement puzzles; a reduction supplies domain-flavored
//     rows and columns and maps chosen row indices back to domain facts
//     (see the sudoku package for a complete reduction).
//   - Dancing links makes backtracking cheap: covering a column unlinks
//     it and every intersecting row in O(cells touched), and uncovering
//     restores the previous linkage field-for-field by replaying the
//     same walk in reverse.
//
// How it hangs together:
//
//	head ⇄ c0 ⇄ c1 ⇄ … ⇄ cN ⇄ head        (horizontal header circle)
//	        ⇵         ⇵
//	      cell ⇄ … ⇄ cell                  (one vertical circle per column,
//	        ⇵         ⇵                     one horizontal circle per row)
//
// Every node lives in one arena addressed by stable indices; search
// relinks, never allocates, and the arena is dropped as a unit when a
// solve ends. Each Solve/Solutions call builds a fresh arena, so solving
// is deterministic and early termination is always safe.
//
// Complexity:
//
//   - Build:        O(columns + memberships) time and space.
//   - cover/uncover: O(cells touched), exactly paired.
//   - Search:       exponential worst case; the MinCount column policy
//     (Knuth's S heuristic) keeps the branching factor minimal.
//
// Errors:
//
//   - ErrUnknownColumn, ErrDuplicateColumn    build-time row validation
//   - ErrRaggedMatrix, ErrMatrixValue         dense-matrix validation
//   - ErrNilInstance                          nil Instance passed to Solve
//   - ErrStopSearch                           clean hook-driven stop (not
//     surfaced by Solve)
//   - context errors                          when a WithContext deadline
//     or cancellation fires
//
// An empty solution stream is a legitimate outcome, not an error: a
// solvable instance with no cover simply yields nothing.
package dlx
