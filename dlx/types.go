// Package dlx defines types and options for the dancing-links exact-cover
// solver, including cancellation, a per-solution hook, solution limiting,
// column-selection policy, and basic diagnostics.
package dlx

import (
	"context"
	"errors"
)

var (
	// ErrNilInstance is returned when a nil *Instance is passed to Solve.
	ErrNilInstance = errors.New("dlx: instance is nil")

	// ErrUnknownColumn indicates that a row references a column identifier
	// absent from the declared column set. Detected at build time; the
	// instance is not usable.
	ErrUnknownColumn = errors.New("dlx: row references unknown column")

	// ErrDuplicateColumn indicates that a row names the same column more
	// than once, or that the declared column set repeats an identifier.
	// Detected at build time rather than silently deduplicated.
	ErrDuplicateColumn = errors.New("dlx: duplicate column in row")

	// ErrRaggedMatrix indicates dense-matrix rows of differing lengths.
	ErrRaggedMatrix = errors.New("dlx: all matrix rows must have the same length")

	// ErrMatrixValue indicates a dense-matrix entry other than 0 or 1.
	ErrMatrixValue = errors.New("dlx: matrix entries must be 0 or 1")

	// ErrStopSearch may be returned from an OnSolution hook to stop the
	// search cleanly: Solve returns the solutions found so far and a nil
	// error. Any other hook error aborts the search and is propagated.
	ErrStopSearch = errors.New("dlx: stop search")
)

// ColumnPolicy selects which uncovered column the search branches on.
// The policy affects the order solutions are produced in (and how much of
// the tree is explored), never which solutions exist.
type ColumnPolicy int

const (
	// MinCount branches on the uncovered column with the fewest active
	// cells, ties broken by header-circle order. This is Knuth's S
	// heuristic and minimizes the branching factor. Default.
	MinCount ColumnPolicy = iota

	// FirstActive branches on the leftmost uncovered column. Useful when a
	// naive, declaration-order exploration is wanted (e.g. for comparing
	// against hand-computed traces).
	FirstActive
)

// Option configures optional behavior of the search.
// Use with Solve(inst, opts...).
type Option func(*Options)

// Options holds configurable parameters for one solve.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the search at the next branch node.
	Ctx context.Context

	// MaxSolutions, if positive, stops the search after that many
	// solutions have been produced. Zero means unlimited.
	MaxSolutions int

	// OnSolution, if non-nil, is invoked for each solution as it is found,
	// with the chosen original row indices in choice order. The slice is
	// freshly allocated and may be retained. Returning ErrStopSearch stops
	// the search cleanly; any other non-nil error aborts it with that error.
	OnSolution func(rows []int) error

	// Policy selects the column-branching rule. Default MinCount.
	Policy ColumnPolicy
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No solution limit
//   - No per-solution hook
//   - MinCount column policy
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		MaxSolutions: 0,
		OnSolution:   nil,
		Policy:       MinCount,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSolutions returns an Option that stops the search after n
// solutions. A non-positive n means unlimited.
func WithMaxSolutions(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxSolutions = n
		}
	}
}

// WithOnSolution returns an Option that installs fn as a per-solution
// hook. See Options.OnSolution for the error contract.
func WithOnSolution(fn func(rows []int) error) Option {
	return func(o *Options) {
		o.OnSolution = fn
	}
}

// WithColumnPolicy returns an Option that sets the column-branching rule.
func WithColumnPolicy(p ColumnPolicy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// Result captures the outcome of a Solve call.
type Result struct {
	// Solutions lists every exact cover found, in depth-first discovery
	// order. Each solution holds original row indices in the order the
	// search chose them (not necessarily ascending).
	Solutions [][]int

	// NodesVisited counts row choices explored across the whole search
	// tree, including branches that dead-ended. Useful for comparing
	// column policies or instance encodings.
	NodesVisited int
}
