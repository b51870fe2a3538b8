package dlx

import (
	"errors"
	"fmt"
	"iter"
)

// searcher carries the state of one depth-first search over one fabric.
type searcher struct {
	f     *fabric
	opts  Options
	stack []int32 // tentatively chosen rows (original indices)
	found int     // solutions produced so far
	nodes int     // row choices explored, for diagnostics
}

// Solve finds exact covers of in, collecting them into a Result. Options
// bound the search (WithMaxSolutions), stream it (WithOnSolution), cancel
// it (WithContext), or change its branching order (WithColumnPolicy).
//
// A fresh fabric is built per call, so repeated solves of the same
// Instance are independent and yield identical sequences.
//
// On abort (context done, or a hook error other than ErrStopSearch) the
// partial Result gathered so far is returned along with the error.
//
// Complexity: building is O(columns + cells); the search is exponential
// in the worst case, O(cells) per tree node touched.
func Solve(in *Instance, opts ...Option) (*Result, error) {
	// 1. Validate input.
	if in == nil {
		return nil, ErrNilInstance
	}

	// 2. Apply options.
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	// 3. Collect each solution before handing it to any caller hook.
	res := &Result{}
	userHook := o.OnSolution
	o.OnSolution = func(rows []int) error {
		res.Solutions = append(res.Solutions, rows)
		if userHook != nil {
			return userHook(rows)
		}

		return nil
	}

	// 4. Run the search over a fresh fabric.
	s := &searcher{f: newFabric(in), opts: o}
	err := s.search()
	res.NodesVisited = s.nodes

	// 5. A clean stop (solution limit, or ErrStopSearch from the hook)
	//    is a successful outcome.
	if err != nil && !errors.Is(err, ErrStopSearch) {
		return res, err
	}

	return res, nil
}

// Solutions returns the lazy sequence of exact covers of in, in
// depth-first, first-found-first-produced order. Each value is a freshly
// allocated slice of original row indices in choice order. Breaking out
// of the range stops the search; the per-call fabric is simply discarded,
// so early termination needs no further cleanup and never affects a later
// solve of the same Instance.
func (in *Instance) Solutions() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		s := &searcher{f: newFabric(in), opts: DefaultOptions()}
		s.opts.OnSolution = func(rows []int) error {
			if !yield(rows) {
				return ErrStopSearch
			}

			return nil
		}
		// Only ErrStopSearch can surface here: the context is Background
		// and the hook returns nothing else.
		_ = s.search()
	}
}

// search explores the current fabric state depth-first. Every cover is
// paired with an uncover in strict reverse order on every path out,
// including aborts, so the fabric is fully restored by the time the
// outermost call returns.
func (s *searcher) search() error {
	// 1. Cancellation check, once per branch node.
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
	}

	n := s.f.nodes

	// 2. Terminal state: the head is its own east neighbor, meaning every
	//    column is covered — the chosen rows form an exact cover.
	if n[headNode].east == headNode {
		return s.emit()
	}

	// 3. Choose a column and cover it. A live-count of zero just means
	//    the row loop below never runs: the natural dead end.
	c := s.chooseColumn()
	s.f.cover(c)

	// 4. Try each row of c, top to bottom.
	var err error
	var r, j int32
	for r = n[c].south; r != c; r = n[r].south {
		s.nodes++
		s.stack = append(s.stack, n[r].row)

		// 4a. Cover every other column of this row, west to east.
		for j = n[r].east; j != r; j = n[j].east {
			s.f.cover(n[j].col)
		}

		// 4b. Recurse.
		err = s.search()

		// 4c. Uncover in exact reverse order, east to west.
		for j = n[r].west; j != r; j = n[j].west {
			s.f.uncover(n[j].col)
		}
		s.stack = s.stack[:len(s.stack)-1]

		if err != nil {
			break
		}
	}

	// 5. Restore c itself; this branch is exhausted (or aborting).
	s.f.uncover(c)

	return err
}

// chooseColumn picks the uncovered column to branch on, per policy.
// FirstActive takes the head's east neighbor; MinCount scans the header
// circle for the smallest live-count, first-seen winning ties. Must not
// be called in the terminal state.
func (s *searcher) chooseColumn() int32 {
	n := s.f.nodes
	best := n[headNode].east
	if s.opts.Policy == FirstActive {
		return best
	}

	for c := n[best].east; c != headNode; c = n[c].east {
		if n[c].count < n[best].count {
			best = c
		}
	}

	return best
}

// emit snapshots the chosen-row stack as one solution and applies the
// hook and limit policies.
func (s *searcher) emit() error {
	rows := make([]int, len(s.stack))
	for i, r := range s.stack {
		rows[i] = int(r)
	}
	s.found++

	if s.opts.OnSolution != nil {
		if err := s.opts.OnSolution(rows); err != nil {
			if errors.Is(err, ErrStopSearch) {
				return ErrStopSearch
			}

			return fmt.Errorf("dlx: OnSolution hook: %w", err)
		}
	}

	if s.opts.MaxSolutions > 0 && s.found >= s.opts.MaxSolutions {
		return ErrStopSearch
	}

	return nil
}
