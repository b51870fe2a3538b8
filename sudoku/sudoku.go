package sudoku

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/exactcover/dlx"
)

const (
	gridSize = 9
	boxSize  = 3
	digits   = "123456789"
	blank    = '.'
)

var (
	// ErrBadGrid indicates the input is not 9 rows of 9 cells.
	ErrBadGrid = errors.New("sudoku: grid must be 9 rows of 9 cells")

	// ErrNoSolution indicates no digit assignment completes the grid.
	ErrNoSolution = errors.New("sudoku: no solution")
)

// boxOf returns the 3×3 box index of cell (r, c), row-major 0..8.
func boxOf(r, c int) int {
	return (r/boxSize)*boxSize + c/boxSize
}

// candidate is one tentative placement: digit d at cell (r, c).
type candidate struct {
	r, c int
	d    byte
}

// Puzzle binds a parsed 9×9 board to its exact-cover reduction.
//
// The reduction emits one exact-cover row per candidate placement, with
// four columns: the cell is filled ("p<r><c>"), the row holds the digit
// ("r<r><d>"), the column holds it ("c<c><d>"), and the box holds it
// ("b<box><d>"). Placements conflicting with a given are never emitted,
// and columns already satisfied by givens never appear, so an exact cover
// of the remaining columns is precisely a valid completion of the board.
type Puzzle struct {
	board [gridSize][gridSize]byte // given digits, blank elsewhere
	inst  *dlx.Instance            // instance row i ↔ cands[i]
	cands []candidate
	dead  bool // some empty cell has no admissible digit
}

// New parses grid (one string per row; bytes outside '1'..'9' are treated
// as empty) and builds its exact-cover reduction. Givens are trusted;
// contradictory givens surface later as ErrNoSolution, not here.
func New(grid []string) (*Puzzle, error) {
	// 1. Parse and validate shape.
	if len(grid) != gridSize {
		return nil, fmt.Errorf("sudoku: got %d rows: %w", len(grid), ErrBadGrid)
	}
	p := &Puzzle{}
	for r, line := range grid {
		if len(line) != gridSize {
			return nil, fmt.Errorf("sudoku: row %d has %d cells: %w", r, len(line), ErrBadGrid)
		}
		for c := 0; c < gridSize; c++ {
			if d := line[c]; d >= '1' && d <= '9' {
				p.board[r][c] = d
			} else {
				p.board[r][c] = blank
			}
		}
	}

	// 2. Record which digits the givens already fix per row/column/box.
	var rowHas, colHas, boxHas [gridSize][gridSize + 1]bool
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			if d := p.board[r][c]; d != blank {
				v := int(d - '0')
				rowHas[r][v] = true
				colHas[c][v] = true
				boxHas[boxOf(r, c)][v] = true
			}
		}
	}

	// 3. Emit one exact-cover row per admissible placement. Columns are
	//    declared in first-appearance order, keeping the instance (and
	//    therefore the solution order) deterministic.
	var columns []string
	declared := make(map[string]struct{})
	declare := func(name string) string {
		if _, ok := declared[name]; !ok {
			declared[name] = struct{}{}
			columns = append(columns, name)
		}

		return name
	}

	var rows [][]string
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			if p.board[r][c] != blank {
				continue
			}
			admissible := false
			for i := 0; i < len(digits); i++ {
				d := digits[i]
				v := i + 1
				b := boxOf(r, c)
				if rowHas[r][v] || colHas[c][v] || boxHas[b][v] {
					continue
				}
				admissible = true
				rows = append(rows, []string{
					declare(fmt.Sprintf("p%d%d", r, c)),
					declare(fmt.Sprintf("r%d%c", r, d)),
					declare(fmt.Sprintf("c%d%c", c, d)),
					declare(fmt.Sprintf("b%d%c", b, d)),
				})
				p.cands = append(p.cands, candidate{r: r, c: c, d: d})
			}
			if !admissible {
				// This cell can never be filled; the reduction cannot
				// even represent it, so the puzzle has no solution.
				p.dead = true
			}
		}
	}

	// 4. Hand the abstract instance to the solver core.
	inst, err := dlx.New(columns, rows)
	if err != nil {
		return nil, err
	}
	p.inst = inst

	return p, nil
}

// Instance exposes the underlying exact-cover instance, mainly for
// callers that want to drive dlx.Solve with their own options.
func (p *Puzzle) Instance() *dlx.Instance { return p.inst }

// render overlays the chosen candidates on the given board and returns
// the nine row strings of the completed grid.
func (p *Puzzle) render(chosen []int) []string {
	board := p.board
	for _, ri := range chosen {
		cand := p.cands[ri]
		board[cand.r][cand.c] = cand.d
	}

	out := make([]string, gridSize)
	for r := 0; r < gridSize; r++ {
		out[r] = string(board[r][:])
	}

	return out
}

// Solutions returns the lazy sequence of completed boards, one per exact
// cover, in the solver's deterministic depth-first order. Breaking out of
// the range stops the underlying search.
func (p *Puzzle) Solutions() iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		if p.dead {
			return
		}
		for chosen := range p.inst.Solutions() {
			if !yield(p.render(chosen)) {
				return
			}
		}
	}
}

// Solve returns the first completion of the puzzle, or ErrNoSolution.
func (p *Puzzle) Solve() ([]string, error) {
	for board := range p.Solutions() {
		return board, nil
	}

	return nil, ErrNoSolution
}

// Unique reports whether the puzzle has exactly one completion. It stops
// searching as soon as a second one is found.
func (p *Puzzle) Unique() (bool, error) {
	if p.dead {
		return false, nil
	}

	res, err := dlx.Solve(p.inst, dlx.WithMaxSolutions(2))
	if err != nil {
		return false, err
	}

	return len(res.Solutions) == 1, nil
}

// Solve parses grid and returns its first completion, or ErrNoSolution.
// It is shorthand for New followed by Puzzle.Solve.
func Solve(grid []string) ([]string, error) {
	p, err := New(grid)
	if err != nil {
		return nil, err
	}

	return p.Solve()
}
