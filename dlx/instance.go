package dlx

import (
	"fmt"
	"strconv"
)

// Instance is an exact-cover problem: an ordered set of named columns and
// an ordered collection of rows, each row an ordered subset of the
// columns. An Instance is immutable once built; every Solve or Solutions
// call constructs its own fabric from it, so one Instance may be solved
// any number of times (always producing the same sequence) and an
// abandoned, partly-unwound search can never corrupt a later one.
type Instance struct {
	columns []string         // declared column identifiers, in order
	index   map[string]int32 // identifier → column ordinal
	rows    [][]int32        // per row, member column ordinals in given order
	cells   int              // total number of (row, column) memberships
}

// New builds an Instance from declared columns and rows of column
// identifiers. Row order and within-row column order are preserved; they
// fix the tie-breaking (and therefore the solution order) of the search,
// never its correctness.
//
// Zero columns is a valid, trivially solved instance: the empty row
// selection covers nothing exactly once, so it is the single solution.
//
// Errors:
//   - ErrUnknownColumn   if a row references an undeclared column
//   - ErrDuplicateColumn if a row names the same column twice, or the
//     declared column set itself repeats an identifier
func New(columns []string, rows [][]string) (*Instance, error) {
	in := &Instance{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int32, len(columns)),
		rows:    make([][]int32, 0, len(rows)),
	}
	for i, name := range in.columns {
		if _, dup := in.index[name]; dup {
			return nil, fmt.Errorf("dlx: column %q declared twice: %w", name, ErrDuplicateColumn)
		}
		in.index[name] = int32(i)
	}

	for ri, row := range rows {
		members := make([]int32, 0, len(row))
		seen := make(map[int32]struct{}, len(row))
		for _, name := range row {
			ci, ok := in.index[name]
			if !ok {
				return nil, fmt.Errorf("dlx: row %d references %q: %w", ri, name, ErrUnknownColumn)
			}
			if _, dup := seen[ci]; dup {
				return nil, fmt.Errorf("dlx: row %d names %q twice: %w", ri, name, ErrDuplicateColumn)
			}
			seen[ci] = struct{}{}
			members = append(members, ci)
		}
		in.rows = append(in.rows, members)
		in.cells += len(members)
	}

	return in, nil
}

// NewFromMatrix builds an Instance from a dense 0/1 membership matrix:
// m[r][c] == 1 means row r contains column c. Columns are named by their
// index ("0", "1", …). All rows must have the same length as the first.
//
// Errors:
//   - ErrRaggedMatrix if rows differ in length
//   - ErrMatrixValue  if any entry is not 0 or 1
func NewFromMatrix(m [][]int) (*Instance, error) {
	var width int
	if len(m) > 0 {
		width = len(m[0])
	}

	columns := make([]string, width)
	for c := 0; c < width; c++ {
		columns[c] = strconv.Itoa(c)
	}

	rows := make([][]string, len(m))
	for r, mr := range m {
		if len(mr) != width {
			return nil, fmt.Errorf("dlx: matrix row %d has length %d, want %d: %w", r, len(mr), width, ErrRaggedMatrix)
		}
		for c, v := range mr {
			switch v {
			case 0:
				// not a member
			case 1:
				rows[r] = append(rows[r], columns[c])
			default:
				return nil, fmt.Errorf("dlx: matrix entry [%d][%d] = %d: %w", r, c, v, ErrMatrixValue)
			}
		}
	}

	return New(columns, rows)
}

// NumColumns reports the number of declared columns.
func (in *Instance) NumColumns() int { return len(in.columns) }

// NumRows reports the number of declared rows.
func (in *Instance) NumRows() int { return len(in.rows) }

// Columns returns a copy of the declared column identifiers in order.
func (in *Instance) Columns() []string {
	return append([]string(nil), in.columns...)
}

// Row returns the column identifiers of row i, in the order they were
// given at construction.
func (in *Instance) Row(i int) []string {
	names := make([]string, len(in.rows[i]))
	for k, ci := range in.rows[i] {
		names[k] = in.columns[ci]
	}

	return names
}
