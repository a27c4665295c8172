package grid

import "errors"

// ErrNoUnassignedCell reports a variable-selection call on a grid where
// every cell is already a singleton. Callers must check Solved first; this
// is a caller bug, distinct from ErrContradiction.
var ErrNoUnassignedCell = errors.New("no unassigned cell")

// SelectCell picks the next cell to branch on. It must never return a cell
// whose candidate set is a singleton.
type SelectCell func(*Grid) (Cell, error)

// OrderValues returns the trial order for the candidates of a cell.
type OrderValues func(*Grid, Cell) []uint8

// Solve performs depth-first search over grid states, branching on the cell
// chosen by selectCell and trying its candidates in the order given by
// orderValues. Propagation inside Assign prunes most branches before they
// are explored; the first solution found under the given ordering is
// returned. An infeasible grid yields ErrContradiction. Any non-contradiction
// error from selectCell aborts the search unchanged.
func Solve(g *Grid, selectCell SelectCell, orderValues OrderValues) (*Grid, error) {
	if g.Solved() {
		return g, nil
	}

	cell, err := selectCell(g)
	if err != nil {
		return nil, err
	}

	for _, d := range orderValues(g, cell) {
		next, err := Assign(g, cell, d)
		if err != nil {
			if errors.Is(err, ErrContradiction) {
				continue
			}
			return nil, err
		}

		solved, err := Solve(next, selectCell, orderValues)
		if err == nil {
			return solved, nil
		}
		if !errors.Is(err, ErrContradiction) {
			return nil, err
		}
	}

	// Every trial value failed, so the whole branch fails.
	return nil, ErrContradiction
}
