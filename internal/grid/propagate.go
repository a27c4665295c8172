package grid

import "errors"

// ErrContradiction is the distinguished failure result of propagation and
// search: the branch is infeasible. It is an expected outcome, absorbed and
// propagated by Eliminate, Assign, and Solve, never logged internally.
var ErrContradiction = errors.New("contradiction")

// removal is one pending elimination on the worklist.
type removal struct {
	cell  Cell
	digit uint8
}

// Eliminate removes digit from cell's candidate set and propagates any
// forced singletons to peers. Removing an absent digit is an idempotent
// no-op returning the grid unchanged. Emptying a candidate set anywhere in
// the propagation chain yields ErrContradiction, and the input grid is left
// untouched.
func Eliminate(g *Grid, cell Cell, digit uint8) (*Grid, error) {
	if !g.Candidates(cell).Has(digit) {
		return g, nil
	}

	out := g.clone()
	if err := out.eliminate(removal{cell: cell, digit: digit}); err != nil {
		return nil, err
	}

	return out, nil
}

// Assign commits digit to cell by eliminating every other candidate from it,
// threading the grid through each elimination. This is the only way a
// definite value enters a cell; it both places the digit and propagates the
// consequences. Assigning a digit that is not a candidate (including digits
// outside 1..n*n and conflicts with an already-singleton cell) eliminates
// the whole candidate set and so yields ErrContradiction through the same
// path.
func Assign(g *Grid, cell Cell, digit uint8) (*Grid, error) {
	others := g.Candidates(cell).Digits()

	out := g.clone()
	for _, v := range others {
		if v == digit {
			continue
		}
		if err := out.eliminate(removal{cell: cell, digit: v}); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// eliminate removes digits in place, draining an explicit worklist instead
// of recursing through peers so large block sizes cannot exhaust the stack.
// Peers are visited in row-major order, keeping propagation deterministic.
// The receiver must be a private clone.
func (g *Grid) eliminate(first removal) error {
	queue := []removal{first}

	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]

		s := g.cells[r.cell]
		if !s.Has(r.digit) {
			continue
		}

		s = s.Clone()
		s.Remove(r.digit)
		g.cells[r.cell] = s

		switch s.Len() {
		case 0:
			// last candidate gone, branch is impossible
			return ErrContradiction
		case 1:
			forced, _ := s.Sole()
			for _, peer := range g.topo.peers[r.cell] {
				queue = append(queue, removal{cell: peer, digit: forced})
			}
		}
	}

	return nil
}
