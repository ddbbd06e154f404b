package trinet

import "gonum.org/v1/gonum/mat"

const stateEquationTol = 1e-9

// Incidence returns the incidence matrix of the net: one row per
// transition, one column per place, out-weight minus in-weight. A place
// appearing in both sets of a transition contributes zero. The net must
// contain at least one place and one transition.
func (n *Net) Incidence() *mat.Dense {
	rows := len(n.transitions)
	cols := len(n.places)
	d := make([]float64, rows*cols)
	for i, t := range n.transitions {
		for _, p := range t.Incoming() {
			d[i*cols+n.placeIndex[p.Name]]--
		}
		for _, p := range t.Outgoing() {
			d[i*cols+n.placeIndex[p.Name]]++
		}
	}
	return mat.NewDense(rows, cols, d)
}

// FiringVector returns the unit firing-count vector for the transition at
// index t in registration order.
func (n *Net) FiringVector(t int) *mat.Dense {
	v := make([]float64, len(n.transitions))
	v[t] = 1
	return mat.NewDense(1, len(n.transitions), v)
}

func (n *Net) stateVector(m *Marking) *mat.Dense {
	v := make([]float64, len(n.places))
	for i, p := range n.places {
		v[i] = float64(m.TokensAt(p))
	}
	return mat.NewDense(1, len(n.places), v)
}

// StateEquationReachable reports whether target passes the state-equation
// necessary condition from initial: some non-negative real firing-count
// vector x satisfies initial + x·C = target, with C the incidence matrix.
// A false result rules reachability out; a true result does not prove it,
// since the condition ignores firing order and intermediate enablement.
func (n *Net) StateEquationReachable(initial, target *Marking) bool {
	if len(n.places) == 0 || len(n.transitions) == 0 {
		return initial.Equal(target)
	}
	diff := n.stateVector(target)
	diff.Sub(diff, n.stateVector(initial))
	inc := n.Incidence()

	var sol mat.Dense
	if err := sol.Solve(inc.T(), diff.T()); err != nil {
		return false
	}
	for i := range n.transitions {
		if sol.At(i, 0) < -stateEquationTol {
			return false
		}
	}
	// Solve minimizes the residual for overdetermined systems; only an
	// exact solution satisfies the state equation.
	var got mat.Dense
	got.Mul(inc.T(), &sol)
	for i := range n.places {
		if diffAt(&got, diff, i) > stateEquationTol {
			return false
		}
	}
	return true
}

func diffAt(got *mat.Dense, want *mat.Dense, i int) float64 {
	d := got.At(i, 0) - want.At(0, i)
	if d < 0 {
		return -d
	}
	return d
}
