package matrixgame

import (
	"fmt"

	"github.com/golang/glog"
)

// SolveClosedForm solves a 2x2 game from the indifference equations. The
// column player's probability q of its first strategy is chosen to make
// the row player indifferent between its two strategies, and vice versa.
//
// With a = A[0][0]-A[1][0] and b = A[0][1]-A[1][1], indifference requires
// q*a + (1-q)*b = 0, so q = b/(b-a). If a == b there is no unique solution
// and q = 0.5. If q falls outside [0, 1] it is clamped. Both cases are
// recorded in Solution.Fallbacks.
//
// It panics if m is not 2x2.
func SolveClosedForm(m Bimatrix) Solution {
	if m.Rows() != 2 || m.Cols() != 2 {
		panic(fmt.Errorf("closed-form solution requires a 2x2 game, got %dx%d", m.Rows(), m.Cols()))
	}

	// The row player's mix makes the column player indifferent.
	c := m.B[0][0] - m.B[0][1]
	d := m.B[1][0] - m.B[1][1]
	p, rowPolicy, rowOK := indifference(c, d)

	a := m.A[0][0] - m.A[1][0]
	b := m.A[0][1] - m.A[1][1]
	q, colPolicy, colOK := indifference(a, b)

	var fallbacks []Fallback
	if !rowOK {
		glog.Warningf("Row player strategy falls back to %v (p = %v)", rowPolicy, p)
		fallbacks = append(fallbacks, Fallback{Player: 0, Policy: rowPolicy})
	}
	if !colOK {
		glog.Warningf("Column player strategy falls back to %v (q = %v)", colPolicy, q)
		fallbacks = append(fallbacks, Fallback{Player: 1, Policy: colPolicy})
	}

	return Solution{
		Row:       []float64{p, 1 - p},
		Col:       []float64{q, 1 - q},
		Method:    ClosedForm,
		Fallbacks: fallbacks,
	}
}

// indifference solves x*prob + y*(1-prob) = 0 for prob.
func indifference(x, y float64) (float64, Policy, bool) {
	if x == y {
		return 0.5, DegenerateIndifference, false
	}

	prob := y / (y - x)
	if prob < 0 {
		return 0, ClampedIndifference, false
	} else if prob > 1 {
		return 1, ClampedIndifference, false
	}
	return prob, 0, true
}
