package matrixgame

import (
	"math"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// LinearProgramSolver minimizes c^T x subject to A x = b and x >= 0,
// returning the optimal x.
type LinearProgramSolver interface {
	Solve(c []float64, A *mat.Dense, b []float64) ([]float64, error)
}

// SimplexSolver solves linear programs with gonum's simplex method.
type SimplexSolver struct {
	// Tol is passed to lp.Simplex. Defaults to 1e-10.
	Tol float64
}

func (s SimplexSolver) Solve(c []float64, A *mat.Dense, b []float64) ([]float64, error) {
	tol := s.Tol
	if tol == 0 {
		tol = 1e-10
	}
	_, x, err := lp.Simplex(c, A, b, tol, nil)
	return x, err
}

// SolveLP gives each player the strategy that maximizes the payoff it can
// guarantee against every pure strategy of its opponent. For zero-sum games
// this is a Nash equilibrium. If the program for a player fails, that
// player mixes uniformly and a UniformDistribution fallback is recorded.
func SolveLP(m Bimatrix, solver LinearProgramSolver) Solution {
	var fallbacks []Fallback

	row, v0, err := Maximin(m.A, solver)
	if err != nil {
		glog.Warningf("Row player linear program failed, using uniform strategy: %v", err)
		row = uniform(m.Rows())
		fallbacks = append(fallbacks, Fallback{Player: 0, Policy: UniformDistribution})
	} else {
		glog.V(1).Infof("Row player guarantees %v with %v", v0, row)
	}

	col, v1, err := Maximin(m.colPayoffs(), solver)
	if err != nil {
		glog.Warningf("Column player linear program failed, using uniform strategy: %v", err)
		col = uniform(m.Cols())
		fallbacks = append(fallbacks, Fallback{Player: 1, Policy: UniformDistribution})
	} else {
		glog.V(1).Infof("Column player guarantees %v with %v", v1, col)
	}

	return Solution{
		Row:       row,
		Col:       col,
		Method:    LinearProgram,
		Fallbacks: fallbacks,
	}
}

// Maximin returns the mixed strategy over the rows of payoffs that
// maximizes the minimum expected payoff across columns, along with that
// guaranteed value. payoffs[i][j] is the payoff for playing i against j.
//
// The program is
//
//	maximize v
//	s.t.     sum_i x_i payoffs[i][j] >= v  for every j
//	         sum_i x_i = 1,  x >= 0
//
// Payoffs are shifted so that v is positive at the optimum, which lets v
// be a non-negative variable in standard form. A slack s_j turns each
// inequality into an equality.
func Maximin(payoffs [][]float64, solver LinearProgramSolver) ([]float64, float64, error) {
	m := len(payoffs)
	if m == 0 || len(payoffs[0]) == 0 {
		return nil, 0, errors.New("empty payoff matrix")
	}
	n := len(payoffs[0])

	lowest := math.Inf(1)
	for _, row := range payoffs {
		for _, v := range row {
			lowest = math.Min(lowest, v)
		}
	}
	shift := 1 - lowest

	// Variables: x_0..x_{m-1}, v, s_0..s_{n-1}.
	nVars := m + 1 + n
	A := mat.NewDense(n+1, nVars, nil)
	b := make([]float64, n+1)
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			A.Set(j, i, payoffs[i][j]+shift)
		}
		A.Set(j, m, -1)
		A.Set(j, m+1+j, -1)
	}
	for i := 0; i < m; i++ {
		A.Set(n, i, 1)
	}
	b[n] = 1

	c := make([]float64, nVars)
	c[m] = -1

	x, err := solver.Solve(c, A, b)
	if err != nil {
		return nil, 0, errors.Wrap(err, "solving maximin program")
	}
	if len(x) < m+1 {
		return nil, 0, errors.Errorf("solver returned %d variables, expected at least %d", len(x), m+1)
	}

	strategy, err := normalize(x[:m])
	if err != nil {
		return nil, 0, err
	}
	return strategy, x[m] - shift, nil
}

// normalize clips tiny negative values left by the solver and rescales
// to sum to 1.
func normalize(x []float64) ([]float64, error) {
	result := make([]float64, len(x))
	total := 0.0
	for i, v := range x {
		if !isFinite(v) || v < -1e-6 {
			return nil, errors.Errorf("solver returned invalid probability %v", v)
		}
		result[i] = math.Max(v, 0)
		total += result[i]
	}
	if total <= 0 {
		return nil, errors.New("solver returned an all-zero strategy")
	}
	for i := range result {
		result[i] /= total
	}
	return result, nil
}
