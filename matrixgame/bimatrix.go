// Package matrixgame solves 2-player games given as a pair of payoff
// matrices.
package matrixgame

import (
	"math"

	"github.com/pkg/errors"
)

// Bimatrix is a 2-player normal-form game. A[i][j] and B[i][j] are the row
// and column player's payoffs when the row player plays i and the column
// player plays j.
type Bimatrix struct {
	A [][]float64
	B [][]float64
}

func NewBimatrix(a, b [][]float64) (Bimatrix, error) {
	if len(a) == 0 || len(a[0]) == 0 {
		return Bimatrix{}, errors.New("payoff matrix is empty")
	}
	if len(b) != len(a) {
		return Bimatrix{}, errors.Errorf("payoff matrices have %d and %d rows", len(a), len(b))
	}
	cols := len(a[0])
	for i := range a {
		if len(a[i]) != cols || len(b[i]) != cols {
			return Bimatrix{}, errors.Errorf("payoff matrix row %d does not have %d columns", i, cols)
		}
		for j := range a[i] {
			if !isFinite(a[i][j]) || !isFinite(b[i][j]) {
				return Bimatrix{}, errors.Errorf("non-finite payoff at (%d, %d)", i, j)
			}
		}
	}
	return Bimatrix{A: a, B: b}, nil
}

// NewZeroSum returns the bimatrix game in which the column player receives
// the negation of the row player's payoff.
func NewZeroSum(a [][]float64) (Bimatrix, error) {
	b := make([][]float64, len(a))
	for i, row := range a {
		b[i] = make([]float64, len(row))
		for j, v := range row {
			b[i][j] = -v
		}
	}
	return NewBimatrix(a, b)
}

func (m Bimatrix) Rows() int { return len(m.A) }

func (m Bimatrix) Cols() int { return len(m.A[0]) }

// ExpectedPayoffs returns both players' expected payoffs when they mix
// independently with the given distributions.
func (m Bimatrix) ExpectedPayoffs(row, col []float64) (float64, float64) {
	var u0, u1 float64
	for i, p := range row {
		for j, q := range col {
			u0 += p * q * m.A[i][j]
			u1 += p * q * m.B[i][j]
		}
	}
	return u0, u1
}

// colPayoffs returns the column player's payoffs with its own strategies
// as rows.
func (m Bimatrix) colPayoffs() [][]float64 {
	result := make([][]float64, m.Cols())
	for j := range result {
		result[j] = make([]float64, m.Rows())
		for i := range m.B {
			result[j][i] = m.B[i][j]
		}
	}
	return result
}

func uniform(n int) []float64 {
	result := make([]float64, n)
	for i := range result {
		result[i] = 1 / float64(n)
	}
	return result
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
