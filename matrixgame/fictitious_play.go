package matrixgame

import (
	"math"
	"math/rand"

	"github.com/golang/glog"
)

// FictitiousPlay approximates a mixed equilibrium by having each player
// repeatedly best respond to the empirical frequency of the other's past
// plays. With probability mixingLambda a player instead picks uniformly
// at random. It returns the empirical play frequencies after nIter rounds.
//
// Convergence is only guaranteed for zero-sum games; for general-sum
// games the result is a heuristic cross-check.
func FictitiousPlay(m Bimatrix, nIter int, mixingLambda float64, rng *rand.Rand) ([]float64, []float64) {
	rowCounts := make([]int, m.Rows())
	colCounts := make([]int, m.Cols())
	logEvery := nIter / 10
	for i := 1; i <= nIter; i++ {
		var rowSelected int
		if rng.Float64() < mixingLambda {
			rowSelected = rng.Intn(len(rowCounts))
		} else {
			rowSelected = getRowBestResponse(m.A, colCounts, rng)
		}

		var colSelected int
		if rng.Float64() < mixingLambda {
			colSelected = rng.Intn(len(colCounts))
		} else {
			colSelected = getColBestResponse(m.B, rowCounts, rng)
		}
		rowCounts[rowSelected] += 1
		colCounts[colSelected] += 1

		if logEvery > 0 && i%logEvery == 0 {
			glog.V(1).Infof("After %d iterations, row player weights: %v", i, frequencies(rowCounts))
			glog.V(1).Infof("After %d iterations, column player weights: %v", i, frequencies(colCounts))
		}
	}

	return frequencies(rowCounts), frequencies(colCounts)
}

func getRowBestResponse(a [][]float64, colCounts []int, rng *rand.Rand) int {
	utilities := make([]float64, len(a))
	for j, c := range colCounts {
		for i := range utilities {
			utilities[i] += float64(c) * a[i][j]
		}
	}

	_, br := argMax(utilities, rng)
	return br
}

func getColBestResponse(b [][]float64, rowCounts []int, rng *rand.Rand) int {
	utilities := make([]float64, len(b[0]))
	for i, c := range rowCounts {
		for j := range utilities {
			utilities[j] += float64(c) * b[i][j]
		}
	}

	_, br := argMax(utilities, rng)
	return br
}

func frequencies(counts []int) []float64 {
	total := 0
	for _, v := range counts {
		total += v
	}

	if total == 0 {
		return uniform(len(counts))
	}
	result := make([]float64, len(counts))
	for i, v := range counts {
		result[i] = float64(v) / float64(total)
	}
	return result
}

// argMax breaks ties between equal utilities at random.
func argMax(vs []float64, rng *rand.Rand) (float64, int) {
	best := -math.MaxFloat64
	bestIdx := 0
	for i, v := range vs {
		if v > best {
			best = v
			bestIdx = i
		} else if v == best && rng.Intn(2) == 1 {
			bestIdx = i
		}
	}

	return best, bestIdx
}
