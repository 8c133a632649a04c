package matrixgame

import (
	"math"
	"math/rand"
	"testing"
)

func TestFictitiousPlay_RockPaperScissors(t *testing.T) {
	winRateMatrix := [][]float64{
		[]float64{0, -1, 1}, // Player 0 plays rock.
		[]float64{1, 0, -1}, // Player 0 plays paper.
		[]float64{-1, 1, 0}, // Player 0 plays scissors.
	}
	m, err := NewZeroSum(winRateMatrix)
	if err != nil {
		t.Fatal(err)
	}

	p0, p1 := FictitiousPlay(m, 50000, 0, rand.New(rand.NewSource(123)))
	t.Logf("Player 0 Nash equilibrium policy: %v", p0)
	t.Logf("Player 1 Nash equilibrium policy: %v", p1)
	for i := range p0 {
		if math.Abs(p0[i]-1.0/3) > 0.05 {
			t.Errorf("player 0 plays %d with frequency %v, expected ~1/3", i, p0[i])
		}
		if math.Abs(p1[i]-1.0/3) > 0.05 {
			t.Errorf("player 1 plays %d with frequency %v, expected ~1/3", i, p1[i])
		}
	}
}

func TestFictitiousPlay_DominantStrategies(t *testing.T) {
	// Prisoner's dilemma: defecting (index 1) is dominant for both players.
	m, err := NewBimatrix(
		[][]float64{{-1, -3}, {0, -2}},
		[][]float64{{-1, 0}, {-3, -2}},
	)
	if err != nil {
		t.Fatal(err)
	}

	p0, p1 := FictitiousPlay(m, 1000, 0, rand.New(rand.NewSource(1)))
	if p0[1] < 0.99 || p1[1] < 0.99 {
		t.Errorf("expected both players to defect, got %v and %v", p0, p1)
	}
}

func TestFictitiousPlay_ZeroIterations(t *testing.T) {
	m, err := NewZeroSum([][]float64{{1, -1}, {-1, 1}})
	if err != nil {
		t.Fatal(err)
	}

	p0, p1 := FictitiousPlay(m, 0, 0, rand.New(rand.NewSource(1)))
	for i := range p0 {
		if p0[i] != 0.5 || p1[i] != 0.5 {
			t.Errorf("expected uniform frequencies before any play, got %v and %v", p0, p1)
		}
	}
}
