package normalform

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

const sumTolerance = 1e-9

// IsConstantSum reports whether the players' payoffs add up to the same
// total at every profile, and returns that total.
func IsConstantSum(g *Game) (float64, bool, error) {
	var total float64
	for k, sub := range combin.Cartesian(g.dims) {
		sum := 0.0
		for player := range g.players {
			u, err := g.payoffAt(sub, player)
			if err != nil {
				return 0, false, err
			}
			sum += u
		}

		if k == 0 {
			total = sum
		} else if math.Abs(sum-total) > sumTolerance {
			return 0, false, nil
		}
	}
	return total, true, nil
}

// IsZeroSum reports whether the payoffs add up to zero at every profile.
func IsZeroSum(g *Game) (bool, error) {
	total, ok, err := IsConstantSum(g)
	if err != nil || !ok {
		return false, err
	}
	return math.Abs(total) <= sumTolerance, nil
}
