package normalform

import (
	"gonum.org/v1/gonum/stat/combin"
)

// ExpectedPayoffs returns each player's expected payoff when every player
// mixes independently according to mp. The sum runs over the full
// Cartesian product of strategy sets, so every profile must have a payoff
// entry even if it is played with probability 0.
//
// mp is validated first; a malformed distribution fails with
// *InvalidDistributionError.
func ExpectedPayoffs(g *Game, mp MixedProfile) ([]float64, error) {
	if err := g.ValidateMixedProfile(mp); err != nil {
		return nil, err
	}

	n := len(g.players)
	result := make([]float64, n)
	for _, sub := range combin.Cartesian(g.dims) {
		prob := 1.0
		for player, i := range sub {
			prob *= mp[player][g.strategies[player][i]]
		}

		for player := 0; player < n; player++ {
			u, err := g.payoffAt(sub, player)
			if err != nil {
				return nil, err
			}
			result[player] += prob * u
		}
	}

	return result, nil
}
