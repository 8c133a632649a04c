package normalform

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// BestResponse returns the strategy that maximizes the player's payoff
// against the opponents' strategies, given in player order with the
// player's own position omitted.
//
// Ties go to the strategy that comes first in StrategiesOf order. That
// order is the order in which strategies were declared or first seen by
// the Builder, so the tie-break depends on how the game was entered. Use
// BestResponses to get every maximizer.
func BestResponse(g *Game, player int, opponents Profile) (Strategy, error) {
	if err := g.validPlayer(player); err != nil {
		return "", err
	}
	sub, err := g.opponentSubscripts(player, opponents)
	if err != nil {
		return "", err
	}

	best := math.Inf(-1)
	bestIdx := -1
	for i := 0; i < g.dims[player]; i++ {
		sub[player] = i
		u, err := g.payoffAt(sub, player)
		if err != nil {
			return "", err
		}
		if u > best {
			best = u
			bestIdx = i
		}
	}

	return g.strategies[player][bestIdx], nil
}

// BestResponses returns every strategy attaining the player's maximum
// payoff against the opponents' strategies, in StrategiesOf order.
func BestResponses(g *Game, player int, opponents Profile) ([]Strategy, error) {
	if err := g.validPlayer(player); err != nil {
		return nil, err
	}
	sub, err := g.opponentSubscripts(player, opponents)
	if err != nil {
		return nil, err
	}

	utilities := make([]float64, g.dims[player])
	best := math.Inf(-1)
	for i := range utilities {
		sub[player] = i
		u, err := g.payoffAt(sub, player)
		if err != nil {
			return nil, err
		}
		utilities[i] = u
		best = math.Max(best, u)
	}

	var result []Strategy
	for i, u := range utilities {
		if u == best {
			result = append(result, g.strategies[player][i])
		}
	}
	return result, nil
}

// BestResponseEntry is one row of a best-response table.
type BestResponseEntry struct {
	Opponents Profile  `yaml:"opponents"`
	Best      Strategy `yaml:"best"`
}

// BestResponseTable lists the player's best response to every profile of
// opponent strategies, in row-major order over the opponents.
func BestResponseTable(g *Game, player int) ([]BestResponseEntry, error) {
	if err := g.validPlayer(player); err != nil {
		return nil, err
	}

	oppDims := g.opponentDims(player)
	var result []BestResponseEntry
	for _, oppSub := range combin.Cartesian(oppDims) {
		opponents := make(Profile, len(oppSub))
		for j, i := range oppSub {
			other := j
			if j >= player {
				other = j + 1
			}
			opponents[j] = g.strategies[other][i]
		}

		best, err := BestResponse(g, player, opponents)
		if err != nil {
			return nil, err
		}
		result = append(result, BestResponseEntry{Opponents: opponents, Best: best})
	}

	return result, nil
}
