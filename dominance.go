package normalform

import (
	"github.com/golang/glog"
	"gonum.org/v1/gonum/stat/combin"
)

// IsDominated reports whether the player's strategy is strictly dominated
// by some other strategy of the same player: one that yields a strictly
// higher payoff against every profile of opponent strategies.
//
// A player with a single strategy is never dominated.
func IsDominated(g *Game, player int, strategy Strategy) (bool, error) {
	if err := g.validPlayer(player); err != nil {
		return false, err
	}
	own, err := g.strategyIndex(player, strategy)
	if err != nil {
		return false, err
	}

	_, dominated, err := dominator(g, player, own)
	return dominated, err
}

// DominatedStrategies returns the player's strictly dominated strategies
// in StrategiesOf order.
func DominatedStrategies(g *Game, player int) ([]Strategy, error) {
	if err := g.validPlayer(player); err != nil {
		return nil, err
	}

	var result []Strategy
	for i, s := range g.strategies[player] {
		_, dominated, err := dominator(g, player, i)
		if err != nil {
			return nil, err
		}
		if dominated {
			result = append(result, s)
		}
	}
	return result, nil
}

// dominator returns the index of the first strategy that strictly
// dominates own, if any.
func dominator(g *Game, player, own int) (int, bool, error) {
	oppSubs := combin.Cartesian(g.opponentDims(player))
	ownSub := make([]int, len(g.dims))
	altSub := make([]int, len(g.dims))

	for alt := 0; alt < g.dims[player]; alt++ {
		if alt == own {
			continue
		}

		dominated := true
		for _, oppSub := range oppSubs {
			fillSubscript(ownSub, player, own, oppSub)
			fillSubscript(altSub, player, alt, oppSub)
			uOwn, err := g.payoffAt(ownSub, player)
			if err != nil {
				return 0, false, err
			}
			uAlt, err := g.payoffAt(altSub, player)
			if err != nil {
				return 0, false, err
			}
			if uOwn >= uAlt {
				dominated = false
				break
			}
		}

		if dominated {
			return alt, true, nil
		}
	}

	return 0, false, nil
}

// Elimination records one strategy removed by iterated elimination.
type Elimination struct {
	Round       int      `yaml:"round"`
	Player      int      `yaml:"player"`
	Strategy    Strategy `yaml:"strategy"`
	DominatedBy Strategy `yaml:"dominated_by"`
}

// IteratedElimination repeatedly removes strictly dominated strategies
// until none remain. In each round every player's dominated strategies are
// found against the current game and removed together. It returns the
// reduced game and the eliminations in the order they were made.
func IteratedElimination(g *Game) (*Game, []Elimination, error) {
	var eliminations []Elimination
	current := g
	for round := 1; ; round++ {
		surviving := make([][]Strategy, current.NumPlayers())
		removed := false
		for player := range surviving {
			for i, s := range current.strategies[player] {
				by, dominated, err := dominator(current, player, i)
				if err != nil {
					return nil, nil, err
				}
				if dominated {
					removed = true
					eliminations = append(eliminations, Elimination{
						Round:       round,
						Player:      player,
						Strategy:    s,
						DominatedBy: current.strategies[player][by],
					})
					continue
				}
				surviving[player] = append(surviving[player], s)
			}
		}

		if !removed {
			return current, eliminations, nil
		}

		glog.V(2).Infof("Elimination round %d: surviving strategies %v", round, surviving)
		next, err := current.Restrict(surviving)
		if err != nil {
			return nil, nil, err
		}
		current = next
	}
}
