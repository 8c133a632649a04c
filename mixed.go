package normalform

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/timpalpant/normalform/matrixgame"
)

// DistributionTolerance bounds how far a mixed strategy's probabilities
// may sum away from 1.
const DistributionTolerance = 1e-6

// MixedStrategy maps a player's strategies to the probability of playing
// them. Strategies without an entry are played with probability 0.
type MixedStrategy map[Strategy]float64

// MixedProfile holds one independent mixed strategy per player, indexed
// by player.
type MixedProfile []MixedStrategy

// Pure returns the mixed profile that plays the given profile with
// certainty.
func Pure(p Profile) MixedProfile {
	result := make(MixedProfile, len(p))
	for player, s := range p {
		result[player] = MixedStrategy{s: 1}
	}
	return result
}

// ValidateMixedProfile checks that mp has one distribution per player,
// and that each distribution is non-negative, sums to 1 within
// DistributionTolerance and only names the player's own strategies.
// Failures are reported as *InvalidDistributionError.
func (g *Game) ValidateMixedProfile(mp MixedProfile) error {
	if len(mp) != len(g.players) {
		return &InvalidDistributionError{
			Player: -1,
			Reason: fmt.Sprintf("profile has %d distributions, game has %d players", len(mp), len(g.players)),
		}
	}

	for player, ms := range mp {
		total := 0.0
		for s, prob := range ms {
			if _, ok := g.index[player][s]; !ok {
				return &InvalidDistributionError{Player: player, Reason: fmt.Sprintf("unknown strategy %q", s)}
			}
			if math.IsNaN(prob) || math.IsInf(prob, 0) || prob < 0 {
				return &InvalidDistributionError{Player: player, Reason: fmt.Sprintf("strategy %q has probability %v", s, prob)}
			}
			total += prob
		}
		if math.Abs(total-1) > DistributionTolerance {
			return &InvalidDistributionError{Player: player, Reason: fmt.Sprintf("probabilities sum to %v", total)}
		}
	}

	return nil
}

// MixedEquilibrium is a mixed-strategy Nash equilibrium of a 2-player game
// along with how it was found. Fallbacks lists the players whose strategy
// came from a fallback policy rather than an exact solution.
type MixedEquilibrium struct {
	Profile   MixedProfile          `yaml:"profile"`
	Method    matrixgame.Method     `yaml:"method"`
	Fallbacks []matrixgame.Fallback `yaml:"fallbacks,omitempty"`
}

type mixedOptions struct {
	lp matrixgame.LinearProgramSolver
}

type MixedOption func(*mixedOptions)

// WithLPSolver replaces the linear program solver used for games larger
// than 2x2.
func WithLPSolver(solver matrixgame.LinearProgramSolver) MixedOption {
	return func(o *mixedOptions) {
		o.lp = solver
	}
}

// FindMixedEquilibrium solves a 2-player game for a mixed-strategy
// equilibrium. 2x2 games use the closed-form indifference solution; larger
// games solve a maximin linear program for each player. Degenerate cases
// fall back to documented policies recorded in the result rather than
// failing; see matrixgame.Policy.
//
// Games with more than two players return ErrNotTwoPlayer.
func FindMixedEquilibrium(g *Game, opts ...MixedOption) (MixedEquilibrium, error) {
	o := mixedOptions{lp: matrixgame.SimplexSolver{}}
	for _, opt := range opts {
		opt(&o)
	}

	m, err := g.Bimatrix()
	if err != nil {
		return MixedEquilibrium{}, err
	}

	sol := matrixgame.Solve(m, matrixgame.Options{LP: o.lp})
	return MixedEquilibrium{
		Profile:   g.mixedProfile(sol.Row, sol.Col),
		Method:    sol.Method,
		Fallbacks: sol.Fallbacks,
	}, nil
}

// Bimatrix returns the payoff matrices of a 2-player game, with rows and
// columns in StrategiesOf order.
func (g *Game) Bimatrix() (matrixgame.Bimatrix, error) {
	if len(g.players) != 2 {
		return matrixgame.Bimatrix{}, errors.Wrapf(ErrNotTwoPlayer, "game has %d players", len(g.players))
	}

	a := make([][]float64, g.dims[0])
	b := make([][]float64, g.dims[0])
	sub := make([]int, 2)
	for i := range a {
		a[i] = make([]float64, g.dims[1])
		b[i] = make([]float64, g.dims[1])
		for j := range a[i] {
			sub[0], sub[1] = i, j
			var err error
			if a[i][j], err = g.payoffAt(sub, 0); err != nil {
				return matrixgame.Bimatrix{}, err
			}
			if b[i][j], err = g.payoffAt(sub, 1); err != nil {
				return matrixgame.Bimatrix{}, err
			}
		}
	}

	return matrixgame.NewBimatrix(a, b)
}

func (g *Game) mixedProfile(dists ...[]float64) MixedProfile {
	result := make(MixedProfile, len(dists))
	for player, dist := range dists {
		result[player] = make(MixedStrategy, len(dist))
		for i, prob := range dist {
			result[player][g.strategies[player][i]] = prob
		}
	}
	return result
}
