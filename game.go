// Package normalform analyzes finite normal-form games: pure and mixed
// Nash equilibria, best responses, strict dominance and expected payoffs.
//
// A Game is built once with a Builder and is immutable afterwards, so it
// may be shared by concurrent readers. Every analysis returns freshly
// allocated results.
package normalform

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/combin"
)

// Game is a finite normal-form game: an ordered list of players, a
// strategy set per player and a payoff vector for each strategy profile.
//
// Payoffs are stored densely in row-major order over strategy indices,
// so player 0's strategy varies slowest.
type Game struct {
	players    []string
	strategies [][]Strategy
	index      []map[Strategy]int
	dims       []int

	// payoffs[k*N+i] is player i's payoff at the k-th profile.
	payoffs []float64
	present []bool
}

func (g *Game) NumPlayers() int {
	return len(g.players)
}

func (g *Game) Players() []string {
	return append([]string(nil), g.players...)
}

// StrategiesOf returns the given player's strategies in table order: any
// declared strategies first, followed by the strategies projected from the
// payoff entries in the order they were first seen. A strategy the player
// owns but that never appears in the table is not reported.
//
// Returns nil if player is out of range.
func (g *Game) StrategiesOf(player int) []Strategy {
	if player < 0 || player >= len(g.players) {
		return nil
	}
	return append([]Strategy(nil), g.strategies[player]...)
}

func (g *Game) NumStrategies(player int) int {
	if player < 0 || player >= len(g.players) {
		return 0
	}
	return g.dims[player]
}

// NumProfiles returns the size of the Cartesian product of all strategy sets.
func (g *Game) NumProfiles() int {
	n := 1
	for _, d := range g.dims {
		n *= d
	}
	return n
}

// Payoff returns the payoff vector for the given profile. It fails with
// *IncompleteTableError if the profile has no entry, including profiles
// that name a strategy the table never mentions, and with ErrProfileArity
// if the profile has the wrong length.
func (g *Game) Payoff(p Profile) ([]float64, error) {
	sub, err := g.subscripts(p)
	if err != nil {
		return nil, err
	}
	k := combin.IdxFor(sub, g.dims)
	if !g.present[k] {
		return nil, &IncompleteTableError{Profile: p.Clone()}
	}
	n := len(g.players)
	return append([]float64(nil), g.payoffs[k*n:(k+1)*n]...), nil
}

// Profiles enumerates the full Cartesian product of the strategy sets in
// row-major order.
func (g *Game) Profiles() []Profile {
	subs := combin.Cartesian(g.dims)
	result := make([]Profile, len(subs))
	for i, sub := range subs {
		result[i] = g.profileAt(sub)
	}
	return result
}

// Validate checks that the payoff table is total, returning an
// *IncompleteTableError for the first missing profile.
func (g *Game) Validate() error {
	for k, ok := range g.present {
		if !ok {
			sub := combin.SubFor(nil, k, g.dims)
			return &IncompleteTableError{Profile: g.profileAt(sub)}
		}
	}
	return nil
}

// Restrict returns the sub-game in which each player may only use the
// given strategies, in the given order.
func (g *Game) Restrict(strategies [][]Strategy) (*Game, error) {
	if len(strategies) != len(g.players) {
		return nil, errors.Wrapf(ErrProfileArity, "restriction has %d strategy sets, game has %d players",
			len(strategies), len(g.players))
	}

	b := NewBuilder(g.players...)
	for player, ss := range strategies {
		if len(ss) == 0 {
			return nil, errors.Errorf("restriction leaves player %d without strategies", player)
		}
		for _, s := range ss {
			if _, ok := g.index[player][s]; !ok {
				return nil, errors.Wrapf(ErrUnknownStrategy, "player %d strategy %q", player, s)
			}
		}
		b.DeclareStrategies(player, ss...)
	}

	dims := make([]int, len(strategies))
	for player, ss := range strategies {
		dims[player] = len(ss)
	}
	for _, sub := range combin.Cartesian(dims) {
		p := make(Profile, len(sub))
		for player, i := range sub {
			p[player] = strategies[player][i]
		}
		payoffs, err := g.Payoff(p)
		if IsIncompleteTable(err) {
			continue
		} else if err != nil {
			return nil, err
		}
		b.Set(p, payoffs...)
	}

	return b.Build()
}

func (g *Game) validPlayer(player int) error {
	if player < 0 || player >= len(g.players) {
		return errors.Wrapf(ErrInvalidPlayer, "player %d of %d", player, len(g.players))
	}
	return nil
}

func (g *Game) strategyIndex(player int, s Strategy) (int, error) {
	i, ok := g.index[player][s]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownStrategy, "player %d strategy %q", player, s)
	}
	return i, nil
}

func (g *Game) subscripts(p Profile) ([]int, error) {
	if len(p) != len(g.players) {
		return nil, errors.Wrapf(ErrProfileArity, "profile %v has %d strategies, game has %d players",
			p, len(p), len(g.players))
	}
	sub := make([]int, len(p))
	for player, s := range p {
		i, ok := g.index[player][s]
		if !ok {
			// Strategy sets are projected from the table's keys, so an
			// unseen label is just another missing key.
			return nil, &IncompleteTableError{Profile: p.Clone()}
		}
		sub[player] = i
	}
	return sub, nil
}

// opponentSubscripts resolves the other players' strategies into a full
// subscript with a zero placeholder at the given player's position. An
// unknown opponent strategy is reported as a missing profile.
func (g *Game) opponentSubscripts(player int, opponents Profile) ([]int, error) {
	if len(opponents) != len(g.players)-1 {
		return nil, errors.Wrapf(ErrProfileArity, "opponent profile %v has %d strategies, expected %d",
			opponents, len(opponents), len(g.players)-1)
	}
	sub := make([]int, len(g.players))
	for j, s := range opponents {
		other := j
		if j >= player {
			other = j + 1
		}
		i, ok := g.index[other][s]
		if !ok {
			return nil, &IncompleteTableError{Profile: opponents.Insert(player, g.strategies[player][0])}
		}
		sub[other] = i
	}
	return sub, nil
}

func (g *Game) profileAt(sub []int) Profile {
	p := make(Profile, len(sub))
	for player, i := range sub {
		p[player] = g.strategies[player][i]
	}
	return p
}

// payoffAt returns the given player's payoff at a profile subscript.
func (g *Game) payoffAt(sub []int, player int) (float64, error) {
	k := combin.IdxFor(sub, g.dims)
	if !g.present[k] {
		return 0, &IncompleteTableError{Profile: g.profileAt(sub)}
	}
	return g.payoffs[k*len(g.players)+player], nil
}

// opponentDims returns the strategy counts of every player except the
// given one, in player order.
func (g *Game) opponentDims(player int) []int {
	dims := make([]int, 0, len(g.dims)-1)
	dims = append(dims, g.dims[:player]...)
	return append(dims, g.dims[player+1:]...)
}

// fillSubscript writes the opponent subscript oppSub and the player's own
// strategy index into sub.
func fillSubscript(sub []int, player int, own int, oppSub []int) {
	for j, i := range oppSub {
		if j >= player {
			sub[j+1] = i
		} else {
			sub[j] = i
		}
	}
	sub[player] = own
}
