package normalform

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/combin"
)

// Builder accumulates payoff entries for a Game.
//
// Strategy sets are derived from the entries: each player's set is the
// projection of the entered profiles onto that player's coordinate, in
// first-seen order. DeclareStrategies may be used to fix the order or to
// add strategies up front.
type Builder struct {
	players  []string
	declared [][]Strategy
	entries  []entry
	err      error
}

type entry struct {
	profile Profile
	payoffs []float64
}

func NewBuilder(players ...string) *Builder {
	return &Builder{
		players:  append([]string(nil), players...),
		declared: make([][]Strategy, len(players)),
	}
}

// DeclareStrategies adds strategies to the given player's set ahead of
// any strategies projected from payoff entries.
func (b *Builder) DeclareStrategies(player int, strategies ...Strategy) *Builder {
	if b.err != nil {
		return b
	}
	if player < 0 || player >= len(b.players) {
		b.err = errors.Wrapf(ErrInvalidPlayer, "declaring strategies for player %d of %d", player, len(b.players))
		return b
	}
	b.declared[player] = append(b.declared[player], strategies...)
	return b
}

// Set records the payoff vector for a profile.
func (b *Builder) Set(profile Profile, payoffs ...float64) *Builder {
	if b.err != nil {
		return b
	}
	if len(profile) != len(b.players) {
		b.err = errors.Wrapf(ErrProfileArity, "profile %v has %d strategies, game has %d players",
			profile, len(profile), len(b.players))
		return b
	}
	if len(payoffs) != len(b.players) {
		b.err = errors.Wrapf(ErrInvalidPayoff, "profile %v has %d payoffs, game has %d players",
			profile, len(payoffs), len(b.players))
		return b
	}
	for _, v := range payoffs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			b.err = errors.Wrapf(ErrInvalidPayoff, "profile %v has non-finite payoff %v", profile, v)
			return b
		}
	}

	b.entries = append(b.entries, entry{
		profile: profile.Clone(),
		payoffs: append([]float64(nil), payoffs...),
	})
	return b
}

// Build returns the immutable Game. The payoff table need not be total:
// lookups of missing profiles fail with *IncompleteTableError, and
// Game.Validate reports the first one.
func (b *Builder) Build() (*Game, error) {
	if b.err != nil {
		return nil, b.err
	}
	n := len(b.players)
	if n < 2 {
		return nil, errors.Wrapf(ErrTooFewPlayers, "got %d", n)
	}

	g := &Game{
		players:    append([]string(nil), b.players...),
		strategies: make([][]Strategy, n),
		index:      make([]map[Strategy]int, n),
		dims:       make([]int, n),
	}
	for player := range g.players {
		g.index[player] = make(map[Strategy]int)
		for _, s := range b.declared[player] {
			g.addStrategy(player, s)
		}
	}
	for _, e := range b.entries {
		for player, s := range e.profile {
			g.addStrategy(player, s)
		}
	}
	for player, ss := range g.strategies {
		if len(ss) == 0 {
			return nil, errors.Errorf("player %d (%s) has no strategies", player, g.players[player])
		}
		g.dims[player] = len(ss)
	}

	size := g.NumProfiles()
	g.payoffs = make([]float64, size*n)
	g.present = make([]bool, size)
	sub := make([]int, n)
	for _, e := range b.entries {
		for player, s := range e.profile {
			sub[player] = g.index[player][s]
		}
		k := combin.IdxFor(sub, g.dims)
		if g.present[k] {
			return nil, errors.Wrapf(ErrDuplicateProfile, "profile %v", e.profile)
		}
		g.present[k] = true
		copy(g.payoffs[k*n:(k+1)*n], e.payoffs)
	}

	return g, nil
}

func (g *Game) addStrategy(player int, s Strategy) {
	if _, ok := g.index[player][s]; ok {
		return
	}
	g.index[player][s] = len(g.strategies[player])
	g.strategies[player] = append(g.strategies[player], s)
}
