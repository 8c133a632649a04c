// Package games provides a catalog of classic normal-form games and a YAML
// file format for defining new ones.
package games

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/timpalpant/normalform"
)

var players2 = []string{"Player 1", "Player 2"}

const (
	Cooperate normalform.Strategy = "Cooperate"
	Defect    normalform.Strategy = "Defect"

	Ballet normalform.Strategy = "Ballet"
	Fight  normalform.Strategy = "Fight"

	Heads normalform.Strategy = "Heads"
	Tails normalform.Strategy = "Tails"

	Hawk normalform.Strategy = "Hawk"
	Dove normalform.Strategy = "Dove"

	Rock     normalform.Strategy = "Rock"
	Paper    normalform.Strategy = "Paper"
	Scissors normalform.Strategy = "Scissors"
)

// PrisonersDilemma: mutual cooperation beats mutual defection, but
// defecting is dominant.
func PrisonersDilemma() *normalform.Game {
	return mustBuild(normalform.NewBuilder(players2...).
		Set(normalform.Profile{Cooperate, Cooperate}, -1, -1).
		Set(normalform.Profile{Cooperate, Defect}, -3, 0).
		Set(normalform.Profile{Defect, Cooperate}, 0, -3).
		Set(normalform.Profile{Defect, Defect}, -2, -2))
}

// BattleOfTheSexes is a coordination game in which the players disagree
// on which outcome is better.
func BattleOfTheSexes() *normalform.Game {
	return mustBuild(normalform.NewBuilder(players2...).
		Set(normalform.Profile{Ballet, Ballet}, 1, 2).
		Set(normalform.Profile{Ballet, Fight}, 0, 0).
		Set(normalform.Profile{Fight, Ballet}, 0, 0).
		Set(normalform.Profile{Fight, Fight}, 2, 1))
}

// MatchingPennies is zero-sum with no pure equilibrium.
func MatchingPennies() *normalform.Game {
	return mustBuild(normalform.NewBuilder(players2...).
		Set(normalform.Profile{Heads, Heads}, 1, -1).
		Set(normalform.Profile{Heads, Tails}, -1, 1).
		Set(normalform.Profile{Tails, Heads}, -1, 1).
		Set(normalform.Profile{Tails, Tails}, 1, -1))
}

// HawkDove is a contest over a resource of the given value. Two hawks
// fight and share the value less the cost; a hawk takes everything from
// a dove; two doves split it.
func HawkDove(value, cost float64) (*normalform.Game, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return nil, errors.Errorf("invalid hawk-dove parameters: value=%v, cost=%v", value, cost)
	}

	fight := (value - cost) / 2
	return normalform.NewBuilder(players2...).
		Set(normalform.Profile{Hawk, Hawk}, fight, fight).
		Set(normalform.Profile{Hawk, Dove}, value, 0).
		Set(normalform.Profile{Dove, Hawk}, 0, value).
		Set(normalform.Profile{Dove, Dove}, value/2, value/2).
		Build()
}

// RockPaperScissors is zero-sum; its unique equilibrium mixes uniformly.
func RockPaperScissors() *normalform.Game {
	strategies := []normalform.Strategy{Rock, Paper, Scissors}
	b := normalform.NewBuilder(players2...)
	for i, s0 := range strategies {
		for j, s1 := range strategies {
			// Each strategy beats the one before it.
			var u float64
			switch (j - i + 3) % 3 {
			case 1:
				u = -1
			case 2:
				u = 1
			}
			b.Set(normalform.Profile{s0, s1}, u, -u)
		}
	}
	return mustBuild(b)
}

// Default Hawk-Dove parameters used by ByName. The value exceeds the cost,
// so Hawk is dominant and (Hawk, Hawk) is the only equilibrium.
const (
	DefaultHawkDoveValue = 4
	DefaultHawkDoveCost  = 2
)

var catalog = map[string]func() *normalform.Game{
	"prisoners_dilemma":   PrisonersDilemma,
	"battle_of_the_sexes": BattleOfTheSexes,
	"matching_pennies":    MatchingPennies,
	"rock_paper_scissors": RockPaperScissors,
	"hawk_dove": func() *normalform.Game {
		return must(HawkDove(DefaultHawkDoveValue, DefaultHawkDoveCost))
	},
}

// Names returns the catalog's game names in sorted order.
func Names() []string {
	result := make([]string, 0, len(catalog))
	for name := range catalog {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// ByName returns a game from the catalog.
func ByName(name string) (*normalform.Game, error) {
	newGame, ok := catalog[name]
	if !ok {
		return nil, errors.Errorf("unknown game %q, expected one of %v", name, Names())
	}
	return newGame(), nil
}

func mustBuild(b *normalform.Builder) *normalform.Game {
	return must(b.Build())
}

func must(g *normalform.Game, err error) *normalform.Game {
	if err != nil {
		panic(err)
	}
	return g
}
