package games

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/timpalpant/normalform"
)

// Definition is the YAML description of a normal-form game.
//
//	name: Prisoner's Dilemma
//	players: [Player 1, Player 2]
//	strategies:
//	  - [Cooperate, Defect]
//	  - [Cooperate, Defect]
//	payoffs:
//	  - profile: [Cooperate, Cooperate]
//	    payoffs: [-1, -1]
//
// Strategies is optional. When given it fixes each player's strategy
// order; otherwise the order follows the payoff entries.
type Definition struct {
	Name       string                  `yaml:"name"`
	Players    []string                `yaml:"players"`
	Strategies [][]normalform.Strategy `yaml:"strategies,omitempty"`
	Payoffs    []PayoffEntry           `yaml:"payoffs"`
}

type PayoffEntry struct {
	Profile normalform.Profile `yaml:"profile"`
	Payoffs []float64          `yaml:"payoffs"`
}

// Build validates the definition and returns the game. The payoff table
// must be total.
func (d Definition) Build() (*normalform.Game, error) {
	if len(d.Strategies) > len(d.Players) {
		return nil, errors.Errorf("%d strategy sets given for %d players", len(d.Strategies), len(d.Players))
	}

	b := normalform.NewBuilder(d.Players...)
	for player, ss := range d.Strategies {
		b.DeclareStrategies(player, ss...)
	}
	for _, e := range d.Payoffs {
		b.Set(e.Profile, e.Payoffs...)
	}

	g, err := b.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "building game %q", d.Name)
	}
	if err := g.Validate(); err != nil {
		return nil, errors.Wrapf(err, "game %q", d.Name)
	}
	return g, nil
}

// FromGame returns the definition of g, with strategies declared in
// StrategiesOf order and one payoff entry per profile.
func FromGame(name string, g *normalform.Game) (Definition, error) {
	d := Definition{
		Name:    name,
		Players: g.Players(),
	}
	for player := 0; player < g.NumPlayers(); player++ {
		d.Strategies = append(d.Strategies, g.StrategiesOf(player))
	}
	for _, p := range g.Profiles() {
		payoffs, err := g.Payoff(p)
		if err != nil {
			return Definition{}, err
		}
		d.Payoffs = append(d.Payoffs, PayoffEntry{Profile: p, Payoffs: payoffs})
	}
	return d, nil
}

func Decode(r io.Reader) (Definition, error) {
	var d Definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return Definition{}, errors.Wrap(err, "decoding game definition")
	}
	return d, nil
}

func Encode(w io.Writer, d Definition) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return errors.Wrap(err, "encoding game definition")
	}
	return enc.Close()
}

// LoadFile reads and builds the game defined in a YAML file.
func LoadFile(filename string) (*normalform.Game, string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	d, err := Decode(f)
	if err != nil {
		return nil, "", errors.Wrapf(err, "reading %s", filename)
	}
	g, err := d.Build()
	if err != nil {
		return nil, "", errors.Wrapf(err, "reading %s", filename)
	}
	return g, d.Name, nil
}
