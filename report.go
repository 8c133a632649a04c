package normalform

import (
	"context"
	"math"
	"math/rand"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/normalform/matrixgame"
)

// Report collects every analysis of a game.
type Report struct {
	Name       string       `yaml:"name,omitempty"`
	Players    []string     `yaml:"players"`
	Strategies [][]Strategy `yaml:"strategies"`

	PureEquilibria []Profile `yaml:"pure_equilibria"`
	// Mixed and ExpectedPayoffs are only set for 2-player games.
	Mixed           *MixedEquilibrium `yaml:"mixed_equilibrium,omitempty"`
	ExpectedPayoffs []float64         `yaml:"expected_payoffs,omitempty"`
	FictitiousPlay  MixedProfile      `yaml:"fictitious_play,omitempty"`
	// CFRValue is the row player's average payoff over CFR iterations.
	CFRValue *float64 `yaml:"cfr_value,omitempty"`

	Dominated     [][]Strategy          `yaml:"dominated"`
	BestResponses [][]BestResponseEntry `yaml:"best_responses"`
	ZeroSum       bool                  `yaml:"zero_sum"`
	ConstantSum   bool                  `yaml:"constant_sum"`

	// Strategies that survive iterated elimination of strictly dominated
	// strategies, and the eliminations that led there.
	Survivors    [][]Strategy  `yaml:"survivors"`
	Eliminations []Elimination `yaml:"eliminations,omitempty"`
}

type analyzeOptions struct {
	name    string
	workers int
	mixed   []MixedOption

	fpIters  int
	fpLambda float64
	fpRand   *rand.Rand

	cfrIters int
}

type AnalyzeOption func(*analyzeOptions)

func WithName(name string) AnalyzeOption {
	return func(o *analyzeOptions) {
		o.name = name
	}
}

// WithWorkers searches for pure equilibria in parallel.
func WithWorkers(n int) AnalyzeOption {
	return func(o *analyzeOptions) {
		o.workers = n
	}
}

func WithMixedOptions(opts ...MixedOption) AnalyzeOption {
	return func(o *analyzeOptions) {
		o.mixed = append(o.mixed, opts...)
	}
}

// WithFictitiousPlay adds an approximate equilibrium from nIter rounds of
// fictitious play to the report of a 2-player game.
func WithFictitiousPlay(nIter int, mixingLambda float64, rng *rand.Rand) AnalyzeOption {
	return func(o *analyzeOptions) {
		o.fpIters = nIter
		o.fpLambda = mixingLambda
		o.fpRand = rng
	}
}

// WithCFR adds the row player's value from nIter iterations of
// counterfactual regret minimization to the report of a 2-player game.
func WithCFR(nIter int) AnalyzeOption {
	return func(o *analyzeOptions) {
		o.cfrIters = nIter
	}
}

// Analyze runs every analysis on g. The mixed equilibrium, its expected
// payoffs, fictitious play and CFR are only computed for 2-player games.
func Analyze(ctx context.Context, g *Game, opts ...AnalyzeOption) (*Report, error) {
	var o analyzeOptions
	for _, opt := range opts {
		opt(&o)
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}

	r := &Report{
		Name:    o.name,
		Players: g.Players(),
	}
	for player := range g.players {
		r.Strategies = append(r.Strategies, g.StrategiesOf(player))
	}

	var err error
	if o.workers > 0 {
		r.PureEquilibria, err = FindPureEquilibriaParallel(ctx, g, o.workers)
	} else {
		r.PureEquilibria, err = FindPureEquilibria(g)
	}
	if err != nil {
		return nil, errors.Wrap(err, "finding pure equilibria")
	}
	glog.V(1).Infof("Found %d pure equilibria", len(r.PureEquilibria))

	if g.NumPlayers() == 2 {
		mixed, err := FindMixedEquilibrium(g, o.mixed...)
		if err != nil {
			return nil, errors.Wrap(err, "finding mixed equilibrium")
		}
		r.Mixed = &mixed
		r.ExpectedPayoffs, err = ExpectedPayoffs(g, mixed.Profile)
		if err != nil {
			return nil, errors.Wrap(err, "computing expected payoffs")
		}

		if o.fpIters > 0 || o.cfrIters > 0 {
			m, err := g.Bimatrix()
			if err != nil {
				return nil, err
			}

			if o.fpIters > 0 {
				rng := o.fpRand
				if rng == nil {
					rng = rand.New(rand.NewSource(1))
				}
				row, col := matrixgame.FictitiousPlay(m, o.fpIters, o.fpLambda, rng)
				r.FictitiousPlay = g.mixedProfile(row, col)
			}

			if o.cfrIters > 0 {
				v := matrixgame.CFRValue(m, o.cfrIters)
				r.CFRValue = &v
			}
		}
	}

	for player := range g.players {
		dominated, err := DominatedStrategies(g, player)
		if err != nil {
			return nil, errors.Wrapf(err, "checking dominance for player %d", player)
		}
		r.Dominated = append(r.Dominated, dominated)

		table, err := BestResponseTable(g, player)
		if err != nil {
			return nil, errors.Wrapf(err, "best responses for player %d", player)
		}
		r.BestResponses = append(r.BestResponses, table)
	}

	total, constant, err := IsConstantSum(g)
	if err != nil {
		return nil, err
	}
	r.ConstantSum = constant
	r.ZeroSum = constant && math.Abs(total) <= sumTolerance

	reduced, eliminations, err := IteratedElimination(g)
	if err != nil {
		return nil, errors.Wrap(err, "iterated elimination")
	}
	for player := range g.players {
		r.Survivors = append(r.Survivors, reduced.StrategiesOf(player))
	}
	r.Eliminations = eliminations

	return r, nil
}
