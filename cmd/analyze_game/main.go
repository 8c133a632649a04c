package main

import (
	"context"
	"flag"
	"math/rand"
	"os"

	"github.com/golang/glog"
	"gopkg.in/yaml.v3"

	"github.com/timpalpant/normalform"
	"github.com/timpalpant/normalform/games"
)

func main() {
	gameName := flag.String("game", "prisoners_dilemma", "Name of a game from the catalog")
	filename := flag.String("file", "", "YAML game definition to analyze instead of -game")
	hawkDoveValue := flag.Float64("hawk_dove_value", games.DefaultHawkDoveValue, "Resource value for -game hawk_dove")
	hawkDoveCost := flag.Float64("hawk_dove_cost", games.DefaultHawkDoveCost, "Fight cost for -game hawk_dove")
	fpIters := flag.Int("fp_iters", 0, "Rounds of fictitious play to run as a cross-check (0 to skip)")
	fpLambda := flag.Float64("fp_lambda", 0, "Probability of playing uniformly at random during fictitious play")
	cfrIters := flag.Int("cfr_iters", 0, "Iterations of counterfactual regret minimization to run as a cross-check (0 to skip)")
	seed := flag.Int64("seed", 123, "Random seed")
	workers := flag.Int("workers", 0, "Search for pure equilibria with this many goroutines (0 for sequential)")
	printYAML := flag.Bool("yaml", false, "Print the report to stdout as YAML")
	flag.Parse()

	g, name := loadGame(*gameName, *filename, *hawkDoveValue, *hawkDoveCost)
	glog.Infof("Analyzing %s", name)

	opts := []normalform.AnalyzeOption{
		normalform.WithName(name),
		normalform.WithWorkers(*workers),
	}
	if *fpIters > 0 {
		rng := rand.New(rand.NewSource(*seed))
		opts = append(opts, normalform.WithFictitiousPlay(*fpIters, *fpLambda, rng))
	}
	if *cfrIters > 0 {
		opts = append(opts, normalform.WithCFR(*cfrIters))
	}

	report, err := normalform.Analyze(context.Background(), g, opts...)
	if err != nil {
		glog.Fatal(err)
	}

	logReport(report)
	if *printYAML {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			glog.Fatal(err)
		}
		if err := enc.Close(); err != nil {
			glog.Fatal(err)
		}
	}
}

func loadGame(gameName, filename string, hawkDoveValue, hawkDoveCost float64) (*normalform.Game, string) {
	if filename != "" {
		g, name, err := games.LoadFile(filename)
		if err != nil {
			glog.Fatal(err)
		}
		if name == "" {
			name = filename
		}
		return g, name
	}

	if gameName == "hawk_dove" {
		g, err := games.HawkDove(hawkDoveValue, hawkDoveCost)
		if err != nil {
			glog.Fatal(err)
		}
		return g, gameName
	}

	g, err := games.ByName(gameName)
	if err != nil {
		glog.Fatal(err)
	}
	return g, gameName
}

func logReport(r *normalform.Report) {
	glog.Infof("Players: %v", r.Players)
	for player, strategies := range r.Strategies {
		glog.Infof("%s strategies: %v", r.Players[player], strategies)
	}

	glog.Infof("Pure strategy Nash equilibria: %v", r.PureEquilibria)
	if r.Mixed != nil {
		for player, ms := range r.Mixed.Profile {
			glog.Infof("Mixed equilibrium (%v), %s: %v", r.Mixed.Method, r.Players[player], ms)
		}
		for _, fb := range r.Mixed.Fallbacks {
			glog.Warningf("%s strategy uses fallback policy %v", r.Players[fb.Player], fb.Policy)
		}
		glog.Infof("Expected payoffs in mixed equilibrium: %v", r.ExpectedPayoffs)
	}
	for player, ms := range r.FictitiousPlay {
		glog.Infof("Fictitious play frequencies, %s: %v", r.Players[player], ms)
	}
	if r.CFRValue != nil {
		glog.Infof("CFR average value for %s: %v", r.Players[0], *r.CFRValue)
	}

	for player, dominated := range r.Dominated {
		glog.Infof("%s strictly dominated strategies: %v", r.Players[player], dominated)
	}
	for player, table := range r.BestResponses {
		for _, entry := range table {
			glog.Infof("%s best response against %v: %v", r.Players[player], entry.Opponents, entry.Best)
		}
	}

	glog.Infof("Zero-sum: %v, constant-sum: %v", r.ZeroSum, r.ConstantSum)
	for _, e := range r.Eliminations {
		glog.Infof("Round %d: %s eliminates %v (dominated by %v)",
			e.Round, r.Players[e.Player], e.Strategy, e.DominatedBy)
	}
	glog.Infof("Strategies surviving iterated elimination: %v", r.Survivors)
}
