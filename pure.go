package normalform

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/combin"
)

// FindPureEquilibria returns every pure-strategy Nash equilibrium, in
// Profiles order. A profile is an equilibrium when no player has a
// unilateral deviation with a strictly higher payoff.
func FindPureEquilibria(g *Game) ([]Profile, error) {
	var result []Profile
	dev := make([]int, len(g.dims))
	for _, sub := range combin.Cartesian(g.dims) {
		ok, err := isPureEquilibrium(g, sub, dev)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, g.profileAt(sub))
		}
	}
	return result, nil
}

// FindPureEquilibriaParallel is FindPureEquilibria with the profile space
// split into contiguous ranges across workers. It returns the same
// profiles in the same order. If workers <= 0, runtime.NumCPU() is used.
func FindPureEquilibriaParallel(ctx context.Context, g *Game, workers int) ([]Profile, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	total := g.NumProfiles()
	if workers > total {
		workers = total
	}

	isEquilibrium := make([]bool, total)
	chunk := (total + workers - 1) / workers
	eg, ctx := errgroup.WithContext(ctx)
	for start := 0; start < total; start += chunk {
		start, end := start, min(start+chunk, total)
		eg.Go(func() error {
			sub := make([]int, len(g.dims))
			dev := make([]int, len(g.dims))
			for k := start; k < end; k++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				combin.SubFor(sub, k, g.dims)
				ok, err := isPureEquilibrium(g, sub, dev)
				if err != nil {
					return err
				}
				isEquilibrium[k] = ok
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var result []Profile
	for k, ok := range isEquilibrium {
		if ok {
			result = append(result, g.profileAt(combin.SubFor(nil, k, g.dims)))
		}
	}
	return result, nil
}

// isPureEquilibrium compares each player's payoff at sub with the maximum
// over all of that player's deviations. dev is scratch space.
func isPureEquilibrium(g *Game, sub, dev []int) (bool, error) {
	for player := range g.dims {
		current, err := g.payoffAt(sub, player)
		if err != nil {
			return false, err
		}

		copy(dev, sub)
		for alt := 0; alt < g.dims[player]; alt++ {
			if alt == sub[player] {
				continue
			}
			dev[player] = alt
			u, err := g.payoffAt(dev, player)
			if err != nil {
				return false, err
			}
			if u > current {
				return false, nil
			}
		}
	}
	return true, nil
}
