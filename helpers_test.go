package normalform

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

type entryRow struct {
	profile Profile
	payoffs []float64
}

func buildGame(t *testing.T, players []string, rows ...entryRow) *Game {
	t.Helper()
	b := NewBuilder(players...)
	for _, r := range rows {
		b.Set(r.profile, r.payoffs...)
	}
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func prisonersDilemma(t *testing.T) *Game {
	t.Helper()
	return buildGame(t, []string{"Player 1", "Player 2"},
		entryRow{Profile{"C", "C"}, []float64{-1, -1}},
		entryRow{Profile{"C", "D"}, []float64{-3, 0}},
		entryRow{Profile{"D", "C"}, []float64{0, -3}},
		entryRow{Profile{"D", "D"}, []float64{-2, -2}},
	)
}

func battleOfTheSexes(t *testing.T) *Game {
	t.Helper()
	return buildGame(t, []string{"Man", "Woman"},
		entryRow{Profile{"Ballet", "Ballet"}, []float64{1, 2}},
		entryRow{Profile{"Ballet", "Fight"}, []float64{0, 0}},
		entryRow{Profile{"Fight", "Ballet"}, []float64{0, 0}},
		entryRow{Profile{"Fight", "Fight"}, []float64{2, 1}},
	)
}

func matchingPennies(t *testing.T) *Game {
	t.Helper()
	return buildGame(t, []string{"Player 1", "Player 2"},
		entryRow{Profile{"H", "H"}, []float64{1, -1}},
		entryRow{Profile{"H", "T"}, []float64{-1, 1}},
		entryRow{Profile{"T", "H"}, []float64{-1, 1}},
		entryRow{Profile{"T", "T"}, []float64{1, -1}},
	)
}

func rockPaperScissors(t *testing.T) *Game {
	t.Helper()
	strategies := []Strategy{"R", "P", "S"}
	beats := map[Strategy]Strategy{"R": "S", "P": "R", "S": "P"}
	b := NewBuilder("Player 1", "Player 2")
	for _, s0 := range strategies {
		for _, s1 := range strategies {
			var u float64
			if beats[s0] == s1 {
				u = 1
			} else if beats[s1] == s0 {
				u = -1
			}
			b.Set(Profile{s0, s1}, u, -u)
		}
	}
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

// randomGame builds a complete game with small integer payoffs, so that
// ties are common.
func randomGame(t *testing.T, rng *rand.Rand, nPlayers int) *Game {
	t.Helper()
	players := make([]string, nPlayers)
	dims := make([]int, nPlayers)
	for i := range players {
		players[i] = string(rune('A' + i))
		dims[i] = 1 + rng.Intn(3)
	}

	b := NewBuilder(players...)
	var fill func(p Profile)
	fill = func(p Profile) {
		if len(p) == nPlayers {
			payoffs := make([]float64, nPlayers)
			for i := range payoffs {
				payoffs[i] = float64(rng.Intn(7) - 3)
			}
			b.Set(p, payoffs...)
			return
		}
		for i := 0; i < dims[len(p)]; i++ {
			fill(append(p.Clone(), Strategy(string(rune('a'+i)))))
		}
	}
	fill(nil)

	g, err := b.Build()
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	return g
}
