package normalform

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestResponse_PrisonersDilemma(t *testing.T) {
	g := prisonersDilemma(t)
	for player := 0; player < 2; player++ {
		for _, opp := range []Strategy{"C", "D"} {
			br, err := BestResponse(g, player, Profile{opp})
			require.NoError(t, err)
			assert.Equal(t, Strategy("D"), br, "player %d against %s", player, opp)
		}
	}
}

func TestBestResponse_BattleOfTheSexes(t *testing.T) {
	g := battleOfTheSexes(t)
	for _, s := range []Strategy{"Ballet", "Fight"} {
		for player := 0; player < 2; player++ {
			br, err := BestResponse(g, player, Profile{s})
			require.NoError(t, err)
			assert.Equal(t, s, br)
		}
	}
}

func TestBestResponse_TiesGoToFirstStrategy(t *testing.T) {
	entries := []entryRow{
		{Profile{"a", "x"}, []float64{1, 0}},
		{Profile{"b", "x"}, []float64{1, 0}},
		{Profile{"c", "x"}, []float64{0, 0}},
	}
	g := buildGame(t, []string{"A", "B"}, entries...)
	br, err := BestResponse(g, 0, Profile{"x"})
	require.NoError(t, err)
	assert.Equal(t, Strategy("a"), br)

	// Same table, entered in a different order.
	g = buildGame(t, []string{"A", "B"}, entries[1], entries[0], entries[2])
	br, err = BestResponse(g, 0, Profile{"x"})
	require.NoError(t, err)
	assert.Equal(t, Strategy("b"), br)

	all, err := BestResponses(g, 0, Profile{"x"})
	require.NoError(t, err)
	assert.Equal(t, []Strategy{"b", "a"}, all)
}

func TestBestResponse_ThreePlayers(t *testing.T) {
	// Player 1 is paid 1 for matching player 2 and nothing otherwise.
	b := NewBuilder("A", "B", "C")
	for _, s0 := range []Strategy{"x", "y"} {
		for _, s1 := range []Strategy{"x", "y"} {
			for _, s2 := range []Strategy{"x", "y"} {
				var u float64
				if s1 == s2 {
					u = 1
				}
				b.Set(Profile{s0, s1, s2}, 0, u, 0)
			}
		}
	}
	g, err := b.Build()
	require.NoError(t, err)

	br, err := BestResponse(g, 1, Profile{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, Strategy("y"), br)

	table, err := BestResponseTable(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []BestResponseEntry{
		{Opponents: Profile{"x", "x"}, Best: "x"},
		{Opponents: Profile{"x", "y"}, Best: "y"},
		{Opponents: Profile{"y", "x"}, Best: "x"},
		{Opponents: Profile{"y", "y"}, Best: "y"},
	}, table)
}

func TestBestResponse_Errors(t *testing.T) {
	g := prisonersDilemma(t)

	_, err := BestResponse(g, 3, Profile{"C"})
	assert.Equal(t, ErrInvalidPlayer, errors.Cause(err))
	_, err = BestResponse(g, 0, Profile{"C", "D"})
	assert.Equal(t, ErrProfileArity, errors.Cause(err))
	_, err = BestResponse(g, 0, Profile{"Z"})
	assert.True(t, IsIncompleteTable(err), "got %v", err)
	_, err = BestResponses(g, -1, Profile{"C"})
	assert.Equal(t, ErrInvalidPlayer, errors.Cause(err))
	_, err = BestResponseTable(g, 2)
	assert.Equal(t, ErrInvalidPlayer, errors.Cause(err))
}
