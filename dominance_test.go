package normalform

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDominated_PrisonersDilemma(t *testing.T) {
	g := prisonersDilemma(t)
	for player := 0; player < 2; player++ {
		dominated, err := IsDominated(g, player, "C")
		require.NoError(t, err)
		assert.True(t, dominated, "player %d Cooperate", player)

		dominated, err = IsDominated(g, player, "D")
		require.NoError(t, err)
		assert.False(t, dominated, "player %d Defect", player)
	}
}

func TestIsDominated_BattleOfTheSexes(t *testing.T) {
	g := battleOfTheSexes(t)
	for player := 0; player < 2; player++ {
		dominated, err := DominatedStrategies(g, player)
		require.NoError(t, err)
		assert.Empty(t, dominated)
	}
}

func TestIsDominated_WeakDominanceIsNotStrict(t *testing.T) {
	// "b" ties "a" against "y", so it is only weakly dominated.
	g := buildGame(t, []string{"A", "B"},
		entryRow{Profile{"a", "x"}, []float64{2, 0}},
		entryRow{Profile{"a", "y"}, []float64{1, 0}},
		entryRow{Profile{"b", "x"}, []float64{0, 0}},
		entryRow{Profile{"b", "y"}, []float64{1, 0}},
	)

	dominated, err := IsDominated(g, 0, "b")
	require.NoError(t, err)
	assert.False(t, dominated)
}

func TestIsDominated_SingleStrategy(t *testing.T) {
	g := buildGame(t, []string{"A", "B"},
		entryRow{Profile{"only", "x"}, []float64{-5, 0}},
		entryRow{Profile{"only", "y"}, []float64{-9, 0}},
	)

	dominated, err := IsDominated(g, 0, "only")
	require.NoError(t, err)
	assert.False(t, dominated)
}

func TestIsDominated_ThreePlayers(t *testing.T) {
	// Player 1's "lo" is strictly worse than "hi" in all four opponent
	// contexts, and "mid" is beaten by "hi" in all but one.
	b := NewBuilder("A", "B", "C")
	for _, s0 := range []Strategy{"x", "y"} {
		for _, s2 := range []Strategy{"x", "y"} {
			b.Set(Profile{s0, "lo", s2}, 0, 0, 0)
			b.Set(Profile{s0, "hi", s2}, 0, 1, 0)
			mid := 0.5
			if s0 == "y" && s2 == "y" {
				mid = 1
			}
			b.Set(Profile{s0, "mid", s2}, 0, mid, 0)
		}
	}
	g, err := b.Build()
	require.NoError(t, err)

	dominated, err := DominatedStrategies(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []Strategy{"lo"}, dominated)
}

func TestIsDominated_Errors(t *testing.T) {
	g := prisonersDilemma(t)

	_, err := IsDominated(g, 2, "C")
	assert.Equal(t, ErrInvalidPlayer, errors.Cause(err))
	_, err = IsDominated(g, 0, "Z")
	assert.Equal(t, ErrUnknownStrategy, errors.Cause(err))
	_, err = DominatedStrategies(g, -1)
	assert.Equal(t, ErrInvalidPlayer, errors.Cause(err))
}

func TestIteratedElimination_PrisonersDilemma(t *testing.T) {
	reduced, eliminations, err := IteratedElimination(prisonersDilemma(t))
	require.NoError(t, err)
	assert.Equal(t, []Strategy{"D"}, reduced.StrategiesOf(0))
	assert.Equal(t, []Strategy{"D"}, reduced.StrategiesOf(1))
	assert.Equal(t, []Elimination{
		{Round: 1, Player: 0, Strategy: "C", DominatedBy: "D"},
		{Round: 1, Player: 1, Strategy: "C", DominatedBy: "D"},
	}, eliminations)
}

func TestIteratedElimination_MultipleRounds(t *testing.T) {
	g := buildGame(t, []string{"Row", "Column"},
		entryRow{Profile{"Up", "Left"}, []float64{1, 0}},
		entryRow{Profile{"Up", "Middle"}, []float64{1, 2}},
		entryRow{Profile{"Up", "Right"}, []float64{0, 1}},
		entryRow{Profile{"Down", "Left"}, []float64{0, 3}},
		entryRow{Profile{"Down", "Middle"}, []float64{0, 1}},
		entryRow{Profile{"Down", "Right"}, []float64{2, 0}},
	)

	reduced, eliminations, err := IteratedElimination(g)
	require.NoError(t, err)
	assert.Equal(t, []Strategy{"Up"}, reduced.StrategiesOf(0))
	assert.Equal(t, []Strategy{"Middle"}, reduced.StrategiesOf(1))
	assert.Equal(t, []Elimination{
		{Round: 1, Player: 1, Strategy: "Right", DominatedBy: "Middle"},
		{Round: 2, Player: 0, Strategy: "Down", DominatedBy: "Up"},
		{Round: 3, Player: 1, Strategy: "Left", DominatedBy: "Middle"},
	}, eliminations)

	// The original game is untouched.
	assert.Len(t, g.StrategiesOf(1), 3)
}

func TestIteratedElimination_NothingDominated(t *testing.T) {
	g := battleOfTheSexes(t)
	reduced, eliminations, err := IteratedElimination(g)
	require.NoError(t, err)
	assert.Empty(t, eliminations)
	assert.Same(t, g, reduced)
}
