package normalform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsZeroSum(t *testing.T) {
	zeroSum, err := IsZeroSum(matchingPennies(t))
	require.NoError(t, err)
	assert.True(t, zeroSum)

	zeroSum, err = IsZeroSum(prisonersDilemma(t))
	require.NoError(t, err)
	assert.False(t, zeroSum)
}

func TestIsConstantSum(t *testing.T) {
	g := buildGame(t, []string{"A", "B"},
		entryRow{Profile{"x", "x"}, []float64{3, 2}},
		entryRow{Profile{"x", "y"}, []float64{5, 0}},
		entryRow{Profile{"y", "x"}, []float64{0, 5}},
		entryRow{Profile{"y", "y"}, []float64{2.5, 2.5}},
	)

	total, ok, err := IsConstantSum(g)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5.0, total)

	zeroSum, err := IsZeroSum(g)
	require.NoError(t, err)
	assert.False(t, zeroSum)

	_, ok, err = IsConstantSum(battleOfTheSexes(t))
	require.NoError(t, err)
	assert.False(t, ok)
}
