package concepts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGraph(t *testing.T) {
	g := DefaultGraph()

	for _, c := range []string{"Variables", "Conditionals", "Loops", "Functions", "Recursion"} {
		assert.True(t, g.Contains(c), "graph should contain %s", c)
	}
	assert.False(t, g.Contains("Pointers"))

	assert.Equal(t, []string{"Conditionals", "Loops"}, g.Neighbors("Variables"))
	assert.Equal(t, []string{"Recursion"}, g.Neighbors("Functions"))
	assert.Empty(t, g.Neighbors("Recursion"))
	assert.Empty(t, g.Neighbors("Pointers"))
}

func TestDifficultyRamp(t *testing.T) {
	g := DefaultGraph()

	require.Equal(t, 1, g.Difficulty("Variables"))
	require.Equal(t, 5, g.Difficulty("Recursion"))
	assert.Zero(t, g.Difficulty("Pointers"))

	// Every edge points at a strictly harder concept.
	for _, c := range []string{"Variables", "Conditionals", "Loops", "Functions"} {
		for _, n := range g.Neighbors(c) {
			assert.Greater(t, g.Difficulty(n), g.Difficulty(c),
				"%s -> %s should increase difficulty", c, n)
		}
	}
}
