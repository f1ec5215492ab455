package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/astargrid/astar"
)

func TestManhattanDistance(t *testing.T) {
	assert.Equal(t, 0, astar.ManhattanDistance(pt(3, 3), pt(3, 3)))
	assert.Equal(t, 4, astar.ManhattanDistance(pt(1, 1), pt(5, 1)))
	assert.Equal(t, 7, astar.ManhattanDistance(pt(-2, 4), pt(1, 0)))
	assert.Equal(t, astar.ManhattanDistance(pt(0, 9), pt(4, 2)), astar.ManhattanDistance(pt(4, 2), pt(0, 9)))
}

// TestEuclideanDistance_Truncates checks that fractional distances round
// toward zero.
func TestEuclideanDistance_Truncates(t *testing.T) {
	cases := []struct {
		dx, dy, want int
	}{
		{0, 0, 0},
		{3, 4, 5},
		{1, 1, 1},  // 1.414…
		{2, 2, 2},  // 2.828…
		{4, 4, 5},  // 5.656…
		{-6, 8, 10},
		{11, 1, 11}, // 11.045…
	}
	for _, tc := range cases {
		got := astar.EuclideanDistance(pt(0, 0), pt(tc.dx, tc.dy))
		assert.Equal(t, tc.want, got, "dx=%d dy=%d", tc.dx, tc.dy)
	}
}

// TestEuclidean_NeverExceedsManhattan holds for every offset.
func TestEuclidean_NeverExceedsManhattan(t *testing.T) {
	for dx := -6; dx <= 6; dx++ {
		for dy := -6; dy <= 6; dy++ {
			a, b := pt(0, 0), pt(dx, dy)
			assert.LessOrEqual(t, astar.EuclideanDistance(a, b), astar.ManhattanDistance(a, b))
		}
	}
}

func TestParseHeuristic(t *testing.T) {
	cases := map[string]astar.Heuristic{
		"manhattan":  astar.Manhattan,
		" Manhattan": astar.Manhattan,
		"euclidean":  astar.Euclidean,
		"EUCLIDIAN":  astar.Euclidean,
	}
	for in, want := range cases {
		got, err := astar.ParseHeuristic(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := astar.ParseHeuristic("chebyshev")
	assert.ErrorIs(t, err, astar.ErrInvalidMode)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "manhattan", astar.Manhattan.String())
	assert.Equal(t, "euclidean", astar.Euclidean.String())
	assert.Equal(t, "heuristic(3)", astar.Heuristic(3).String())
	assert.Equal(t, "first-discovery", astar.PolicyFirstDiscovery.String())
	assert.Equal(t, "decrease-key", astar.PolicyDecreaseKey.String())
	assert.Equal(t, "policy(9)", astar.Policy(9).String())
	assert.True(t, astar.Manhattan.Valid())
	assert.False(t, astar.Heuristic(-1).Valid())
}
