package domain

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraphEmptyEdgeSet(t *testing.T) {
	g, err := NewGraph(nil)

	require.Error(t, err)
	assert.Nil(t, g)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestNewGraphNegativeNodeID(t *testing.T) {
	_, err := NewGraph([]Edge{{Source: 0, Target: -1, Weight: 1}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestNewGraphNodeIDLimit(t *testing.T) {
	for _, id := range []int{MaxNodes, 2_000_000_000, math.MaxInt} {
		_, err := NewGraph([]Edge{{Source: 0, Target: id, Weight: 1}})
		assert.ErrorIs(t, err, ErrConfiguration, "id %d", id)
	}
}

func TestNewGraphNodeCountMatchesMaxID(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for round := 0; round < 200; round++ {
		n := 1 + rng.IntN(30)
		edges := make([]Edge, n)
		want := 0
		for i := range edges {
			e := Edge{Source: rng.IntN(50), Target: rng.IntN(50), Weight: rng.Float64() * 10}
			want = max(want, e.Source+1, e.Target+1)
			edges[i] = e
		}

		g, err := NewGraph(edges)
		require.NoError(t, err)
		assert.Equal(t, want, g.NodeCount(), "round %d", round)
	}
}

func TestGraphNeighborsKeepInsertionOrder(t *testing.T) {
	g, err := NewGraph([]Edge{
		{Source: 0, Target: 2, Weight: 4},
		{Source: 0, Target: 1, Weight: 1},
		{Source: 0, Target: 2, Weight: 0.5},
		{Source: 3, Target: 0, Weight: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, []Arc{{Target: 2, Weight: 4}, {Target: 1, Weight: 1}, {Target: 2, Weight: 0.5}}, g.Neighbors(0))
	assert.Empty(t, g.Neighbors(1))
	assert.Empty(t, g.Neighbors(2))
	assert.Nil(t, g.Neighbors(-1))
	assert.Nil(t, g.Neighbors(4))
}

func TestGraphInRange(t *testing.T) {
	g, err := NewGraph([]Edge{{Source: 0, Target: 1, Weight: 2}, {Source: 1, Target: 2, Weight: 3}})
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount())
	assert.True(t, g.InRange(0))
	assert.True(t, g.InRange(2))
	assert.False(t, g.InRange(3))
	assert.False(t, g.InRange(-1))
}

func TestGraphArcWeightFirstMatch(t *testing.T) {
	g, err := NewGraph([]Edge{
		{Source: 0, Target: 1, Weight: 9},
		{Source: 0, Target: 1, Weight: 1},
	})
	require.NoError(t, err)

	w, ok := g.ArcWeight(0, 1)
	assert.True(t, ok)
	assert.Equal(t, 9.0, w)

	_, ok = g.ArcWeight(1, 0)
	assert.False(t, ok)

	_, ok = g.ArcWeight(7, 0)
	assert.False(t, ok)
}

func TestRouteUniqueNodes(t *testing.T) {
	r := Route{0, 3, 1, 3, 0, 2}
	assert.Equal(t, []int{0, 3, 1, 2}, r.UniqueNodes())
	assert.Empty(t, Route{}.UniqueNodes())
}

func TestRouteClosedAtDepot(t *testing.T) {
	assert.True(t, Route{0, 1, 0}.ClosedAtDepot())
	assert.False(t, Route{1, 2, 1}.ClosedAtDepot())
	assert.False(t, Route{0, 1}.ClosedAtDepot())
	assert.False(t, Route{}.ClosedAtDepot())
}
