package graph_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/trailmesh/streetlink/geo"
	"github.com/trailmesh/streetlink/graph"
)

func TestTemporaryArenaIDsAreNegative(t *testing.T) {
	t.Parallel()

	g := graph.NewGraph()
	arena := graph.NewTemporaryArena(g)

	v := arena.AddVertex(graph.KindTemporaryStreetLocation, "X", 0, 0, graph.TemporaryStreetLocationData{})
	require.Less(t, int64(v.ID), int64(0))

	e := arena.AddFreeEdge(v.ID, v.ID, false)
	require.Less(t, int64(e.ID), int64(0))
}

func TestTemporaryArenaAddVertexPanicsOnPermanentKind(t *testing.T) {
	t.Parallel()

	arena := graph.NewTemporaryArena(graph.NewGraph())
	require.Panics(t, func() {
		arena.AddVertex(graph.KindStreet, "X", 0, 0, graph.StreetData{})
	})
}

func TestTemporaryArenaVertexReadsThroughToBase(t *testing.T) {
	t.Parallel()

	g := graph.NewGraph()
	permanent := g.AddVertex(graph.KindStreet, "A", 0, 0, graph.StreetData{})

	arena := graph.NewTemporaryArena(g)
	v, ok := arena.Vertex(permanent.ID)
	require.True(t, ok)
	require.Equal(t, permanent.ID, v.ID)
}

func TestTemporaryArenaDiscardLeavesBaseUntouched(t *testing.T) {
	t.Parallel()

	g := graph.NewGraph()
	a := g.AddVertex(graph.KindStreet, "A", 0, 0, graph.StreetData{})
	b := g.AddVertex(graph.KindStreet, "B", 1, 0, graph.StreetData{})
	g.AddEdge(graph.KindStreetEdge, a.ID, b.ID, orb.LineString{{0, 0}, {1, 0}}, geo.NewSet(geo.Walk), false, nil)

	beforeVertices := len(g.Vertices())
	beforeEdges := len(g.Edges())

	arena := graph.NewTemporaryArena(g)
	arena.AddVertex(graph.KindTemporaryStreetLocation, "X", 0, 0, graph.TemporaryStreetLocationData{})
	arena.AddFreeEdge(a.ID, -1, false)

	arena.Discard()

	require.Equal(t, beforeVertices, len(g.Vertices()))
	require.Equal(t, beforeEdges, len(g.Edges()))
	require.Empty(t, arena.Edges())
}
