package linker_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/trailmesh/streetlink/geo"
	"github.com/trailmesh/streetlink/graph"
	"github.com/trailmesh/streetlink/linker"
	"github.com/trailmesh/streetlink/spatial"
)

func buildTwoParallelEdges(t *testing.T) (*graph.Graph, *spatial.EdgeIndex) {
	t.Helper()

	// The duplicate-way epsilon is 0.001 m (spec.md §4.4 step 6), so two
	// candidates only cluster together when their distances are within a
	// millimeter of each other: model the paired carriageways as exactly
	// coincident geometry, the way an unsplit divided road would appear
	// before its two directions are offset.
	g := graph.NewGraph()
	a1 := g.AddVertex(graph.KindStreet, "A1", 0, 0, graph.StreetData{})
	b1 := g.AddVertex(graph.KindStreet, "B1", 0.01, 0, graph.StreetData{})
	a2 := g.AddVertex(graph.KindStreet, "A2", 0, 0, graph.StreetData{})
	b2 := g.AddVertex(graph.KindStreet, "B2", 0.01, 0, graph.StreetData{})

	e1 := g.AddEdge(graph.KindStreetEdge, a1.ID, b1.ID, orb.LineString{{0, 0}, {0.01, 0}}, geo.NewSet(geo.Walk, geo.Car), false, nil)
	e2 := g.AddEdge(graph.KindStreetEdge, a2.ID, b2.ID, orb.LineString{{0, 0}, {0.01, 0}}, geo.NewSet(geo.Walk, geo.Car), false, nil)

	ix := spatial.NewEdgeIndex()
	ix.Insert(e1)
	ix.Insert(e2)

	return g, ix
}

func TestRankEdgesMissBeyondRadius(t *testing.T) {
	t.Parallel()

	g, ix := buildTwoParallelEdges(t)
	query := orb.Point{0.005, 1.0}
	projector := geo.NewProjector(query[1])

	_, ok := linker.RankEdges(ix, g, query, projector, geo.NewSet(geo.Walk), linker.MaxSearchRadiusMeters)
	require.False(t, ok)
}

func TestRankEdgesFiltersByMode(t *testing.T) {
	t.Parallel()

	g := graph.NewGraph()
	a := g.AddVertex(graph.KindStreet, "A", 0, 0, graph.StreetData{})
	b := g.AddVertex(graph.KindStreet, "B", 0.001, 0, graph.StreetData{})
	e := g.AddEdge(graph.KindStreetEdge, a.ID, b.ID, orb.LineString{{0, 0}, {0.001, 0}}, geo.NewSet(geo.Car), false, nil)

	ix := spatial.NewEdgeIndex()
	ix.Insert(e)

	query := orb.Point{0.0005, 0.0001}
	projector := geo.NewProjector(query[1])

	_, ok := linker.RankEdges(ix, g, query, projector, geo.NewSet(geo.Walk), linker.MaxSearchRadiusMeters)
	require.False(t, ok, "a car-only edge must not satisfy a walk-mode search")
}

func TestRankEdgesEpsilonClusterIncludesBothParallelEdges(t *testing.T) {
	t.Parallel()

	g, ix := buildTwoParallelEdges(t)
	query := orb.Point{0.005, 0.00001}
	projector := geo.NewProjector(query[1])

	candidates, ok := linker.RankEdges(ix, g, query, projector, geo.NewSet(geo.Walk), linker.MaxSearchRadiusMeters)
	require.True(t, ok)
	require.Len(t, candidates, 2, "the two carriageways are within the duplicate-way epsilon of each other")
}

func TestRankEdgesEpsilonClusterExcludesFartherEdge(t *testing.T) {
	t.Parallel()

	// Two parallel edges roughly 11 m apart in latitude, far outside the
	// 0.001 m duplicate-way epsilon: only the nearer one may be linked.
	g := graph.NewGraph()
	a1 := g.AddVertex(graph.KindStreet, "A1", 0, 0, graph.StreetData{})
	b1 := g.AddVertex(graph.KindStreet, "B1", 0.01, 0, graph.StreetData{})
	a2 := g.AddVertex(graph.KindStreet, "A2", 0, 0.0001, graph.StreetData{})
	b2 := g.AddVertex(graph.KindStreet, "B2", 0.01, 0.0001, graph.StreetData{})

	near := g.AddEdge(graph.KindStreetEdge, a1.ID, b1.ID, orb.LineString{{0, 0}, {0.01, 0}}, geo.NewSet(geo.Walk), false, nil)
	far := g.AddEdge(graph.KindStreetEdge, a2.ID, b2.ID, orb.LineString{{0, 0.0001}, {0.01, 0.0001}}, geo.NewSet(geo.Walk), false, nil)

	ix := spatial.NewEdgeIndex()
	ix.Insert(near)
	ix.Insert(far)

	query := orb.Point{0.005, 0.00001}
	projector := geo.NewProjector(query[1])

	candidates, ok := linker.RankEdges(ix, g, query, projector, geo.NewSet(geo.Walk), linker.MaxSearchRadiusMeters)
	require.True(t, ok)
	require.Len(t, candidates, 1, "the farther parallel edge is well outside the duplicate-way epsilon and must not cluster with the nearer one")
	require.Equal(t, near.ID, candidates[0].Edge.ID)
}

func TestRankEdgesExcludesRemovedEdges(t *testing.T) {
	t.Parallel()

	g := graph.NewGraph()
	a := g.AddVertex(graph.KindStreet, "A", 0, 0, graph.StreetData{})
	b := g.AddVertex(graph.KindStreet, "B", 0.001, 0, graph.StreetData{})
	e := g.AddEdge(graph.KindStreetEdge, a.ID, b.ID, orb.LineString{{0, 0}, {0.001, 0}}, geo.NewSet(geo.Walk), false, nil)

	ix := spatial.NewEdgeIndex()
	ix.Insert(e)
	g.RemoveFromAdjacency(a.ID, b.ID, e.ID)

	query := orb.Point{0.0005, 0.0001}
	projector := geo.NewProjector(query[1])

	_, ok := linker.RankEdges(ix, g, query, projector, geo.NewSet(geo.Walk), linker.MaxSearchRadiusMeters)
	require.False(t, ok, "an edge stale in the spatial index but removed from adjacency must be filtered out")
}

func TestRankStopsMiss(t *testing.T) {
	t.Parallel()

	ix := spatial.NewStopIndex()
	query := orb.Point{0, 0}
	projector := geo.NewProjector(0)

	_, ok := linker.RankStops(ix, query, projector, linker.MaxSearchRadiusMeters)
	require.False(t, ok)
}

func TestRankStopsHit(t *testing.T) {
	t.Parallel()

	g := graph.NewGraph()
	stop := g.AddVertex(graph.KindTransitStop, "S", 0.0001, 0, graph.TransitStopData{StopID: "S1"})

	ix := spatial.NewStopIndex()
	ix.Insert(stop)

	query := orb.Point{0, 0}
	projector := geo.NewProjector(0)

	candidates, ok := linker.RankStops(ix, query, projector, linker.MaxSearchRadiusMeters)
	require.True(t, ok)
	require.Len(t, candidates, 1)
	require.Equal(t, stop.ID, candidates[0].Stop.ID)
}
