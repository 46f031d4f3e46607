package linker_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trailmesh/streetlink/graph"
	"github.com/trailmesh/streetlink/linker"
)

func TestCreateLinksTransitStop(t *testing.T) {
	t.Parallel()

	g := graph.NewGraph()
	stop := g.AddVertex(graph.KindTransitStop, "S", 0, 0, graph.TransitStopData{StopID: "S1", Wheelchair: true})
	street := g.AddVertex(graph.KindStreet, "A", 0, 0, graph.StreetData{})

	err := linker.CreateLinks(g, nil, stop, street)
	require.NoError(t, err)
	require.Len(t, g.Edges(), 2)
}

func TestCreateLinksTransitStopRequiresPermanentGraph(t *testing.T) {
	t.Parallel()

	g := graph.NewGraph()
	stop := g.AddVertex(graph.KindTransitStop, "S", 0, 0, graph.TransitStopData{StopID: "S1"})
	street := g.AddVertex(graph.KindStreet, "A", 0, 0, graph.StreetData{})

	err := linker.CreateLinks(nil, graph.NewTemporaryArena(g), stop, street)
	require.ErrorIs(t, err, linker.ErrNonDestructivePermanentLink)
}

func TestCreateLinksTemporaryStreetLocationOriginOrientation(t *testing.T) {
	t.Parallel()

	g := graph.NewGraph()
	street := g.AddVertex(graph.KindStreet, "A", 0, 0, graph.StreetData{})
	arena := graph.NewTemporaryArena(g)
	origin := arena.AddVertex(graph.KindTemporaryStreetLocation, "origin", 0, 0, graph.TemporaryStreetLocationData{EndVertex: false})

	err := linker.CreateLinks(g, arena, origin, street)
	require.NoError(t, err)
	require.Len(t, arena.Edges(), 1)
	require.Equal(t, origin.ID, arena.Edges()[0].From)
	require.Equal(t, street.ID, arena.Edges()[0].To)
}

func TestCreateLinksTemporaryStreetLocationDestinationOrientation(t *testing.T) {
	t.Parallel()

	g := graph.NewGraph()
	street := g.AddVertex(graph.KindStreet, "A", 0, 0, graph.StreetData{})
	arena := graph.NewTemporaryArena(g)
	dest := arena.AddVertex(graph.KindTemporaryStreetLocation, "dest", 0, 0, graph.TemporaryStreetLocationData{EndVertex: true})

	err := linker.CreateLinks(g, arena, dest, street)
	require.NoError(t, err)
	require.Len(t, arena.Edges(), 1)
	require.Equal(t, street.ID, arena.Edges()[0].From)
	require.Equal(t, dest.ID, arena.Edges()[0].To)
}

func TestCreateLinksTemporaryStreetLocationRequiresArena(t *testing.T) {
	t.Parallel()

	g := graph.NewGraph()
	street := g.AddVertex(graph.KindStreet, "A", 0, 0, graph.StreetData{})
	entity := &graph.Vertex{
		ID:   -1,
		Kind: graph.KindTemporaryStreetLocation,
		Data: graph.TemporaryStreetLocationData{},
	}

	err := linker.CreateLinks(g, nil, entity, street)
	require.ErrorIs(t, err, linker.ErrDestructiveTemporary)
}

func TestCreateLinksUnhandledVertexKind(t *testing.T) {
	t.Parallel()

	g := graph.NewGraph()
	street := g.AddVertex(graph.KindStreet, "A", 0, 0, graph.StreetData{})
	other := g.AddVertex(graph.KindStreet, "B", 0, 0, graph.StreetData{})

	err := linker.CreateLinks(g, nil, street, other)
	require.ErrorIs(t, err, linker.ErrUnhandledVertexKind)
}
