package linker

import (
	"fmt"

	"github.com/trailmesh/streetlink/geo"
	"github.com/trailmesh/streetlink/graph"
	"github.com/trailmesh/streetlink/spatial"
)

// SplitEdge implements the C5 edge splitter (spec.md §4.5). Given an edge e
// and a linear location loc along it, it returns the vertex to link
// against: either one of e's existing endpoints (if loc snaps to it within
// EndpointSnapEpsilon) or a freshly created splitter vertex.
//
// destructive selects the mutation regime: true permanently edits g and
// index under index's write mutex; false creates only temporary entities in
// arena and never touches g or index. Calling with destructive=true and a
// non-nil arena is the spec.md §7 category-3 programmer error and returns
// ErrDestructiveTemporary rather than silently doing the wrong thing;
// calling with destructive=false and a nil arena returns a plain
// (non-sentinel) error.
func SplitEdge(g *graph.Graph, index *spatial.EdgeIndex, arena *graph.TemporaryArena, e *graph.Edge, loc geo.LinearLocation, destructive, endVertex bool) (*graph.Vertex, error) {
	temporary := !destructive
	if destructive && arena != nil {
		return nil, fmt.Errorf("linker: SplitEdge: %w", ErrDestructiveTemporary)
	}
	if temporary && arena == nil {
		return nil, fmt.Errorf("linker: SplitEdge: non-destructive split requires a TemporaryArena")
	}

	numPoints := len(e.Geometry)

	// Endpoint snapping: start of edge.
	if loc.SegmentIndex == 0 && loc.Fraction < EndpointSnapEpsilon {
		return vertexFor(g, arena, e.From)
	}

	// Endpoint snapping: end of edge.
	if loc.SegmentIndex == numPoints-1 ||
		(loc.SegmentIndex == numPoints-2 && loc.Fraction > 1-EndpointSnapEpsilon) {
		return vertexFor(g, arena, e.To)
	}

	splitPt, firstGeom, secondGeom := geo.SplitAt(e.Geometry, loc)
	splitDistance := geo.LengthUpTo(e.Geometry, loc)
	firstElev, secondElev := splitElevation(e.Elevation, splitDistance)

	label := fmt.Sprintf("split from %d", e.ID)

	if destructive {
		splitter := g.AddVertex(graph.KindSplitter, label, splitPt[0], splitPt[1], graph.SplitterData{SourceEdgeID: e.ID})

		e1 := g.AddEdge(graph.KindStreetEdge, e.From, splitter.ID, firstGeom, e.Modes, e.Wheelchair, firstElev)
		e2 := g.AddEdge(graph.KindStreetEdge, splitter.ID, e.To, secondGeom, e.Modes, e.Wheelchair, secondElev)

		index.Lock()
		index.InsertLocked(e1)
		index.InsertLocked(e2)
		g.RemoveFromAdjacency(e.From, e.To, e.ID)
		index.Unlock()

		return splitter, nil
	}

	splitter := arena.AddVertex(graph.KindTemporarySplitter, label, splitPt[0], splitPt[1], graph.TemporarySplitterData{
		SourceEdgeID: e.ID,
		EndVertex:    endVertex,
		Wheelchair:   e.Wheelchair,
	})

	arena.AddEdge(graph.KindStreetEdge, e.From, splitter.ID, firstGeom, e.Modes, e.Wheelchair, firstElev)
	arena.AddEdge(graph.KindStreetEdge, splitter.ID, e.To, secondGeom, e.Modes, e.Wheelchair, secondElev)

	return splitter, nil
}

// vertexFor resolves an endpoint's VertexID against the permanent graph
// (street edge endpoints are always permanent vertices, regardless of
// which regime is splitting the edge they belong to).
func vertexFor(g *graph.Graph, arena *graph.TemporaryArena, id graph.VertexID) (*graph.Vertex, error) {
	if arena != nil {
		if v, ok := arena.Vertex(id); ok {
			return v, nil
		}
	}
	v, ok := g.Vertex(id)
	if !ok {
		return nil, graph.ErrVertexNotFound
	}

	return v, nil
}

// splitElevation partitions an elevation profile at splitDistance along the
// original edge, re-basing the second half's samples to start at 0. A
// sample exactly at the boundary is kept on the first half.
func splitElevation(profile []graph.ElevationSample, splitDistance float64) ([]graph.ElevationSample, []graph.ElevationSample) {
	if len(profile) == 0 {
		return nil, nil
	}

	var first, second []graph.ElevationSample
	for _, s := range profile {
		if s.DistanceAlong <= splitDistance {
			first = append(first, s)
		} else {
			second = append(second, graph.ElevationSample{
				DistanceAlong: s.DistanceAlong - splitDistance,
				ElevationM:    s.ElevationM,
			})
		}
	}

	return first, second
}
