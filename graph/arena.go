package graph

import (
	"github.com/paulmach/orb"
	"github.com/trailmesh/streetlink/geo"
)

// TemporaryArena holds the ephemeral vertices and edges a single routing
// request creates while linking an origin or destination: a
// TemporarySplitterVertex and/or a TemporaryStreetLocation, plus whatever
// TemporaryFreeEdge edges join them to the permanent graph.
//
// It is owned by the request that created it and is discarded as a unit
// when that request completes (Discard); nothing in the permanent Graph
// ever holds a reference into a TemporaryArena, so discarding one can never
// leave a dangling pointer in permanent state. A TemporaryArena may read
// through to its base Graph (a temporary free edge's other endpoint is
// often a permanent street vertex or splitter), but it never locks the base
// graph's mutexes and never mutates it — satisfying spec.md Invariant 4.
//
// Unlike Graph, TemporaryArena carries no internal locking: spec.md §5
// restricts a single linker instance, and therefore a single
// TemporaryArena, to one goroutine at a time.
type TemporaryArena struct {
	base *Graph

	nextVertexID int64
	nextEdgeID   int64

	vertices map[VertexID]*Vertex
	edges    map[EdgeID]*Edge
}

// NewTemporaryArena creates a scratch arena overlaying base.
func NewTemporaryArena(base *Graph) *TemporaryArena {
	return &TemporaryArena{
		base:     base,
		vertices: make(map[VertexID]*Vertex),
		edges:    make(map[EdgeID]*Edge),
	}
}

// AddVertex creates a temporary vertex. kind must be one of the temporary
// VertexKind values; using a permanent kind here is the mode-mismatch
// programmer error spec.md §7 category 3 describes.
func (a *TemporaryArena) AddVertex(kind VertexKind, label string, lon, lat float64, data VertexData) *Vertex {
	if !kind.Temporary() {
		panic("graph: TemporaryArena.AddVertex called with a permanent VertexKind")
	}

	a.nextVertexID--
	v := &Vertex{
		ID:    VertexID(a.nextVertexID),
		Kind:  kind,
		Label: label,
		Lon:   lon,
		Lat:   lat,
		Data:  data,
	}
	a.vertices[v.ID] = v

	return v
}

// AddEdge creates a temporary edge of kind (street or link) between fromID
// and toID. Unlike Graph.AddEdge, it accepts any EdgeKind: every edge a
// TemporaryArena holds is temporary by virtue of living here, regardless of
// which permanent-looking kind tag it carries (a split produces ordinary
// KindStreetEdge half-edges whether or not the split itself is
// destructive).
func (a *TemporaryArena) AddEdge(kind EdgeKind, from, to VertexID, geometry orb.LineString, modes geo.Set, wheelchair bool, elevation []ElevationSample) *Edge {
	a.nextEdgeID--
	e := &Edge{
		ID:         EdgeID(a.nextEdgeID),
		Kind:       kind,
		From:       from,
		To:         to,
		Geometry:   geometry,
		Modes:      modes,
		Wheelchair: wheelchair,
		Elevation:  elevation,
	}
	a.edges[e.ID] = e

	if v, ok := a.vertices[from]; ok {
		v.Outgoing = append(v.Outgoing, e.ID)
	}
	if v, ok := a.vertices[to]; ok {
		v.Incoming = append(v.Incoming, e.ID)
	}

	return e
}

// AddFreeEdge creates a temporary free edge between fromID and toID, either
// of which may be a permanent vertex ID (resolved through base) or a
// temporary one owned by this arena.
func (a *TemporaryArena) AddFreeEdge(fromID, toID VertexID, wheelchair bool) *Edge {
	a.nextEdgeID--
	e := &Edge{
		ID:         EdgeID(a.nextEdgeID),
		Kind:       KindTemporaryFreeEdge,
		From:       fromID,
		To:         toID,
		Wheelchair: wheelchair,
	}
	a.edges[e.ID] = e

	if v, ok := a.vertices[fromID]; ok {
		v.Outgoing = append(v.Outgoing, e.ID)
	}
	if v, ok := a.vertices[toID]; ok {
		v.Incoming = append(v.Incoming, e.ID)
	}

	return e
}

// Vertex resolves id against this arena first, then falls back to the base
// permanent graph, so callers can treat a temporary entity's neighbors
// uniformly regardless of which arena owns them.
func (a *TemporaryArena) Vertex(id VertexID) (*Vertex, bool) {
	if v, ok := a.vertices[id]; ok {
		return v, true
	}

	return a.base.Vertex(id)
}

// Edge resolves id the same way Vertex does.
func (a *TemporaryArena) Edge(id EdgeID) (*Edge, bool) {
	if e, ok := a.edges[id]; ok {
		return e, true
	}

	return a.base.Edge(id)
}

// Edges returns every temporary edge this arena owns (not edges read
// through to base).
func (a *TemporaryArena) Edges() []*Edge {
	out := make([]*Edge, 0, len(a.edges))
	for _, e := range a.edges {
		out = append(out, e)
	}

	return out
}

// Discard releases the arena's own vertices and edges. It never touches
// base: the permanent graph is left bit-identical to its pre-request state,
// the non-destructive-purity property spec.md §8 requires.
func (a *TemporaryArena) Discard() {
	a.vertices = make(map[VertexID]*Vertex)
	a.edges = make(map[EdgeID]*Edge)
}
