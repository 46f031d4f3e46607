package graph

import (
	"sort"
	"sync"

	"github.com/paulmach/orb"
	"github.com/trailmesh/streetlink/geo"
)

// Graph is the street network's permanent arena. It owns every StreetVertex,
// SplitterVertex, TransitStop, BikeRentalStationVertex, BikeParkVertex and
// every StreetEdge / permanent LinkEdge for as long as the graph itself
// lives.
//
// Two independent locks guard it, mirroring the teacher convention of never
// holding more than one lock at a time: muVert guards the vertex catalog and
// every vertex's Incoming/Outgoing slices; muEdge guards the edge catalog.
// A caller that needs both (a destructive split) acquires and releases them
// in sequence, never simultaneously. A destructive split additionally holds
// the spatial index's own mutex (package spatial) across its two index
// inserts and the adjacency removal; creating the splitter vertex and the
// two half-edges happens outside that mutex.
type Graph struct {
	muVert sync.RWMutex
	muEdge sync.RWMutex

	nextVertexID int64
	nextEdgeID   int64

	vertices map[VertexID]*Vertex
	edges    map[EdgeID]*Edge
}

// NewGraph constructs an empty permanent arena.
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[VertexID]*Vertex),
		edges:    make(map[EdgeID]*Edge),
	}
}

// AddVertex creates and stores a new permanent vertex. kind must not be a
// temporary kind; callers that need a temporary vertex use TemporaryArena
// instead (mixing the two is the programmer error spec.md §7 category 3
// describes).
func (g *Graph) AddVertex(kind VertexKind, label string, lon, lat float64, data VertexData) *Vertex {
	if kind.Temporary() {
		panic("graph: AddVertex called with a temporary VertexKind")
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.nextVertexID++
	v := &Vertex{
		ID:    VertexID(g.nextVertexID),
		Kind:  kind,
		Label: label,
		Lon:   lon,
		Lat:   lat,
		Data:  data,
	}
	g.vertices[v.ID] = v

	return v
}

// AddEdge creates and stores a new permanent edge, updating both endpoints'
// adjacency. kind must not be the temporary free-edge kind.
func (g *Graph) AddEdge(kind EdgeKind, from, to VertexID, geometry orb.LineString, modes geo.Set, wheelchair bool, elevation []ElevationSample) *Edge {
	if kind.Temporary() {
		panic("graph: AddEdge called with the temporary EdgeKind")
	}

	g.muEdge.Lock()
	g.nextEdgeID++
	e := &Edge{
		ID:         EdgeID(g.nextEdgeID),
		Kind:       kind,
		From:       from,
		To:         to,
		Geometry:   geometry,
		Modes:      modes,
		Wheelchair: wheelchair,
		Elevation:  elevation,
	}
	g.edges[e.ID] = e
	g.muEdge.Unlock()

	g.muVert.Lock()
	if v, ok := g.vertices[from]; ok {
		v.Outgoing = append(v.Outgoing, e.ID)
	}
	if v, ok := g.vertices[to]; ok {
		v.Incoming = append(v.Incoming, e.ID)
	}
	g.muVert.Unlock()

	return e
}

// Vertex retrieves a permanent vertex by ID.
func (g *Graph) Vertex(id VertexID) (*Vertex, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]

	return v, ok
}

// Edge retrieves a permanent edge by ID.
func (g *Graph) Edge(id EdgeID) (*Edge, bool) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	e, ok := g.edges[id]

	return e, ok
}

// Vertices returns every permanent vertex, sorted by ID for deterministic
// iteration (spec.md §8: "byte-identical sets ... regardless of iteration
// order").
func (g *Graph) Vertices() []*Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]*Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Edges returns every permanent edge, sorted by ID.
func (g *Graph) Edges() []*Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// InGraph implements the in-graph predicate from spec.md §3: an edge is
// still live if it is listed as incoming on its To vertex. The spatial
// index is allowed to return edges that fail this check; every consumer of
// a query result must re-test it here before acting on the edge.
func (g *Graph) InGraph(e *Edge) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	to, ok := g.vertices[e.To]
	if !ok {
		return false
	}
	for _, id := range to.Incoming {
		if id == e.ID {
			return true
		}
	}

	return false
}

// RemoveFromAdjacency strips edgeID out of fromID's Outgoing list and toID's
// Incoming list. It does not touch the edge catalog or the spatial index:
// per the staleness-tolerance design (spec.md §9), a removed edge is left
// discoverable by the index and filtered out later by InGraph, rather than
// deleted from it at O(log n) cost.
func (g *Graph) RemoveFromAdjacency(fromID VertexID, toID VertexID, edgeID EdgeID) {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if v, ok := g.vertices[fromID]; ok {
		v.Outgoing = removeID(v.Outgoing, edgeID)
	}
	if v, ok := g.vertices[toID]; ok {
		v.Incoming = removeID(v.Incoming, edgeID)
	}
}

func removeID(ids []EdgeID, target EdgeID) []EdgeID {
	out := ids[:0]
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}

	return out
}

// HasOutgoingLink reports whether fromID already has an outgoing edge of
// kind to toID, implementing the duplicate-suppression rule from spec.md
// §4.6: "before creating a permanent bidirectional link, scan the from
// vertex's outgoing list for an existing link of the same variant to the
// same target."
func (g *Graph) HasOutgoingLink(fromID, toID VertexID, kind EdgeKind) bool {
	g.muVert.RLock()
	outgoing := append([]EdgeID(nil), g.vertices[fromID].outgoingOrNil()...)
	g.muVert.RUnlock()

	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	for _, id := range outgoing {
		if e, ok := g.edges[id]; ok && e.Kind == kind && e.To == toID {
			return true
		}
	}

	return false
}

// outgoingOrNil lets HasOutgoingLink dereference a possibly-nil *Vertex
// without a separate existence check at the call site.
func (v *Vertex) outgoingOrNil() []EdgeID {
	if v == nil {
		return nil
	}

	return v.Outgoing
}

// LinkBidirectional creates the permanent reverse pair of link edges
// spec.md Invariant 1 requires: a forward edge fromID->toID and a reverse
// edge toID->fromID, both of kind, both carrying wheelchair. It is a no-op
// in either direction where HasOutgoingLink already reports an identical
// link, satisfying Invariant 2 (no duplicate link edges) and the
// idempotent-re-link supplement in SPEC_FULL.md §9.
//
// Returns the two edges created (nil where suppressed as a duplicate).
func (g *Graph) LinkBidirectional(fromID, toID VertexID, kind EdgeKind, wheelchair bool) (forward, backward *Edge) {
	if !g.HasOutgoingLink(fromID, toID, kind) {
		forward = g.AddEdge(kind, fromID, toID, nil, 0, wheelchair, nil)
	}
	if !g.HasOutgoingLink(toID, fromID, kind) {
		backward = g.AddEdge(kind, toID, fromID, nil, 0, wheelchair, nil)
	}

	return forward, backward
}
