// Package graph is the street-network arena: the in-memory container of
// permanent vertices and edges that the linker (package linker) attaches
// entities to, plus the ephemeral TemporaryArena a single routing request
// uses to hold its scratch splitter vertices and free edges.
//
// Vertices and edges are stored in maps keyed by integer ID rather than
// linked to each other by pointer. This avoids the reference cycles a
// pointer-based Vertex<->Edge graph would otherwise create, and it is what
// lets a Vertex's Incoming/Outgoing lists be plain, comparable, loggable
// []EdgeID slices instead of opaque pointer slices.
package graph

import (
	"errors"

	"github.com/paulmach/orb"
	"github.com/trailmesh/streetlink/geo"
)

// Sentinel errors for arena operations. As in the teacher convention, these
// are never wrapped with formatted text at the definition site; callers
// attach context with fmt.Errorf("%w", ...) if needed.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex ID the
	// arena does not know about.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced an edge ID the
	// arena does not know about.
	ErrEdgeNotFound = errors.New("graph: edge not found")
)

// VertexID uniquely identifies a Vertex within a Graph or TemporaryArena.
// Permanent IDs are positive, assigned sequentially from the Graph's own
// counter. TemporaryArena IDs are negative, assigned from their own
// counter, so a stray ID can never be mistaken for belonging to the other
// arena.
type VertexID int64

// EdgeID uniquely identifies an Edge the same way VertexID does for
// vertices: positive for permanent edges, negative for temporary ones.
type EdgeID int64

// VertexKind tags which of the street-network entity variants a Vertex is.
// Dispatch on this tag (rather than a type assertion or subclass test)
// keeps the link-edge factory (package linker) exhaustiveness-checkable.
type VertexKind uint8

const (
	// KindStreet is an ordinary street intersection.
	KindStreet VertexKind = iota
	// KindSplitter is a permanent vertex introduced by a destructive split.
	KindSplitter
	// KindTemporarySplitter is an ephemeral split vertex for a single
	// routing request; never written by destructive code paths.
	KindTemporarySplitter
	// KindTransitStop is a transit stop that must link to the street graph.
	KindTransitStop
	// KindBikeRentalStation is a bike-rental station vertex.
	KindBikeRentalStation
	// KindBikePark is a bike-park location vertex.
	KindBikePark
	// KindTemporaryStreetLocation is an ephemeral origin/destination.
	KindTemporaryStreetLocation
)

// Temporary reports whether k is one of the two ephemeral vertex kinds.
// Invariant 5 (spec.md §3) is enforced against this: destructive code paths
// must never touch a vertex for which Temporary returns true.
func (k VertexKind) Temporary() bool {
	return k == KindTemporarySplitter || k == KindTemporaryStreetLocation
}

// EdgeKind tags which of the street/link edge variants an Edge is.
type EdgeKind uint8

const (
	// KindStreetEdge is an ordinary traversable street edge.
	KindStreetEdge EdgeKind = iota
	// KindStreetTransitLink connects a street vertex to a TransitStop.
	KindStreetTransitLink
	// KindStreetBikeRentalLink connects a street vertex to a
	// BikeRentalStationVertex.
	KindStreetBikeRentalLink
	// KindStreetBikeParkLink connects a street vertex to a BikeParkVertex.
	KindStreetBikeParkLink
	// KindTemporaryFreeEdge connects a TemporaryStreetLocation to the
	// street graph (or to a transit stop, in the fallback path).
	KindTemporaryFreeEdge
)

// IsLink reports whether k is one of the link-edge variants (as opposed to
// KindStreetEdge).
func (k EdgeKind) IsLink() bool {
	return k != KindStreetEdge
}

// Temporary reports whether k is the one ephemeral edge kind.
func (k EdgeKind) Temporary() bool {
	return k == KindTemporaryFreeEdge
}

// ElevationSample is one point of a StreetEdge's elevation profile: the
// distance along the edge's geometry (in the same units as the geometry,
// i.e. degrees) and the elevation in meters at that distance. Samples are
// stored in increasing DistanceAlong order.
//
// Preserving this profile across a destructive split (rather than dropping
// it, as the linker this module is modeled on historically did) is the
// resolution to the elevation Open Question in spec.md §9.
type ElevationSample struct {
	DistanceAlong float64
	ElevationM    float64
}

// VertexData holds kind-specific fields. Each VertexKind has exactly one
// concrete VertexData implementation, and a Vertex's Data field is expected
// to hold that kind's type. Graph.AddVertex and TemporaryArena.AddVertex
// take the kind and the data separately and do not check that they match.
type VertexData interface {
	isVertexData()
}

// StreetData is the VertexData for KindStreet.
type StreetData struct{}

func (StreetData) isVertexData() {}

// SplitterData is the VertexData for KindSplitter.
type SplitterData struct {
	SourceEdgeID EdgeID
}

func (SplitterData) isVertexData() {}

// TemporarySplitterData is the VertexData for KindTemporarySplitter.
type TemporarySplitterData struct {
	SourceEdgeID EdgeID
	EndVertex    bool
	Wheelchair   bool
}

func (TemporarySplitterData) isVertexData() {}

// TransitStopData is the VertexData for KindTransitStop.
type TransitStopData struct {
	StopID     string
	Wheelchair bool
}

func (TransitStopData) isVertexData() {}

// BikeRentalStationData is the VertexData for KindBikeRentalStation.
type BikeRentalStationData struct {
	StationID string
}

func (BikeRentalStationData) isVertexData() {}

// BikeParkData is the VertexData for KindBikePark.
type BikeParkData struct {
	ParkID string
}

func (BikeParkData) isVertexData() {}

// TemporaryStreetLocationData is the VertexData for
// KindTemporaryStreetLocation.
type TemporaryStreetLocationData struct {
	Name       string
	EndVertex  bool
	Wheelchair bool
}

func (TemporaryStreetLocationData) isVertexData() {}

// Vertex is an element of the street graph. Incoming and Outgoing are the
// IDs of edges terminating at / originating from this vertex; they are the
// only adjacency representation the arena keeps (no back-pointers on Edge).
type Vertex struct {
	ID       VertexID
	Kind     VertexKind
	Label    string
	Lon, Lat float64
	Data     VertexData

	Incoming []EdgeID
	Outgoing []EdgeID
}

// Coord returns the vertex's coordinate as an orb.Point, the representation
// package geo works in.
func (v *Vertex) Coord() orb.Point {
	return orb.Point{v.Lon, v.Lat}
}

// Edge is a directed, traversable (or link) edge between two vertices.
type Edge struct {
	ID   EdgeID
	Kind EdgeKind
	From VertexID
	To   VertexID

	// Geometry is nil for link edges; they are logically zero-length.
	Geometry   orb.LineString
	Modes      geo.Set
	Wheelchair bool
	Elevation  []ElevationSample
}

// Traversable reports whether e can be used under any mode in modes.
func (e *Edge) Traversable(modes geo.Set) bool {
	return uint8(e.Modes)&uint8(modes) != 0
}
