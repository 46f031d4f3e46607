package linker

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/trailmesh/streetlink/geo"
	"github.com/trailmesh/streetlink/graph"
	"github.com/trailmesh/streetlink/spatial"
)

// Linker is the C7 orchestrator: the top-level linkToGraph / linkAll entry
// points spec.md §4.7 describes, bound to a single graph.Graph, its
// spatial.EdgeIndex, and (optionally) a spatial.StopIndex for the
// transit-stop fallback search.
//
// spec.md §5 restricts a linker instance to single-threaded use: graph
// build calls LinkAllStationsToGraph from one goroutine, and concurrent
// linkers sharing one graph are forbidden. Request-time origin/destination
// linking (package linker's odentry.go) is safe to run concurrently across
// requests only because each request owns a disjoint TemporaryArena and the
// permanent graph is logically read-only during that phase.
type Linker struct {
	Graph     *graph.Graph
	EdgeIndex *spatial.EdgeIndex
	StopIndex *spatial.StopIndex
	Sink      AnnotationSink
	Logger    Logger
}

// NewLinker constructs a Linker. sink and logger may be nil, in which case
// NopAnnotationSink and NopLogger are used.
func NewLinker(g *graph.Graph, edgeIndex *spatial.EdgeIndex, stopIndex *spatial.StopIndex, sink AnnotationSink, logger Logger) *Linker {
	if sink == nil {
		sink = NopAnnotationSink{}
	}
	if logger == nil {
		logger = NopLogger{}
	}

	return &Linker{Graph: g, EdgeIndex: edgeIndex, StopIndex: stopIndex, Sink: sink, Logger: logger}
}

// LinkReport summarizes a LinkAllStationsToGraph pass. It is additive to
// the annotation-sink contract spec.md §4.7 already specifies, giving a
// build-time count without re-deriving it from annotations (SPEC_FULL.md
// §9 supplement).
type LinkReport struct {
	Linked   int
	Unlinked int
}

// LinkAllStationsToGraph implements spec.md §4.7's linkAllStationsToGraph:
// iterate every vertex in the graph, and for each TransitStop,
// BikeRentalStationVertex, or BikePark, destructively link it to the
// closest walkable edge. No single vertex's failure stops the loop; a miss
// is recorded on the annotation sink and counted in the returned report.
//
// Calling this twice on the same graph is idempotent: every link it
// creates goes through CreateLinks's duplicate suppression, so a second
// pass creates no new edges (SPEC_FULL.md §9).
func (l *Linker) LinkAllStationsToGraph() LinkReport {
	var report LinkReport

	for _, v := range l.Graph.Vertices() {
		switch v.Kind {
		case graph.KindTransitStop, graph.KindBikeRentalStation, graph.KindBikePark:
		default:
			continue
		}

		ok, err := l.LinkToGraph(v, geo.NewSet(geo.Walk), nil, true, nil)
		if err != nil {
			// This pass passes no Options carrier and so can never
			// observe ErrTrivialPath; any other error here is a
			// programmer error in wiring, not a per-vertex failure.
			panic(fmt.Sprintf("linker: LinkAllStationsToGraph: %v", err))
		}

		if ok {
			report.Linked++

			continue
		}

		report.Unlinked++
		switch v.Kind {
		case graph.KindTransitStop:
			l.Sink.StopUnlinked(v)
		case graph.KindBikeRentalStation:
			l.Sink.BikeRentalStationUnlinked(v)
		case graph.KindBikePark:
			l.Sink.BikeParkUnlinked(v)
		}
	}

	return report
}

// LinkToGraph implements spec.md §4.7's linkToGraph. v is the entity
// vertex being linked (already created, permanent or temporary as
// appropriate for destructive). modes is the traversal-mode set to search
// under (bicycle is augmented with walk by RankEdges). opts may be nil for
// destructive calls, which never consult it. arena must be non-nil exactly
// when destructive is false.
func (l *Linker) LinkToGraph(v *graph.Vertex, modes geo.Set, opts Options, destructive bool, arena *graph.TemporaryArena) (bool, error) {
	query := v.Coord()
	projector := geo.NewProjector(v.Lat)

	candidates, hit := RankEdges(l.EdgeIndex, l.Graph, query, projector, modes, MaxSearchRadiusMeters)
	if hit {
		for _, c := range candidates {
			if err := l.linkToEdge(v, c.Edge, opts, destructive, arena); err != nil {
				return false, err
			}
		}

		if v.Kind == graph.KindTransitStop {
			bestMeters := candidates[0].Distance * geo.MetersPerDegreeLat
			if bestMeters > WarningDistanceMeters {
				l.Sink.StopLinkedTooFar(v, bestMeters)
			}
		}

		return true, nil
	}

	// Miss: street-edge fallback to the transit-stop index, destructive
	// linking never falls back (spec.md §4.7 step 3).
	if destructive || l.StopIndex == nil {
		return false, nil
	}

	stops, stopHit := RankStops(l.StopIndex, query, projector, MaxSearchRadiusMeters)
	if !stopHit {
		return false, nil
	}

	data, ok := v.Data.(graph.TemporaryStreetLocationData)
	if !ok {
		return false, fmt.Errorf("linker: LinkToGraph: %w", ErrNonDestructivePermanentLink)
	}

	for _, sc := range stops {
		if data.EndVertex {
			arena.AddFreeEdge(sc.Stop.ID, v.ID, false)
		} else {
			arena.AddFreeEdge(v.ID, sc.Stop.ID, false)
		}
	}

	return true, nil
}

// linkToEdge implements spec.md §4.7's linkToEdge helper: re-project v into
// edge's own local frame (anchored at the edge's midpoint, per spec.md
// §4.7 — a tighter local approximation than the query-vertex-anchored
// projection RankEdges used for overall distance scoring), compute the
// linear location, apply the endpoint-snapping rules, and otherwise split
// and link.
func (l *Linker) linkToEdge(v *graph.Vertex, edge *graph.Edge, opts Options, destructive bool, arena *graph.TemporaryArena) error {
	mid := midpoint(edge.Geometry)
	projector := geo.NewProjector(mid[1])
	_, loc := projector.DistanceToLineString(v.Coord(), edge.Geometry)

	endVertex := false
	if data, ok := v.Data.(graph.TemporaryStreetLocationData); ok {
		endVertex = data.EndVertex
	}

	target, err := l.resolveSplitTarget(edge, loc, opts, destructive, arena, endVertex)
	if err != nil {
		return err
	}

	return CreateLinks(l.Graph, arena, v, target)
}

// resolveSplitTarget applies the edge-split policy from spec.md §4.7: ask
// opts.CanSplitEdge before splitting (skipped entirely when opts is nil,
// and skipped when loc snaps to one of the edge's endpoints, since no split
// happens then). A CanSplitEdge error — ErrTrivialPath
// in practice — is returned unwrapped; the linker does not catch it. When
// CanSplitEdge reports the edge may not be split, the nearer endpoint is
// used directly instead of creating a splitter vertex.
func (l *Linker) resolveSplitTarget(edge *graph.Edge, loc geo.LinearLocation, opts Options, destructive bool, arena *graph.TemporaryArena, endVertex bool) (*graph.Vertex, error) {
	numPoints := len(edge.Geometry)
	atEndpoint := (loc.SegmentIndex == 0 && loc.Fraction < EndpointSnapEpsilon) ||
		loc.SegmentIndex == numPoints-1 ||
		(loc.SegmentIndex == numPoints-2 && loc.Fraction > 1-EndpointSnapEpsilon)

	if opts != nil && !atEndpoint {
		canSplit, err := opts.CanSplitEdge(edge)
		if err != nil {
			return nil, err
		}
		if !canSplit {
			id := edge.From
			if loc.Fraction > 0.5 {
				id = edge.To
			}

			return vertexFor(l.Graph, arena, id)
		}
	}

	return SplitEdge(l.Graph, l.EdgeIndex, arena, edge, loc, destructive, endVertex)
}

// midpoint returns the vertex-wise midpoint of ls (its middle vertex, or
// the point halfway between its two middle vertices when ls has an even
// number of points), used only to anchor the per-edge local projection in
// linkToEdge. It does not need to be the precise arc-length midpoint: any
// point near the edge's center keeps the equirectangular approximation
// accurate for the edge's own extent.
func midpoint(ls orb.LineString) orb.Point {
	if len(ls) == 0 {
		return orb.Point{}
	}

	a, b := ls[(len(ls)-1)/2], ls[len(ls)/2]

	return orb.Point{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2}
}
