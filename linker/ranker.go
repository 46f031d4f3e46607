package linker

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/trailmesh/streetlink/geo"
	"github.com/trailmesh/streetlink/graph"
	"github.com/trailmesh/streetlink/spatial"
)

// EdgeCandidate is one surviving edge from RankEdges: the edge itself, its
// projected distance in degrees of latitude, and the linear location of
// its closest point to the query coordinate.
type EdgeCandidate struct {
	Edge     *graph.Edge
	Distance float64
	Location geo.LinearLocation
}

// StopCandidate is one surviving stop from RankStops.
type StopCandidate struct {
	Stop     *graph.Vertex
	Distance float64
}

// RankEdges implements the C4 candidate ranker over street edges
// (spec.md §4.4): build an envelope around query, collect edges that are
// traversable and still in-graph, score them, sort, and return the
// epsilon cluster. ok is false on a miss (no survivors, or the closest
// survivor is beyond radiusMeters).
//
// Results are built into a freshly allocated slice and sorted with
// sort.SliceStable — never a map — so the resulting order (and, in turn,
// which candidates fall in the epsilon cluster) never depends on Go's
// randomized map iteration order (spec.md §9: "do not use hash-backed
// containers for intermediate candidate storage").
func RankEdges(index *spatial.EdgeIndex, g *graph.Graph, query orb.Point, projector geo.Projector, modes geo.Set, radiusMeters float64) ([]EdgeCandidate, bool) {
	searchModes := modes.ForSearch()
	env := projector.Envelope(query, radiusMeters)

	hits := index.Query(env)

	candidates := make([]EdgeCandidate, 0, len(hits))
	for _, e := range hits {
		if !e.Traversable(searchModes) {
			continue
		}
		if !g.InGraph(e) {
			continue
		}
		dist, loc := projector.DistanceToLineString(query, e.Geometry)
		candidates = append(candidates, EdgeCandidate{Edge: e, Distance: dist, Location: loc})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Distance != candidates[j].Distance {
			return candidates[i].Distance < candidates[j].Distance
		}

		return candidates[i].Edge.ID < candidates[j].Edge.ID
	})

	radiusDeg := geo.MetersToDegreesLat(radiusMeters)
	if len(candidates) == 0 || candidates[0].Distance > radiusDeg {
		return nil, false
	}

	return epsilonClusterEdges(candidates), true
}

// epsilonClusterEdges returns the longest prefix of sorted such that every
// consecutive gap is strictly less than the duplicate-way epsilon, per
// spec.md §4.4 step 6.
func epsilonClusterEdges(sorted []EdgeCandidate) []EdgeCandidate {
	epsilonDeg := geo.MetersToDegreesLat(DuplicateWayEpsilonMeters)

	end := 1
	for end < len(sorted) {
		gap := sorted[end].Distance - sorted[end-1].Distance
		if gap >= epsilonDeg {
			break
		}
		end++
	}

	return sorted[:end]
}

// RankStops implements the same procedure as RankEdges over the transit
// stop index. LinkToGraph uses it only for the non-destructive
// origin/destination fallback-to-stops search (spec.md §4.7 step 3); the
// station-linking pass never calls it.
func RankStops(index *spatial.StopIndex, query orb.Point, projector geo.Projector, radiusMeters float64) ([]StopCandidate, bool) {
	env := projector.Envelope(query, radiusMeters)
	hits := index.Query(env)

	candidates := make([]StopCandidate, 0, len(hits))
	for _, stop := range hits {
		dist := projector.DistanceToPoint(query, stop.Coord())
		candidates = append(candidates, StopCandidate{Stop: stop, Distance: dist})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Distance != candidates[j].Distance {
			return candidates[i].Distance < candidates[j].Distance
		}

		return candidates[i].Stop.ID < candidates[j].Stop.ID
	})

	radiusDeg := geo.MetersToDegreesLat(radiusMeters)
	if len(candidates) == 0 || candidates[0].Distance > radiusDeg {
		return nil, false
	}

	end := 1
	epsilonDeg := geo.MetersToDegreesLat(DuplicateWayEpsilonMeters)
	for end < len(candidates) {
		gap := candidates[end].Distance - candidates[end-1].Distance
		if gap >= epsilonDeg {
			break
		}
		end++
	}

	return candidates[:end], true
}
