package spatial

import (
	"sync"

	"github.com/paulmach/orb"
	"github.com/tidwall/rtree"
	"github.com/trailmesh/streetlink/graph"
)

// EdgeIndex is the C3 spatial index adapter over street edges. Insert is
// safe for concurrent use; Query is not synchronized, matching spec.md
// §4.3 ("reads need not be [serialized]") and §5 ("no operation ... awaits;
// all I/O is in-memory").
//
// The zero value is an empty, usable index; NewEdgeIndex returns a pointer
// to one.
type EdgeIndex struct {
	mu   sync.Mutex
	tree rtree.RTreeG[*graph.Edge]
}

// NewEdgeIndex constructs an empty edge index.
func NewEdgeIndex() *EdgeIndex {
	return &EdgeIndex{}
}

// Insert adds e's geometry to the index under the index's write lock. Used
// for the initial bulk population of a graph build, where no split is in
// progress and a short-lived lock per edge is cheap.
func (ix *EdgeIndex) Insert(e *graph.Edge) {
	min, max := lineStringBound(e.Geometry)
	ix.mu.Lock()
	ix.tree.Insert(min, max, e)
	ix.mu.Unlock()
}

// Lock acquires the index's write mutex. Callers performing a destructive
// split hold this across both InsertLocked calls and the graph adjacency
// removal that accompanies them (spec.md §4.5), and nothing else — holding
// it over candidate ranking or distance scoring would serialize the whole
// linker for no benefit (spec.md §9).
func (ix *EdgeIndex) Lock() { ix.mu.Lock() }

// Unlock releases the write mutex acquired by Lock.
func (ix *EdgeIndex) Unlock() { ix.mu.Unlock() }

// InsertLocked adds e's geometry to the index. The caller must already hold
// the index's lock via Lock.
func (ix *EdgeIndex) InsertLocked(e *graph.Edge) {
	min, max := lineStringBound(e.Geometry)
	ix.tree.Insert(min, max, e)
}

// Query returns every edge whose bounding envelope intersects env. The
// result is unordered and may contain edges that have since been split out
// of the graph (spec.md §4.3); callers must filter with graph.Graph.InGraph.
func (ix *EdgeIndex) Query(env orb.Bound) []*graph.Edge {
	min := [2]float64{env.Min[0], env.Min[1]}
	max := [2]float64{env.Max[0], env.Max[1]}

	var out []*graph.Edge
	ix.tree.Search(min, max, func(_, _ [2]float64, data *graph.Edge) bool {
		out = append(out, data)
		return true
	})

	return out
}

// StopIndex is the same adapter specialized for point entities: transit
// stops, bike-rental stations, and bike-park locations. The linker queries
// it only for the non-destructive transit-stop fallback search (spec.md
// §4.7 step 3); the station-linking pass does not read it.
type StopIndex struct {
	mu   sync.Mutex
	tree rtree.RTreeG[*graph.Vertex]
}

// NewStopIndex constructs an empty stop index.
func NewStopIndex() *StopIndex {
	return &StopIndex{}
}

// Insert adds v's coordinate to the index.
func (ix *StopIndex) Insert(v *graph.Vertex) {
	pt := [2]float64{v.Lon, v.Lat}
	ix.mu.Lock()
	ix.tree.Insert(pt, pt, v)
	ix.mu.Unlock()
}

// Query returns every stop vertex whose point falls within env.
func (ix *StopIndex) Query(env orb.Bound) []*graph.Vertex {
	min := [2]float64{env.Min[0], env.Min[1]}
	max := [2]float64{env.Max[0], env.Max[1]}

	var out []*graph.Vertex
	ix.tree.Search(min, max, func(_, _ [2]float64, data *graph.Vertex) bool {
		out = append(out, data)
		return true
	})

	return out
}

// lineStringBound computes the [2]float64 min/max envelope of ls for
// insertion into the R-tree.
func lineStringBound(ls orb.LineString) ([2]float64, [2]float64) {
	if len(ls) == 0 {
		return [2]float64{}, [2]float64{}
	}

	min := [2]float64{ls[0][0], ls[0][1]}
	max := min
	for _, pt := range ls[1:] {
		if pt[0] < min[0] {
			min[0] = pt[0]
		}
		if pt[1] < min[1] {
			min[1] = pt[1]
		}
		if pt[0] > max[0] {
			max[0] = pt[0]
		}
		if pt[1] > max[1] {
			max[1] = pt[1]
		}
	}

	return min, max
}
