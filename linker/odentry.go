package linker

import (
	"github.com/trailmesh/streetlink/geo"
	"github.com/trailmesh/streetlink/graph"
)

// NewOriginDestination implements spec.md §4.8: create a
// TemporaryStreetLocation at (lon, lat) and link it non-destructively
// against the effective mode set for this request.
//
// endVertex marks this location as a path's terminal vertex (a destination)
// rather than its start (an origin); it controls the orientation of the
// free edges CreateLinks creates and is recorded on any temporary splitter
// vertex the link creates. wheelchair is carried onto the TemporaryStreetLocationData
// unchanged so downstream accessibility filtering sees it.
//
// The effective mode set is spec.md §9's resolved Open Question, preserved
// exactly as the asymmetric if/else chain it specifies rather than a
// seemingly-equivalent switch: car takes precedence whenever it is
// requested, except that a park-and-ride or kiss-and-ride end vertex
// substitutes walk for it; only when car was not requested at all does walk
// get considered, and only when neither car nor walk were requested does
// bicycle. A location that fails to link under its effective mode logs a
// warning and returns ok == false; the caller owns arena's lifetime and is
// expected to discard it on request failure.
func NewOriginDestination(l *Linker, arena *graph.TemporaryArena, lon, lat float64, label string, endVertex, wheelchair bool, opts Options) (*graph.Vertex, bool) {
	data := graph.TemporaryStreetLocationData{Name: label, EndVertex: endVertex, Wheelchair: wheelchair}
	v := arena.AddVertex(graph.KindTemporaryStreetLocation, label, lon, lat, data)

	modes := effectiveModes(opts, endVertex)

	ok, err := l.LinkToGraph(v, modes, opts, false, arena)
	if err != nil {
		l.Logger.Warnf("linker: origin/destination link failed for %q: %v", label, err)

		return v, false
	}
	if !ok {
		l.Logger.Warnf("linker: could not link %q to the street graph", label)
	}

	return v, ok
}

// effectiveModes reproduces the exact precedence spec.md §9 settled on:
// car, unless this is a park-and-ride or kiss-and-ride end vertex (which
// switches to walk instead); else walk; else bicycle. Each branch returns
// immediately with a single-mode set, so a requested car mode is never
// re-checked against walk or bicycle even when the park-and-ride/
// kiss-and-ride substitution applies, and a car request never leaves a
// stray walk or bicycle bit that would let the ranker match an edge the
// effective mode does not actually support.
func effectiveModes(opts Options, endVertex bool) geo.Set {
	modes := opts.Modes()

	if modes.Has(geo.Car) {
		if endVertex && (opts.ParkAndRide() || opts.KissAndRide()) {
			return geo.NewSet(geo.Walk)
		}

		return geo.NewSet(geo.Car)
	}

	if modes.Has(geo.Walk) {
		return geo.NewSet(geo.Walk)
	}

	return geo.NewSet(geo.Bicycle)
}
