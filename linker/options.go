package linker

import (
	"github.com/trailmesh/streetlink/geo"
	"github.com/trailmesh/streetlink/graph"
)

// Options is the routing-request carrier spec.md §6 describes: the
// per-request state the linker consults while deciding how to attach an
// origin or destination. The host application supplies its own
// implementation; the linker only ever reads it.
type Options interface {
	// CanSplitEdge asks whether e may still be split for this request. A
	// host implementation uses this to detect the trivial-path case
	// (spec.md §7 category 4: both origin and destination falling on the
	// same edge) and returns ErrTrivialPath when it does; the linker
	// propagates that error without catching it.
	CanSplitEdge(e *graph.Edge) (bool, error)

	// Modes is the traversal-mode set this request is routing under.
	Modes() geo.Set

	// ParkAndRide reports whether this is a park-and-ride request.
	ParkAndRide() bool

	// KissAndRide reports whether this is a kiss-and-ride request.
	KissAndRide() bool
}

// Logger is the minimal structured-logging sink the linker needs: a single
// warning-level call for the "failed to link origin/destination" case in
// spec.md §4.8 step 3. Production callers pass a *zap.SugaredLogger
// (*zap.SugaredLogger satisfies this trivially); tests pass a no-op or a
// recording stub.
type Logger interface {
	Warnf(format string, args ...interface{})
}

// NopLogger discards every message. Useful as a default when a caller does
// not care about warnings.
type NopLogger struct{}

// Warnf implements Logger by discarding msg.
func (NopLogger) Warnf(string, ...interface{}) {}

// AnnotationSink receives the non-fatal outcomes spec.md §6 lists. A build
// or request continues regardless of what the sink does with them; nothing
// in this package inspects the sink's return values because it has none.
type AnnotationSink interface {
	StopUnlinked(stop *graph.Vertex)
	BikeRentalStationUnlinked(v *graph.Vertex)
	BikeParkUnlinked(v *graph.Vertex)
	StopLinkedTooFar(stop *graph.Vertex, meters float64)
}

// NopAnnotationSink discards every annotation.
type NopAnnotationSink struct{}

func (NopAnnotationSink) StopUnlinked(*graph.Vertex)              {}
func (NopAnnotationSink) BikeRentalStationUnlinked(*graph.Vertex) {}
func (NopAnnotationSink) BikeParkUnlinked(*graph.Vertex)          {}
func (NopAnnotationSink) StopLinkedTooFar(*graph.Vertex, float64) {}
