package linker

import (
	"go.uber.org/zap"

	"github.com/trailmesh/streetlink/graph"
)

// ZapLogger adapts a *zap.SugaredLogger to the Logger interface so a graph
// build's structured logger can receive the linker's warnings without an
// intermediate translation layer at every call site.
type ZapLogger struct {
	S *zap.SugaredLogger
}

// Warnf implements Logger.
func (z ZapLogger) Warnf(format string, args ...interface{}) {
	z.S.Warnf(format, args...)
}

// ZapAnnotationSink adapts a *zap.SugaredLogger to AnnotationSink, logging
// each non-fatal outcome at warn level with structured fields rather than
// a formatted message, so a build's log aggregator can filter and count
// them by kind.
type ZapAnnotationSink struct {
	S *zap.SugaredLogger
}

// StopUnlinked implements AnnotationSink.
func (z ZapAnnotationSink) StopUnlinked(stop *graph.Vertex) {
	z.S.Warnw("transit stop could not be linked to the street graph",
		"vertexID", stop.ID, "label", stop.Label)
}

// BikeRentalStationUnlinked implements AnnotationSink.
func (z ZapAnnotationSink) BikeRentalStationUnlinked(v *graph.Vertex) {
	z.S.Warnw("bike rental station could not be linked to the street graph",
		"vertexID", v.ID, "label", v.Label)
}

// BikeParkUnlinked implements AnnotationSink.
func (z ZapAnnotationSink) BikeParkUnlinked(v *graph.Vertex) {
	z.S.Warnw("bike park could not be linked to the street graph",
		"vertexID", v.ID, "label", v.Label)
}

// StopLinkedTooFar implements AnnotationSink.
func (z ZapAnnotationSink) StopLinkedTooFar(stop *graph.Vertex, meters float64) {
	z.S.Warnw("transit stop linked farther than the warning distance",
		"vertexID", stop.ID, "label", stop.Label, "meters", meters)
}
