package linker_test

import (
	"github.com/trailmesh/streetlink/geo"
	"github.com/trailmesh/streetlink/graph"
)

// testOptions is a minimal linker.Options double for tests: CanSplitEdge
// always permits the split unless splitErr is set, and the mode/park-ride
// fields are plain struct fields rather than behind accessors.
type testOptions struct {
	modes       geo.Set
	parkAndRide bool
	kissAndRide bool
	splitErr    error
}

func (o testOptions) CanSplitEdge(*graph.Edge) (bool, error) {
	if o.splitErr != nil {
		return false, o.splitErr
	}

	return true, nil
}

func (o testOptions) Modes() geo.Set    { return o.modes }
func (o testOptions) ParkAndRide() bool { return o.parkAndRide }
func (o testOptions) KissAndRide() bool { return o.kissAndRide }

// recordingSink captures every annotation it receives so a test can assert
// on exactly what the linker reported, instead of only on its return value.
type recordingSink struct {
	unlinkedStops    []*graph.Vertex
	unlinkedStations []*graph.Vertex
	unlinkedParks    []*graph.Vertex
	tooFar           []*graph.Vertex
	tooFarMeters     []float64
}

func (s *recordingSink) StopUnlinked(v *graph.Vertex)              { s.unlinkedStops = append(s.unlinkedStops, v) }
func (s *recordingSink) BikeRentalStationUnlinked(v *graph.Vertex) { s.unlinkedStations = append(s.unlinkedStations, v) }
func (s *recordingSink) BikeParkUnlinked(v *graph.Vertex)          { s.unlinkedParks = append(s.unlinkedParks, v) }
func (s *recordingSink) StopLinkedTooFar(v *graph.Vertex, meters float64) {
	s.tooFar = append(s.tooFar, v)
	s.tooFarMeters = append(s.tooFarMeters, meters)
}

// recordingLogger captures every warning passed to it.
type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Warnf(format string, args ...interface{}) {
	l.warnings = append(l.warnings, format)
}
