package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/paulmach/orb"

	"github.com/trailmesh/streetlink/geo"
	"github.com/trailmesh/streetlink/graph"
	"github.com/trailmesh/streetlink/spatial"
)

// fixtureVertex is the on-disk shape of one vertex in a graph fixture.
// kind selects which VertexData variant is constructed; only the four
// vertex kinds a fixture can legitimately describe (street, transit stops,
// bike-rental stations, bike parks) are accepted — splitter and temporary
// vertices only ever come from a linker run, never from a fixture.
type fixtureVertex struct {
	ID         int64   `json:"id"`
	Kind       string  `json:"kind"`
	Label      string  `json:"label"`
	Lon        float64 `json:"lon"`
	Lat        float64 `json:"lat"`
	StopID     string  `json:"stop_id,omitempty"`
	StationID  string  `json:"station_id,omitempty"`
	ParkID     string  `json:"park_id,omitempty"`
	Wheelchair bool    `json:"wheelchair,omitempty"`
}

// fixtureEdge is the on-disk shape of one street edge. Geometry is a list
// of [lon, lat] pairs and must have at least two points.
type fixtureEdge struct {
	From       int64       `json:"from"`
	To         int64       `json:"to"`
	Modes      []string    `json:"modes"`
	Wheelchair bool        `json:"wheelchair,omitempty"`
	Geometry   [][]float64 `json:"geometry"`
}

// fixture is the top-level document cmd/streetlink-link loads.
type fixture struct {
	Vertices []fixtureVertex `json:"vertices"`
	Edges    []fixtureEdge   `json:"edges"`
}

// loadFixture reads path and builds a permanent graph.Graph along with the
// spatial indices the linker package needs, matching the fixture's
// vertices and edges. Vertex IDs in the fixture file are remapped to the
// graph's own sequential IDs; fixtureIDs records the mapping so edges (and
// any future diagnostics keyed by fixture ID) can resolve against it.
func loadFixture(path string) (*graph.Graph, *spatial.EdgeIndex, *spatial.StopIndex, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("streetlink-link: read fixture: %w", err)
	}

	var f fixture
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, nil, nil, fmt.Errorf("streetlink-link: parse fixture: %w", err)
	}

	g := graph.NewGraph()
	edgeIndex := spatial.NewEdgeIndex()
	stopIndex := spatial.NewStopIndex()

	fixtureIDs := make(map[int64]graph.VertexID, len(f.Vertices))

	for _, fv := range f.Vertices {
		kind, data, err := vertexDataFor(fv)
		if err != nil {
			return nil, nil, nil, err
		}

		v := g.AddVertex(kind, fv.Label, fv.Lon, fv.Lat, data)
		fixtureIDs[fv.ID] = v.ID

		if kind != graph.KindStreet {
			stopIndex.Insert(v)
		}
	}

	for _, fe := range f.Edges {
		from, ok := fixtureIDs[fe.From]
		if !ok {
			return nil, nil, nil, fmt.Errorf("streetlink-link: edge references unknown vertex %d", fe.From)
		}
		to, ok := fixtureIDs[fe.To]
		if !ok {
			return nil, nil, nil, fmt.Errorf("streetlink-link: edge references unknown vertex %d", fe.To)
		}
		if len(fe.Geometry) < 2 {
			return nil, nil, nil, fmt.Errorf("streetlink-link: edge %d->%d geometry needs at least two points", fe.From, fe.To)
		}

		geometry := make(orb.LineString, len(fe.Geometry))
		for i, pt := range fe.Geometry {
			geometry[i] = orb.Point{pt[0], pt[1]}
		}

		modes := modeSetFor(fe.Modes)

		e := g.AddEdge(graph.KindStreetEdge, from, to, geometry, modes, fe.Wheelchair, nil)
		edgeIndex.Insert(e)
	}

	return g, edgeIndex, stopIndex, nil
}

func vertexDataFor(fv fixtureVertex) (graph.VertexKind, graph.VertexData, error) {
	switch fv.Kind {
	case "street":
		return graph.KindStreet, graph.StreetData{}, nil
	case "transit_stop":
		return graph.KindTransitStop, graph.TransitStopData{StopID: fv.StopID, Wheelchair: fv.Wheelchair}, nil
	case "bike_rental_station":
		return graph.KindBikeRentalStation, graph.BikeRentalStationData{StationID: fv.StationID}, nil
	case "bike_park":
		return graph.KindBikePark, graph.BikeParkData{ParkID: fv.ParkID}, nil
	default:
		return 0, nil, fmt.Errorf("streetlink-link: unknown vertex kind %q", fv.Kind)
	}
}

func modeSetFor(names []string) geo.Set {
	var set geo.Set
	for _, name := range names {
		switch name {
		case "WALK":
			set = set.With(geo.Walk)
		case "BICYCLE":
			set = set.With(geo.Bicycle)
		case "CAR":
			set = set.With(geo.Car)
		case "TRANSIT":
			set = set.With(geo.Transit)
		}
	}

	return set
}
