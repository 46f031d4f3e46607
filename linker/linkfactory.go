package linker

import "github.com/trailmesh/streetlink/graph"

// CreateLinks implements the C6 link-edge factory (spec.md §4.6):
// dispatch on entity's VertexKind to create the correct link edge(s)
// between entity and target.
//
// The three station kinds (TransitStop, BikeRentalStationVertex,
// BikeParkVertex) always create a permanent bidirectional pair through g
// and rely on graph.Graph.LinkBidirectional for the duplicate-suppression
// rule (spec.md §4.6: "before creating a permanent bidirectional link, scan
// the from vertex's outgoing list ..."). TemporaryStreetLocation always
// creates exactly one TemporaryFreeEdge in arena, oriented by its
// end-vertex flag.
//
// Every branch here is exhaustive over graph.VertexKind; an entity of any
// other kind (KindStreet, KindSplitter, KindTemporarySplitter — none of
// which are ever the linked-in entity, only the link target) reaching this
// function is the unreachable ErrUnhandledVertexKind case.
func CreateLinks(g *graph.Graph, arena *graph.TemporaryArena, entity, target *graph.Vertex) error {
	switch entity.Kind {
	case graph.KindTransitStop:
		if g == nil {
			return ErrNonDestructivePermanentLink
		}
		data := entity.Data.(graph.TransitStopData)
		g.LinkBidirectional(entity.ID, target.ID, graph.KindStreetTransitLink, data.Wheelchair)

		return nil

	case graph.KindBikeRentalStation:
		if g == nil {
			return ErrNonDestructivePermanentLink
		}
		g.LinkBidirectional(entity.ID, target.ID, graph.KindStreetBikeRentalLink, false)

		return nil

	case graph.KindBikePark:
		if g == nil {
			return ErrNonDestructivePermanentLink
		}
		g.LinkBidirectional(entity.ID, target.ID, graph.KindStreetBikeParkLink, false)

		return nil

	case graph.KindTemporaryStreetLocation:
		if arena == nil {
			return ErrDestructiveTemporary
		}
		data := entity.Data.(graph.TemporaryStreetLocationData)
		wheelchair := data.Wheelchair
		if target.Kind == graph.KindTemporarySplitter {
			wheelchair = target.Data.(graph.TemporarySplitterData).Wheelchair
		}

		if data.EndVertex {
			arena.AddFreeEdge(target.ID, entity.ID, wheelchair)
		} else {
			arena.AddFreeEdge(entity.ID, target.ID, wheelchair)
		}

		return nil

	default:
		return ErrUnhandledVertexKind
	}
}
