package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// MetersPerDegreeLat is the standard equirectangular approximation used to
// convert a search radius in meters into degrees of latitude. It is accurate
// to within a fraction of a percent anywhere on the globe, which is well
// inside the tolerance needed for a search radius measured in meters.
const MetersPerDegreeLat = 111320.0

// Projector holds the per-query longitude scale factor for an
// equirectangular projection centered near a reference latitude.
//
// Projecting (lon, lat) as (lon*XScale, lat) turns great-circle proximity
// into ordinary Euclidean proximity for the small radii (a few kilometers)
// this linker searches over. It is a local approximation, not a general
// map projection — do not reuse a Projector across widely separated
// reference latitudes.
type Projector struct {
	XScale float64
}

// NewProjector derives XScale = cos(latDeg · π/180) for a reference latitude.
func NewProjector(latDeg float64) Projector {
	return Projector{XScale: math.Cos(latDeg * math.Pi / 180)}
}

// Project maps a WGS84 coordinate into the local planar frame.
func (p Projector) Project(pt orb.Point) orb.Point {
	return orb.Point{pt[0] * p.XScale, pt[1]}
}

// MetersToDegreesLat converts a metric radius into degrees of latitude under
// the same local approximation used throughout this package.
func MetersToDegreesLat(meters float64) float64 {
	return meters / MetersPerDegreeLat
}

// Envelope builds the search envelope spec.md §4.4 describes: half-width
// radiusDeg/XScale in longitude (wider near the poles, to compensate for
// the projection's longitude compression) and radiusDeg in latitude.
func (p Projector) Envelope(center orb.Point, radiusMeters float64) orb.Bound {
	radiusDeg := MetersToDegreesLat(radiusMeters)
	lonHalfWidth := radiusDeg
	if p.XScale > 0 {
		lonHalfWidth = radiusDeg / p.XScale
	}

	return orb.Bound{
		Min: orb.Point{center[0] - lonHalfWidth, center[1] - radiusDeg},
		Max: orb.Point{center[0] + lonHalfWidth, center[1] + radiusDeg},
	}
}
