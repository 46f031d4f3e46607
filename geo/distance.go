package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// LinearLocation identifies a point along a polyline by the index of the
// segment it falls on and the fractional distance (0..1) along that segment.
type LinearLocation struct {
	SegmentIndex int
	Fraction     float64
}

// DistanceToPoint returns the projected Euclidean distance between two WGS84
// coordinates, in degrees of latitude.
func (p Projector) DistanceToPoint(a, b orb.Point) float64 {
	pa, pb := p.Project(a), p.Project(b)
	dx, dy := pa[0]-pb[0], pa[1]-pb[1]

	return math.Hypot(dx, dy)
}

// DistanceToLineString returns the minimum projected distance from pt to any
// point on ls, together with the LinearLocation of the closest point.
//
// ls must have at least two points; callers never invoke this on a
// degenerate geometry, since every StreetEdge carries a real polyline.
func (p Projector) DistanceToLineString(pt orb.Point, ls orb.LineString) (float64, LinearLocation) {
	projPt := p.Project(pt)

	best := math.Inf(1)
	var bestLoc LinearLocation

	for i := 0; i < len(ls)-1; i++ {
		a, b := p.Project(ls[i]), p.Project(ls[i+1])
		dist, frac := distanceToSegment(projPt, a, b)
		if dist < best {
			best = dist
			bestLoc = LinearLocation{SegmentIndex: i, Fraction: frac}
		}
	}

	return best, bestLoc
}

// distanceToSegment projects point pt onto the segment a-b (already in the
// projected frame) and returns the perpendicular distance plus the clamped
// fraction [0,1] along the segment of the closest point.
func distanceToSegment(pt, a, b orb.Point) (float64, float64) {
	abx, aby := b[0]-a[0], b[1]-a[1]
	lengthSq := abx*abx + aby*aby

	if lengthSq == 0 {
		// Degenerate segment: a and b coincide.
		return math.Hypot(pt[0]-a[0], pt[1]-a[1]), 0
	}

	apx, apy := pt[0]-a[0], pt[1]-a[1]
	t := (apx*abx + apy*aby) / lengthSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	closestX, closestY := a[0]+t*abx, a[1]+t*aby

	return math.Hypot(pt[0]-closestX, pt[1]-closestY), t
}
