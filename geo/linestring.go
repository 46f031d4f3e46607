package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// SplitAt divides ls at the coordinate identified by loc, returning the
// split point itself and the two resulting line strings. The split point
// is duplicated as the last point of the first half and the first point of
// the second, so each half remains a valid, independently traversable
// polyline.
func SplitAt(ls orb.LineString, loc LinearLocation) (orb.Point, orb.LineString, orb.LineString) {
	a, b := ls[loc.SegmentIndex], ls[loc.SegmentIndex+1]
	splitPt := orb.Point{
		a[0] + loc.Fraction*(b[0]-a[0]),
		a[1] + loc.Fraction*(b[1]-a[1]),
	}

	first := make(orb.LineString, 0, loc.SegmentIndex+2)
	first = append(first, ls[:loc.SegmentIndex+1]...)
	first = append(first, splitPt)

	second := make(orb.LineString, 0, len(ls)-loc.SegmentIndex)
	second = append(second, splitPt)
	second = append(second, ls[loc.SegmentIndex+1:]...)

	return splitPt, first, second
}

// Length returns the total unprojected (raw coordinate-space) length of ls,
// summing each segment's Euclidean length. This is not a geodesic distance;
// it exists only to redistribute proportional quantities (like elevation
// samples) across a split, where the projection used for ranking and
// distance scoring does not matter.
func Length(ls orb.LineString) float64 {
	var total float64
	for i := 0; i < len(ls)-1; i++ {
		total += segmentLength(ls[i], ls[i+1])
	}

	return total
}

// LengthUpTo returns the raw-coordinate-space length of ls from its start
// up to the point identified by loc.
func LengthUpTo(ls orb.LineString, loc LinearLocation) float64 {
	var total float64
	for i := 0; i < loc.SegmentIndex; i++ {
		total += segmentLength(ls[i], ls[i+1])
	}
	total += loc.Fraction * segmentLength(ls[loc.SegmentIndex], ls[loc.SegmentIndex+1])

	return total
}

func segmentLength(a, b orb.Point) float64 {
	return math.Hypot(b[0]-a[0], b[1]-a[1])
}
