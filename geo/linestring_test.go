package geo_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/trailmesh/streetlink/geo"
)

func TestSplitAtMidSegment(t *testing.T) {
	t.Parallel()

	ls := orb.LineString{{0, 0}, {10, 0}, {10, 10}}
	loc := geo.LinearLocation{SegmentIndex: 0, Fraction: 0.5}

	pt, first, second := geo.SplitAt(ls, loc)

	require.Equal(t, orb.Point{5, 0}, pt)
	require.Equal(t, orb.LineString{{0, 0}, {5, 0}}, first)
	require.Equal(t, orb.LineString{{5, 0}, {10, 0}, {10, 10}}, second)
}

func TestSplitAtSecondSegment(t *testing.T) {
	t.Parallel()

	ls := orb.LineString{{0, 0}, {10, 0}, {10, 10}}
	loc := geo.LinearLocation{SegmentIndex: 1, Fraction: 0.25}

	pt, first, second := geo.SplitAt(ls, loc)

	require.Equal(t, orb.Point{10, 2.5}, pt)
	require.Equal(t, orb.LineString{{0, 0}, {10, 0}, {10, 2.5}}, first)
	require.Equal(t, orb.LineString{{10, 2.5}, {10, 10}}, second)
}

func TestLength(t *testing.T) {
	t.Parallel()

	ls := orb.LineString{{0, 0}, {3, 4}, {3, 0}}
	require.InDelta(t, 9, geo.Length(ls), 1e-9)
}

func TestLengthUpTo(t *testing.T) {
	t.Parallel()

	ls := orb.LineString{{0, 0}, {10, 0}, {10, 10}}

	require.InDelta(t, 5, geo.LengthUpTo(ls, geo.LinearLocation{SegmentIndex: 0, Fraction: 0.5}), 1e-9)
	require.InDelta(t, 12.5, geo.LengthUpTo(ls, geo.LinearLocation{SegmentIndex: 1, Fraction: 0.25}), 1e-9)
}
