// Package geo provides the local planar approximations the linker needs to
// rank and project street-network candidates: an equirectangular projector,
// a point/linestring distance oracle expressed in degrees of latitude, and
// the traversal-mode bitset shared by every component that filters edges.
//
// Everything here is deliberately local and approximate. A great-circle
// distance would be more "correct" globally, but it is slower to compute
// and, worse, not monotonic in the way the epsilon-clustering step in
// package linker needs: two points at the same equirectangular distance
// from a query vertex must compare equal regardless of which hemisphere
// they're in. See Projector for the scale derivation.
package geo
