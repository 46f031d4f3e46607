// Package linker implements the street-network linker: attaching transit
// stops, bike-rental stations, bike-park locations, and ephemeral
// origin/destination points to the nearest traversable edge of a street
// graph (package graph), splitting that edge when the nearest point falls
// in its interior.
//
// The package exposes two mutation regimes over the same geometric
// algorithm: a destructive one that permanently edits a graph.Graph during
// graph build (LinkAllStationsToGraph), and a non-destructive one that
// edits only a caller-owned graph.TemporaryArena for the lifetime of a
// single routing request (NewOriginDestination). Mixing the two — asking
// for a destructive split on a temporary vertex, or vice versa — is a
// programmer error and is returned as an error rather than silently doing
// the wrong thing; see ErrDestructiveTemporary and
// ErrNonDestructivePermanentLink.
package linker
