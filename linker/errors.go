// SPDX-License-Identifier: MIT
package linker

import "errors"

// Sentinel errors for the linker package. Per the teacher convention
// (builder/errors.go), these are never wrapped with formatted text at the
// definition site; call sites attach context with fmt.Errorf("%w", ...).
var (
	// ErrDestructiveTemporary is the spec.md §7 category-3 programmer
	// error: a destructive split or permanent link was requested against
	// a temporary vertex or edge. The linker aborts loudly rather than
	// silently mutating caller-owned scratch state as if it were
	// permanent graph state.
	ErrDestructiveTemporary = errors.New("linker: destructive operation requested on a temporary entity")

	// ErrNonDestructivePermanentLink is the mirror-image category-3
	// error: a non-destructive call site attempted to create one of the
	// permanent link-edge kinds (StreetTransitLink, StreetBikeRentalLink,
	// StreetBikeParkLink), which must only ever be created destructively.
	ErrNonDestructivePermanentLink = errors.New("linker: permanent link kind requested on a non-destructive path")

	// ErrTrivialPath is category 4: Options.CanSplitEdge signals that an
	// origin and a destination would both split the same edge, making the
	// resulting path trivial. It is returned to the caller unwrapped; the
	// linker itself does not catch it.
	ErrTrivialPath = errors.New("linker: trivial path, origin and destination share an edge")

	// ErrUnhandledVertexKind indicates a VertexKind reached the link-edge
	// factory that it does not know how to dispatch on. This should be
	// unreachable: it exists to make the VertexKind switch in linkfactory.go
	// exhaustiveness-checkable at review time rather than silently
	// falling through.
	ErrUnhandledVertexKind = errors.New("linker: unhandled vertex kind in link-edge factory")
)
