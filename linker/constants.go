package linker

// Configuration constants from spec.md §6. Tunability is an explicit
// non-goal; these are compile-time constants, not fields on a config
// struct.
const (
	// MaxSearchRadiusMeters bounds every candidate search: a survivor
	// farther than this from the query vertex is never linked.
	MaxSearchRadiusMeters = 1000.0

	// WarningDistanceMeters is the threshold beyond which a successfully
	// linked transit stop still produces a StopLinkedTooFar annotation.
	WarningDistanceMeters = 20.0

	// DuplicateWayEpsilonMeters is the epsilon-clustering tolerance used
	// to decide whether two near-equidistant candidates (e.g. the two
	// carriageways of a divided road) should both be linked.
	DuplicateWayEpsilonMeters = 0.001

	// EndpointSnapEpsilon is the segment-fraction tolerance within which a
	// linear location is treated as landing exactly on an edge endpoint,
	// avoiding the creation of a degenerate splitter vertex.
	EndpointSnapEpsilon = 1e-8
)
