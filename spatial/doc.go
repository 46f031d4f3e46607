// Package spatial adapts github.com/tidwall/rtree into the envelope-query,
// write-locked index spec.md §4.3 describes: insert(geometry, edge) and
// query(envelope) -> unordered collection, where query results may include
// edges that have since been split out of the graph. Consumers always
// re-check graph.Graph.InGraph before acting on a query result; this
// package makes no attempt to remove stale entries (spec.md §9: "keep this
// as a design invariant; do not 'optimize' by removing entries").
package spatial
