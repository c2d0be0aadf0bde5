// Package dijkstra computes weighted shortest distances over a graph.Graph
// and builds the metric closure used by the direct-jump search variant.
//
// Distances runs the lazy-decrease-key variant of Dijkstra's algorithm with
// container/heap: stale heap entries are skipped when popped instead of
// being updated in place.
//
// Closure keeps only the positive-yield nodes (plus any explicitly kept
// ones, typically the start) and connects every pair with an edge whose
// weight is their shortest distance. A single agent that walks the closure
// reaches the same optimum as on the full graph, because every detour
// through a zero-yield node is already priced into the closure weights.
//
// Complexity:
//
//   - Distances: O((V + E) log V) time, O(V + E) space.
//   - Closure:   O(K·(V + E) log V) for K kept nodes.
//
// Errors (sentinel):
//
//	ErrNilGraph        – nil graph.
//	ErrSourceNotFound  – source absent or collapsed.
//	ErrNegativeWeight  – negative edge weight detected.
//	ErrBadMaxDistance  – negative MaxDistance (panics from WithMaxDistance).
package dijkstra
