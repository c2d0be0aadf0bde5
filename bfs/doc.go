// Package bfs computes unweighted hop distances over a graph.Graph.
//
// Hops ignores edge weights and counts edges. On a freshly built graph
// (every edge weight 1) this is exactly the shortest travel time, which is
// the reference the collapse invariants are checked against. The CLI also
// uses it to report locations that cannot be reached from the start.
//
// Options:
//
//	WithContext(ctx)  – cancellation, checked once per dequeued node.
//	WithOnVisit(fn)   – callback per visited node; a non-nil error aborts.
//
// Complexity: O(V + E) time, O(V) space.
package bfs
