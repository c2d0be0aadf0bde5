// Package graph is the read-only location model shared by every search state.
//
// A Graph is an arena: every location gets a dense NodeID at Build time, names
// live once in a side table, and all internal references use indices. Edges
// are undirected and carry a positive integer weight (travel time).
//
// Lifecycle:
//
//  1. Build(defs)       – adjacency from the parsed node list (weight 1 by default).
//  2. Collapse(keep...) – remove zero-yield pass-through nodes (degree 2), merging
//     their two edges into one with the summed weight, and zero-yield dead ends.
//  3. AssignKeys()      – one bitset key per positive-yield node, in name order.
//
// After step 2 the Graph is never mutated again and may be shared freely
// across goroutines. Collapse itself is not safe for concurrent use.
//
// Collapse invariants:
//
//   - Every surviving node has nonzero yield, degree ≥ 3, or was explicitly kept.
//   - Shortest distances between surviving nodes equal the original ones.
//   - The result does not depend on removal order.
//
// Errors:
//
//	ErrEmptyName     – a node definition has no name.
//	ErrNegativeFlow  – a node definition has a negative yield.
//	ErrBadWeight     – an edge weight is negative.
//	ErrSelfLoop      – an edge connects a node to itself.
//	ErrDanglingEdge  – an edge references a name absent from the node table.
//	ErrNodeNotFound  – a query names a node that does not exist (or was collapsed).
//	ErrNotRemovable  – a CollapseWith picker chose a node that cannot be removed.
//	ErrTooManyKeys   – more positive-yield nodes than bitset.Capacity.
package graph
