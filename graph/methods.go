package graph

import (
	"fmt"
	"sort"
)

// Len returns the number of live nodes.
func (g *Graph) Len() int { return g.live }

// Cap returns the arena size: one past the largest NodeID ever issued.
// Per-node lookup tables built on top of a Graph should be sized by Cap.
func (g *Graph) Cap() int { return len(g.names) }

// Has reports whether id is a live node.
func (g *Graph) Has(id NodeID) bool {
	return id >= 0 && int(id) < len(g.alive) && g.alive[id]
}

// ID resolves a name to its NodeID.
// Returns ErrNodeNotFound for unknown or collapsed names.
func (g *Graph) ID(name string) (NodeID, error) {
	id, ok := g.index[name]
	if !ok || !g.alive[id] {
		return None, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	return id, nil
}

// Name returns the name stored for id, live or retired.
// Panics if id was never issued by this Graph.
func (g *Graph) Name(id NodeID) string { return g.names[id] }

// FlowOf returns the yield of id. Retired nodes report their last yield.
func (g *Graph) FlowOf(id NodeID) int { return g.flows[id] }

// Flow returns the yield of the named node.
func (g *Graph) Flow(name string) (int, error) {
	id, err := g.ID(name)
	if err != nil {
		return 0, err
	}

	return g.flows[id], nil
}

// Degree returns the number of neighbours of id (0 for retired nodes).
func (g *Graph) Degree(id NodeID) int { return len(g.adj[id]) }

// Adjacent returns the arcs leaving id sorted by destination NodeID.
// Complexity: O(d log d).
func (g *Graph) Adjacent(id NodeID) []Arc {
	m := g.adj[id]
	out := make([]Arc, 0, len(m))
	for to, w := range m {
		out = append(out, Arc{To: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out
}

// Weight returns the weight of edge a–b and whether the edge exists.
func (g *Graph) Weight(a, b NodeID) (int, bool) {
	if !g.Has(a) {
		return 0, false
	}
	w, ok := g.adj[a][b]

	return w, ok
}

// Neighbors returns the neighbour names of the named node mapped to their
// edge weights.
func (g *Graph) Neighbors(name string) (map[string]int, error) {
	id, err := g.ID(name)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(g.adj[id]))
	for to, w := range g.adj[id] {
		out[g.names[to]] = w
	}

	return out, nil
}

// Nodes returns the live NodeIDs sorted by name.
// Complexity: O(V log V).
func (g *Graph) Nodes() []NodeID {
	out := make([]NodeID, 0, g.live)
	for id, ok := range g.alive {
		if ok {
			out = append(out, NodeID(id))
		}
	}
	sort.Slice(out, func(i, j int) bool { return g.names[out[i]] < g.names[out[j]] })

	return out
}

// Edges returns every live edge once (From < To), sorted by (From, To).
func (g *Graph) Edges() []Edge {
	var out []Edge
	for id, m := range g.adj {
		for to, w := range m {
			if NodeID(id) < to {
				out = append(out, Edge{From: NodeID(id), To: to, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}
