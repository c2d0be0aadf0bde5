package graph

import "fmt"

// Build constructs a Graph from parsed node definitions.
//
// Implementation:
//   - Stage 1: register every node name (first definition fixes the ID,
//     later definitions of the same name overwrite its yield).
//   - Stage 2: add every edge in both directions; weight 0 becomes 1 hop,
//     duplicate edges overwrite the earlier weight.
//
// Errors:
//   - ErrEmptyName, ErrNegativeFlow for bad node definitions.
//   - ErrBadWeight, ErrSelfLoop, ErrDanglingEdge for bad edges.
//
// Complexity:
//   - Time O(V + E), Space O(V + E).
func Build(defs []NodeDef) (*Graph, error) {
	g := &Graph{
		names: make([]string, 0, len(defs)),
		flows: make([]int, 0, len(defs)),
		adj:   make([]map[NodeID]int, 0, len(defs)),
		alive: make([]bool, 0, len(defs)),
		index: make(map[string]NodeID, len(defs)),
	}

	for _, d := range defs {
		if d.Name == "" {
			return nil, ErrEmptyName
		}
		if d.Flow < 0 {
			return nil, fmt.Errorf("%w: %s has flow %d", ErrNegativeFlow, d.Name, d.Flow)
		}
		if id, ok := g.index[d.Name]; ok {
			g.flows[id] = d.Flow
			continue
		}
		g.addNode(d.Name, d.Flow)
	}

	for _, d := range defs {
		from := g.index[d.Name]
		for _, e := range d.Edges {
			to, ok := g.index[e.To]
			if !ok {
				return nil, fmt.Errorf("%w: %s -> %s", ErrDanglingEdge, d.Name, e.To)
			}
			if to == from {
				return nil, fmt.Errorf("%w: %s", ErrSelfLoop, d.Name)
			}
			w := e.Weight
			if w < 0 {
				return nil, fmt.Errorf("%w: %s -> %s weight=%d", ErrBadWeight, d.Name, e.To, w)
			}
			if w == 0 {
				w = 1
			}
			g.adj[from][to] = w
			g.adj[to][from] = w
		}
	}

	return g, nil
}

func (g *Graph) addNode(name string, flow int) NodeID {
	id := NodeID(len(g.names))
	g.names = append(g.names, name)
	g.flows = append(g.flows, flow)
	g.adj = append(g.adj, make(map[NodeID]int))
	g.alive = append(g.alive, true)
	g.index[name] = id
	g.live++

	return id
}

// Clone returns a deep copy of g, including retired slots.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		names: append([]string(nil), g.names...),
		flows: append([]int(nil), g.flows...),
		adj:   make([]map[NodeID]int, len(g.adj)),
		alive: append([]bool(nil), g.alive...),
		index: make(map[string]NodeID, len(g.index)),
		live:  g.live,
	}
	for name, id := range g.index {
		c.index[name] = id
	}
	for id, m := range g.adj {
		if m == nil {
			continue
		}
		cm := make(map[NodeID]int, len(m))
		for to, w := range m {
			cm[to] = w
		}
		c.adj[id] = cm
	}

	return c
}

// Defs exports the live graph back into node definitions, sorted by name,
// each edge listed once on its lexicographically smaller endpoint.
func (g *Graph) Defs() []NodeDef {
	out := make([]NodeDef, 0, g.live)
	for _, id := range g.Nodes() {
		d := NodeDef{Name: g.names[id], Flow: g.flows[id]}
		for _, a := range g.Adjacent(id) {
			if g.names[a.To] > d.Name {
				d.Edges = append(d.Edges, EdgeDef{To: g.names[a.To], Weight: a.Weight})
			}
		}
		out = append(out, d)
	}

	return out
}
