package dijkstra

import (
	"github.com/katalvlaran/paretosearch/graph"
)

// Closure returns a new complete graph over the positive-yield nodes of g
// plus the nodes named in keep. Each pair that is connected in g gets one
// edge weighted with its shortest distance. The input graph is not modified.
//
// Errors: ErrNilGraph, graph.ErrNodeNotFound for an unknown keep name.
func Closure(g *graph.Graph, keep ...string) (*graph.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	pinned := make(map[graph.NodeID]bool, len(keep))
	for _, name := range keep {
		id, err := g.ID(name)
		if err != nil {
			return nil, err
		}
		pinned[id] = true
	}

	var members []graph.NodeID
	for _, id := range g.Nodes() {
		if g.FlowOf(id) > 0 || pinned[id] {
			members = append(members, id)
		}
	}

	defs := make([]graph.NodeDef, 0, len(members))
	for i, u := range members {
		dist, err := Distances(g, u)
		if err != nil {
			return nil, err
		}
		d := graph.NodeDef{Name: g.Name(u), Flow: g.FlowOf(u)}
		for _, v := range members[i+1:] {
			if w, ok := dist[v]; ok {
				d.Edges = append(d.Edges, graph.EdgeDef{To: g.Name(v), Weight: w})
			}
		}
		defs = append(defs, d)
	}

	return graph.Build(defs)
}
