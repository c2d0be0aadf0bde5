package bfs

import (
	"fmt"

	"github.com/katalvlaran/paretosearch/graph"
)

// Hops returns the hop count from src to every node reachable from it.
// Unreachable nodes are absent from the map.
//
// Errors: ErrGraphNil, ErrStartNotFound, ctx.Err() on
// cancellation, or the OnVisit error wrapped with the failing node name.
func Hops(g *graph.Graph, src graph.NodeID, opts ...Option) (map[graph.NodeID]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.Has(src) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, src)
	}

	depth := map[graph.NodeID]int{src: 0}
	queue := []graph.NodeID{src}
	for len(queue) > 0 {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		u := queue[0]
		queue = queue[1:]
		d := depth[u]
		if err := o.OnVisit(u, d); err != nil {
			return nil, fmt.Errorf("bfs: OnVisit error at %q: %w", g.Name(u), err)
		}
		for _, a := range g.Adjacent(u) {
			if _, seen := depth[a.To]; seen {
				continue
			}
			depth[a.To] = d + 1
			queue = append(queue, a.To)
		}
	}

	return depth, nil
}

// Unreachable returns the live nodes that cannot be reached from src,
// in name order. opts are passed on to Hops.
func Unreachable(g *graph.Graph, src graph.NodeID, opts ...Option) ([]graph.NodeID, error) {
	seen, err := Hops(g, src, opts...)
	if err != nil {
		return nil, err
	}
	var out []graph.NodeID
	for _, id := range g.Nodes() {
		if _, ok := seen[id]; !ok {
			out = append(out, id)
		}
	}

	return out, nil
}
