package graph

import "fmt"

// Collapse removes every zero-yield node not listed in keep that has at most
// two neighbours. A pass-through node (two neighbours) is spliced out, its
// neighbours rewired directly with the summed weight; when they are already
// adjacent the shorter edge wins. A dead end (one neighbour or none) is
// dropped.
//
// Removal proceeds in ascending NodeID order; see CollapseWith for an
// explicit order. Returns ErrNodeNotFound if a keep name is unknown.
//
// Complexity: O(V²) worst case (candidate rescan after each removal).
func (g *Graph) Collapse(keep ...string) error {
	return g.CollapseWith(nil, keep...)
}

// CollapseWith is Collapse with a caller-chosen removal order: pick receives
// the current candidates (ascending NodeID, never empty) and returns the one
// to remove next. A nil pick takes the first candidate.
//
// Every order yields the same graph: the same surviving nodes and the same
// edge weights. Removal never raises a degree, so a candidate stays a
// candidate until it is removed.
func (g *Graph) CollapseWith(pick func(candidates []NodeID) NodeID, keep ...string) error {
	pinned := make(map[NodeID]bool, len(keep))
	for _, name := range keep {
		id, err := g.ID(name)
		if err != nil {
			return err
		}
		pinned[id] = true
	}

	for {
		cands := g.candidates(pinned)
		if len(cands) == 0 {
			return nil
		}
		id := cands[0]
		if pick != nil {
			id = pick(cands)
			if !g.removable(id, pinned) {
				return fmt.Errorf("%w: %d", ErrNotRemovable, id)
			}
		}
		g.remove(id)
	}
}

func (g *Graph) removable(id NodeID, pinned map[NodeID]bool) bool {
	return g.Has(id) && !pinned[id] && g.flows[id] == 0 && len(g.adj[id]) <= 2
}

func (g *Graph) candidates(pinned map[NodeID]bool) []NodeID {
	var out []NodeID
	for id := range g.alive {
		if g.removable(NodeID(id), pinned) {
			out = append(out, NodeID(id))
		}
	}

	return out
}

// remove splices id out of the graph. id must be removable.
func (g *Graph) remove(id NodeID) {
	ends := make([]Arc, 0, 2)
	for to, w := range g.adj[id] {
		ends = append(ends, Arc{To: to, Weight: w})
		delete(g.adj[to], id)
	}
	if len(ends) == 2 {
		a, b := ends[0], ends[1]
		w := a.Weight + b.Weight
		if cur, ok := g.adj[a.To][b.To]; !ok || w < cur {
			g.adj[a.To][b.To] = w
			g.adj[b.To][a.To] = w
		}
	}

	g.adj[id] = nil
	g.alive[id] = false
	g.live--
}
