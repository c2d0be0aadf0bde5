package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/paretosearch/graph"
)

// Distances returns the shortest distance from src to every node within
// MaxDistance. Unreachable nodes are absent from the map.
//
// Preconditions (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. src must be live in g (ErrSourceNotFound).
//  3. No edge may have a negative weight (ErrNegativeWeight).
func Distances(g *graph.Graph, src graph.NodeID, opts ...Option) (map[graph.NodeID]int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Has(src) {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, src)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s-%s weight=%d",
				ErrNegativeWeight, g.Name(e.From), g.Name(e.To), e.Weight)
		}
	}

	dist := map[graph.NodeID]int{src: 0}
	done := make(map[graph.NodeID]bool, g.Len())
	pq := nodePQ{{id: src, dist: 0}}
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(nodeItem)
		if done[item.id] {
			continue
		}
		if item.dist > cfg.MaxDistance {
			break
		}
		done[item.id] = true

		for _, a := range g.Adjacent(item.id) {
			nd := item.dist + a.Weight
			if nd > cfg.MaxDistance {
				continue
			}
			if cur, ok := dist[a.To]; ok && nd >= cur {
				continue
			}
			dist[a.To] = nd
			heap.Push(&pq, nodeItem{id: a.To, dist: nd})
		}
	}

	// Entries pushed but never settled lie beyond MaxDistance.
	for id := range dist {
		if !done[id] {
			delete(dist, id)
		}
	}

	return dist, nil
}

// nodeItem is one (node, tentative distance) heap entry.
type nodeItem struct {
	id   graph.NodeID
	dist int
}

// nodePQ is a min-heap of nodeItem ordered by dist, then id.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
