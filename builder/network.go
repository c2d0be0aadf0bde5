package builder

import (
	"fmt"

	"github.com/katalvlaran/paretosearch/graph"
)

// MaxVertices is the size of the two-letter name space.
const MaxVertices = 26 * 26

// Name returns the two-letter name of node i ("AA" for 0, "AB" for 1, ...).
// Panics if i is outside [0, MaxVertices).
func Name(i int) string {
	if i < 0 || i >= MaxVertices {
		panic(fmt.Sprintf("builder: Name(%d) out of range", i))
	}
	return string([]byte{byte('A' + i/26), byte('A' + i%26)})
}

// Network generates a connected random network of n nodes.
//
// Implementation:
//   - Stage 1: yields. Node 0 gets 0; every other node gets 0 with
//     probability ZeroFlowRatio, otherwise a value in [1, MaxFlow].
//   - Stage 2: spanning tree. Node i > 0 is attached to a uniformly chosen
//     node j < i.
//   - Stage 3: unless WithTree, every other pair gets an edge with
//     probability EdgeProbability.
//
// Each edge is listed once, on its lower-indexed endpoint; graph.Build
// mirrors it.
//
// Errors:
//   - ErrTooFewVertices if n < 1, ErrTooManyVertices if n > MaxVertices.
//   - ErrInvalidProbability for a probability or ratio outside [0,1].
//   - ErrNeedRandSource if no RNG was configured.
//
// Complexity:
//   - Time O(n²) without WithTree, O(n) with it. Space O(n + E).
func Network(n int, opts ...Option) ([]graph.NodeDef, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	switch {
	case n < 1:
		return nil, fmt.Errorf("%w: n=%d", ErrTooFewVertices, n)
	case n > MaxVertices:
		return nil, fmt.Errorf("%w: n=%d > %d", ErrTooManyVertices, n, MaxVertices)
	case cfg.edgeProb < 0 || cfg.edgeProb > 1:
		return nil, fmt.Errorf("%w: edge probability %v", ErrInvalidProbability, cfg.edgeProb)
	case cfg.zeroRatio < 0 || cfg.zeroRatio > 1:
		return nil, fmt.Errorf("%w: zero-flow ratio %v", ErrInvalidProbability, cfg.zeroRatio)
	case cfg.rng == nil:
		return nil, ErrNeedRandSource
	}
	r := cfg.rng

	defs := make([]graph.NodeDef, n)
	for i := range defs {
		defs[i].Name = Name(i)
		if i > 0 && r.Float64() >= cfg.zeroRatio {
			defs[i].Flow = 1 + r.Intn(cfg.maxFlow)
		}
	}

	weight := func() int {
		if cfg.maxWeight == 1 {
			return 1
		}
		return 1 + r.Intn(cfg.maxWeight)
	}

	linked := make(map[[2]int]bool, n)
	link := func(a, b int) {
		if a > b {
			a, b = b, a
		}
		linked[[2]int{a, b}] = true
		defs[a].Edges = append(defs[a].Edges, graph.EdgeDef{To: defs[b].Name, Weight: weight()})
	}

	for i := 1; i < n; i++ {
		link(r.Intn(i), i)
	}
	if cfg.tree {
		return defs, nil
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if linked[[2]int{i, j}] {
				continue
			}
			if r.Float64() < cfg.edgeProb {
				link(i, j)
			}
		}
	}

	return defs, nil
}
