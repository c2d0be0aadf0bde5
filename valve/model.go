package valve

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/paretosearch/bitset"
	"github.com/katalvlaran/paretosearch/dijkstra"
	"github.com/katalvlaran/paretosearch/graph"
)

// Model is the read-only view of a graph shared by every search state.
// Lookup tables are flattened by NodeID so that transitions never touch
// maps.
type Model struct {
	g     *graph.Graph
	keys  graph.Keys
	start graph.NodeID
	flow  []int         // NodeID → flow
	bit   []int         // NodeID → key, -1 if none
	arcs  [][]graph.Arc // NodeID → outgoing arcs

	byFlow []int // keys ordered by flow, largest first
	flowOf []int // key → flow
}

// NewModel indexes g for searching from start. g must not be modified
// afterwards.
//
// Errors: ErrStartNotFound, graph.ErrTooManyKeys.
func NewModel(g *graph.Graph, start string) (*Model, error) {
	sid, err := g.ID(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStartNotFound, err)
	}
	keys, err := g.AssignKeys()
	if err != nil {
		return nil, err
	}

	m := &Model{
		g:     g,
		keys:  keys,
		start: sid,
		flow:  make([]int, g.Cap()),
		bit:   make([]int, g.Cap()),
		arcs:  make([][]graph.Arc, g.Cap()),
	}
	for i := range m.bit {
		m.bit[i] = -1
	}
	for _, id := range g.Nodes() {
		m.flow[id] = g.FlowOf(id)
		if k, ok := keys.Bit(id); ok {
			m.bit[id] = k
		}
		m.arcs[id] = g.Adjacent(id)
	}
	m.flowOf = make([]int, keys.Len())
	m.byFlow = make([]int, keys.Len())
	for k := range m.flowOf {
		m.flowOf[k] = g.FlowOf(keys.Node(k))
		m.byFlow[k] = k
	}
	sort.SliceStable(m.byFlow, func(i, j int) bool {
		return m.flowOf[m.byFlow[i]] > m.flowOf[m.byFlow[j]]
	})

	return m, nil
}

// Prepare builds the graph from defs, applies the collapse and closure steps
// selected by cfg and indexes the result. The start location is always kept.
func Prepare(defs []graph.NodeDef, cfg Config) (*Model, error) {
	g, err := graph.Build(defs)
	if err != nil {
		return nil, err
	}
	if _, err := g.ID(cfg.Start); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStartNotFound, err)
	}
	if cfg.Collapse {
		if err := g.Collapse(cfg.Start); err != nil {
			return nil, err
		}
	}
	if cfg.Closure {
		if g, err = dijkstra.Closure(g, cfg.Start); err != nil {
			return nil, err
		}
	}

	return NewModel(g, cfg.Start)
}

// bound is the most a state can still release: the closed valves opened in
// flow order, each agent needing at least one tick to open and one more to
// move between valves.
func bound[A Activation[A]](m *Model, open A, rate, released, rem, agents int) int {
	b := released + rate*rem
	i := 0
	for _, k := range m.byFlow {
		if open.Contains(k) {
			continue
		}
		left := rem - 1 - 2*(i/agents)
		if left <= 0 {
			break
		}
		b += m.flowOf[k] * left
		i++
	}

	return b
}

// Graph returns the underlying graph.
func (m *Model) Graph() *graph.Graph { return m.g }

// Keys returns the valve key assignment.
func (m *Model) Keys() graph.Keys { return m.keys }

// Start returns the start location.
func (m *Model) Start() graph.NodeID { return m.start }

// Valves returns the number of positive-flow valves.
func (m *Model) Valves() int { return m.keys.Len() }

// EmptyNames returns an empty NameSet over this model's keys.
func (m *Model) EmptyNames() bitset.NameSet { return bitset.NewNameSet(m.keys.Names()) }

// OpenNames renders an activation set as valve names in key order.
func OpenNames[A Activation[A]](m *Model, open A) []string {
	var out []string
	for i, name := range m.keys.Names() {
		if open.Contains(i) {
			out = append(out, name)
		}
	}

	return out
}
