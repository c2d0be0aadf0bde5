package graph

import (
	"fmt"

	"github.com/katalvlaran/paretosearch/bitset"
)

// Keys is a deterministic assignment of one bitset key per positive-yield
// node. Keys are handed out in ascending name order so that two runs over the
// same input always agree.
type Keys struct {
	bit  []int    // NodeID → key, -1 for zero-yield or retired nodes
	node []NodeID // key → NodeID
	name []string // key → name
}

// AssignKeys assigns keys to every live node with flow > 0.
// Returns ErrTooManyKeys if they do not fit in a bitset.Set.
func (g *Graph) AssignKeys() (Keys, error) {
	var nodes []NodeID
	for _, id := range g.Nodes() { // already in name order
		if g.flows[id] > 0 {
			nodes = append(nodes, id)
		}
	}
	if len(nodes) > bitset.Capacity {
		return Keys{}, fmt.Errorf("%w: %d > %d", ErrTooManyKeys, len(nodes), bitset.Capacity)
	}

	k := Keys{
		bit:  make([]int, g.Cap()),
		node: nodes,
		name: make([]string, len(nodes)),
	}
	for i := range k.bit {
		k.bit[i] = -1
	}
	for i, id := range nodes {
		k.bit[id] = i
		k.name[i] = g.names[id]
	}

	return k, nil
}

// Bit returns the key of id and whether it has one.
func (k Keys) Bit(id NodeID) (int, bool) {
	if id < 0 || int(id) >= len(k.bit) || k.bit[id] < 0 {
		return -1, false
	}

	return k.bit[id], true
}

// Node returns the NodeID holding key i.
func (k Keys) Node(i int) NodeID { return k.node[i] }

// Len returns the number of assigned keys.
func (k Keys) Len() int { return len(k.node) }

// Names returns the key→name table. The slice is shared; do not modify it.
func (k Keys) Names() []string { return k.name }

// All returns the set of every assigned key.
func (k Keys) All() bitset.Set { return bitset.Full(len(k.node)) }
