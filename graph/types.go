package graph

import "errors"

// Sentinel errors for model construction and queries.
var (
	// ErrEmptyName indicates a node definition with an empty name.
	ErrEmptyName = errors.New("graph: node name is empty")

	// ErrNegativeFlow indicates a node definition with a negative yield.
	ErrNegativeFlow = errors.New("graph: negative flow")

	// ErrBadWeight indicates a negative edge weight.
	ErrBadWeight = errors.New("graph: bad edge weight")

	// ErrSelfLoop indicates an edge from a node to itself.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrDanglingEdge indicates an edge whose endpoint is not in the node table.
	ErrDanglingEdge = errors.New("graph: edge references unknown node")

	// ErrNodeNotFound indicates a query for an absent or collapsed node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrNotRemovable indicates that a collapse picker returned a node that is
	// not a removal candidate.
	ErrNotRemovable = errors.New("graph: node is not removable")

	// ErrTooManyKeys indicates more positive-yield nodes than a bitset can hold.
	ErrTooManyKeys = errors.New("graph: too many positive-flow nodes for key assignment")
)

// NodeID is a dense index into the arena. IDs are stable for the lifetime
// of a Graph: collapsing a node retires its ID without renumbering others.
type NodeID int

// None marks the absence of a node.
const None NodeID = -1

// EdgeDef is one parsed edge endpoint. Weight 0 means one hop.
type EdgeDef struct {
	To     string
	Weight int
}

// NodeDef is one parsed location: a name, a yield and its edges.
type NodeDef struct {
	Name  string
	Flow  int
	Edges []EdgeDef
}

// Arc is one outgoing adjacency entry.
type Arc struct {
	To     NodeID
	Weight int
}

// Edge is one undirected edge, reported with From < To.
type Edge struct {
	From, To NodeID
	Weight   int
}

// Graph is the arena location graph.
//
// names/flows/adj/alive are indexed by NodeID; index maps names to IDs.
// A collapsed node keeps its slot with alive[id] == false and adj[id] == nil.
type Graph struct {
	names []string
	flows []int
	adj   []map[NodeID]int
	alive []bool
	index map[string]NodeID
	live  int
}
