package graph

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDOT renders the live graph in Graphviz "graph" syntax. Nodes are
// labelled with name and yield, edges with their weight; output order is
// deterministic (nodes by name, edges by endpoint names).
func (g *Graph) WriteDOT(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "graph G {")
	nodes := g.Nodes()
	for _, id := range nodes {
		fmt.Fprintf(bw, "\t%s [label=\"%s\\n%d\"];\n", g.names[id], g.names[id], g.flows[id])
	}
	for _, id := range nodes {
		for _, a := range g.Adjacent(id) {
			if g.names[a.To] <= g.names[id] {
				continue
			}
			fmt.Fprintf(bw, "\t%s -- %s [len=%d,label=%d];\n", g.names[id], g.names[a.To], a.Weight, a.Weight)
		}
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}
