package valve

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/paretosearch/graph"
)

var lineRE = regexp.MustCompile(`^Valve (\w+) has flow rate=(\d+); tunnels? leads? to valves? (\w+(?:\s*,\s*\w+)*)$`)

// Parse reads one valve per line:
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
//
// Blank lines are skipped. Every tunnel becomes a one-hop edge. References to
// undefined valves are left for graph.Build to reject.
func Parse(r io.Reader) ([]graph.NodeDef, error) {
	var defs []graph.NodeDef
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		m := lineRE.FindStringSubmatch(text)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrSyntax, line, text)
		}
		flow, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: flow %q: %w", ErrSyntax, line, m[2], err)
		}
		d := graph.NodeDef{Name: m[1], Flow: flow}
		for _, to := range strings.Split(m[3], ",") {
			d.Edges = append(d.Edges, graph.EdgeDef{To: strings.TrimSpace(to), Weight: 1})
		}
		defs = append(defs, d)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("valve: read input: %w", err)
	}

	return defs, nil
}
