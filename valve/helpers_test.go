package valve_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paretosearch/builder"
	"github.com/katalvlaran/paretosearch/graph"
	"github.com/katalvlaran/paretosearch/valve"
)

func exampleDefs(t testing.TB) []graph.NodeDef {
	t.Helper()
	f, err := os.Open("testdata/example.txt")
	require.NoError(t, err)
	defer f.Close()
	defs, err := valve.Parse(f)
	require.NoError(t, err)

	return defs
}

func mustModel(t testing.TB, defs []graph.NodeDef, cfg valve.Config) *valve.Model {
	t.Helper()
	m, err := valve.Prepare(defs, cfg)
	require.NoError(t, err)

	return m
}

func raw() valve.Config {
	cfg := valve.DefaultConfig()
	cfg.Collapse = false
	return cfg
}

// randomDefs returns a small connected network for seed.
func randomDefs(t testing.TB, seed int64, n int) []graph.NodeDef {
	t.Helper()
	defs, err := builder.Network(n,
		builder.WithSeed(seed),
		builder.WithEdgeProbability(0.2),
		builder.WithMaxWeight(1+int(seed%3)),
		builder.WithMaxFlow(25),
	)
	require.NoError(t, err)

	return defs
}

func node(name string, flow int, to ...string) graph.NodeDef {
	d := graph.NodeDef{Name: name, Flow: flow}
	for _, t := range to {
		d.Edges = append(d.Edges, graph.EdgeDef{To: t})
	}

	return d
}
