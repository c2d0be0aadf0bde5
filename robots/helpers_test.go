package robots_test

import (
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paretosearch/robots"
)

func exampleBlueprints(t testing.TB) []robots.Blueprint {
	t.Helper()
	f, err := os.Open("testdata/example.txt")
	require.NoError(t, err)
	defer f.Close()
	bps, err := robots.Parse(f)
	require.NoError(t, err)
	require.Len(t, bps, 2)

	return bps
}

// randomBlueprint draws small prices so that every robot kind is reachable
// within a dozen ticks.
func randomBlueprint(r *rand.Rand, id int) robots.Blueprint {
	return robots.Blueprint{
		ID: id,
		Costs: [robots.Kinds]robots.Cost{
			robots.Ore:      {1 + r.Intn(4), 0, 0},
			robots.Clay:     {1 + r.Intn(4), 0, 0},
			robots.Obsidian: {1 + r.Intn(4), 1 + r.Intn(6), 0},
			robots.Geode:    {1 + r.Intn(4), 0, 1 + r.Intn(6)},
		},
	}
}
