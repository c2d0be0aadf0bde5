package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paretosearch/bfs"
	"github.com/katalvlaran/paretosearch/builder"
	"github.com/katalvlaran/paretosearch/graph"
)

func TestName(t *testing.T) {
	assert.Equal(t, "AA", builder.Name(0))
	assert.Equal(t, "AB", builder.Name(1))
	assert.Equal(t, "BA", builder.Name(26))
	assert.Equal(t, "ZZ", builder.Name(builder.MaxVertices-1))
	assert.Panics(t, func() { builder.Name(-1) })
	assert.Panics(t, func() { builder.Name(builder.MaxVertices) })
}

func TestNetwork_Validation(t *testing.T) {
	_, err := builder.Network(0, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Network(builder.MaxVertices+1, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooManyVertices)

	_, err = builder.Network(5, builder.WithSeed(1), builder.WithEdgeProbability(1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.Network(5, builder.WithSeed(1), builder.WithZeroFlowRatio(-0.1))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.Network(5)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithMaxFlow(0) })
	assert.Panics(t, func() { builder.WithMaxWeight(0) })
}

func TestNetwork_Deterministic(t *testing.T) {
	a, err := builder.Network(30, builder.WithSeed(7))
	require.NoError(t, err)
	b, err := builder.Network(30, builder.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNetwork_ConnectedAndWellFormed(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		defs, err := builder.Network(25,
			builder.WithSeed(seed),
			builder.WithMaxFlow(9),
			builder.WithMaxWeight(4),
		)
		require.NoError(t, err)
		require.Len(t, defs, 25)
		assert.Equal(t, 0, defs[0].Flow, "start node has zero yield")
		for _, d := range defs {
			assert.GreaterOrEqual(t, d.Flow, 0)
			assert.LessOrEqual(t, d.Flow, 9)
			for _, e := range d.Edges {
				assert.GreaterOrEqual(t, e.Weight, 1)
				assert.LessOrEqual(t, e.Weight, 4)
			}
		}

		g, err := graph.Build(defs)
		require.NoError(t, err)
		start, err := g.ID("AA")
		require.NoError(t, err)
		lost, err := bfs.Unreachable(g, start)
		require.NoError(t, err)
		assert.Empty(t, lost, "seed %d", seed)
	}
}

func TestNetwork_Tree(t *testing.T) {
	defs, err := builder.Network(40, builder.WithSeed(3), builder.WithTree())
	require.NoError(t, err)
	g, err := graph.Build(defs)
	require.NoError(t, err)
	assert.Len(t, g.Edges(), 39)
}

func TestNetwork_ZeroRatioExtremes(t *testing.T) {
	defs, err := builder.Network(10, builder.WithSeed(1), builder.WithZeroFlowRatio(1))
	require.NoError(t, err)
	for _, d := range defs {
		assert.Zero(t, d.Flow)
	}

	defs, err = builder.Network(10, builder.WithSeed(1), builder.WithZeroFlowRatio(0))
	require.NoError(t, err)
	for _, d := range defs[1:] {
		assert.Positive(t, d.Flow)
	}
}

func BenchmarkNetwork(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = builder.Network(60, builder.WithSeed(int64(i)))
	}
}
