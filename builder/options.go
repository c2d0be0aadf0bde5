package builder

import (
	"fmt"
	"math/rand"
)

// Option customizes Network by mutating a config before generation.
// Option constructors validate and panic on meaningless inputs; Network
// itself only returns errors.
type Option func(*config)

type config struct {
	rng       *rand.Rand
	edgeProb  float64
	maxFlow   int
	maxWeight int
	zeroRatio float64
	tree      bool
}

func defaultConfig() config {
	return config{
		edgeProb:  0.15,
		maxFlow:   25,
		maxWeight: 1,
		zeroRatio: 0.5,
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a new deterministic RNG from seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithEdgeProbability sets the chance that any non-tree pair gets an edge.
// The value is validated by Network so that callers get ErrInvalidProbability.
func WithEdgeProbability(p float64) Option {
	return func(c *config) { c.edgeProb = p }
}

// WithZeroFlowRatio sets the chance that a non-start node has zero yield.
// Validated by Network.
func WithZeroFlowRatio(r float64) Option {
	return func(c *config) { c.zeroRatio = r }
}

// WithMaxFlow sets the upper bound for positive yields. Panics if max < 1.
func WithMaxFlow(max int) Option {
	if max < 1 {
		panic(fmt.Sprintf("builder: WithMaxFlow(%d)", max))
	}
	return func(c *config) { c.maxFlow = max }
}

// WithMaxWeight draws every edge weight uniformly from [1, max].
// Panics if max < 1. The default of 1 produces unit-hop networks.
func WithMaxWeight(max int) Option {
	if max < 1 {
		panic(fmt.Sprintf("builder: WithMaxWeight(%d)", max))
	}
	return func(c *config) { c.maxWeight = max }
}

// WithTree disables extra edges: the result is the spanning tree alone.
func WithTree() Option {
	return func(c *config) { c.tree = true }
}
