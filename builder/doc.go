// Package builder generates random location networks for tests, benchmarks
// and the CLI "gen" command.
//
// Networks are returned as []graph.NodeDef so they flow through exactly the
// same graph.Build path as parsed input. Every generated network is
// connected: a random spanning tree is laid down first, then extra edges are
// added independently with a fixed probability.
//
// Determinism: the builder never touches a global RNG. Callers must supply
// one with WithSeed or WithRand; the same seed and options always produce the
// same definitions.
//
// Naming: node i is named with two capital letters in base 26 ("AA", "AB",
// ..., "ZZ"), so node 0 is always "AA" with zero yield, matching the default
// start location of the valve solver.
package builder
