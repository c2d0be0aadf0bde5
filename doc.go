// Package paretosearch is a round-based, Pareto-pruned search engine for
// time-stepped choice problems, with two worked instances.
//
// 🚀 What is in here?
//
//	frontier/   the generic engine: expand, regroup by key, prune dominated
//	            states, optionally cut by bounds, repeat to the horizon
//	valve/      open valves in a tunnel network, alone or with a partner
//	robots/     build robots from a blueprint to crack the most geodes
//	graph/      weighted valve networks: build, collapse, keys, DOT export
//	bitset/     64-bit activation sets and a name-set reference version
//	bfs/        hop counts and reachability over a graph
//	dijkstra/   shortest distances and the metric closure over valves
//	builder/    random connected valve networks for tests and benchmarks
//	cmd/pareto  the command-line driver
//
// ✨ Quick start
//
//	m, err := valve.Prepare(defs, valve.DefaultConfig())
//	best, err := valve.MaxReleased(ctx, m, 30)
//
// Any other problem plugs into frontier.Search by implementing
// frontier.Problem (and, optionally, frontier.Bounder).
package paretosearch
