// Package valve solves the valve-opening problem on a location graph with
// the frontier engine.
//
// Every location carries a flow rate. One agent (Solo) or two agents (Duo)
// start at a fixed location; each tick an agent may open the valve where it
// stands or travel along a tunnel. An open valve releases its flow once per
// tick, starting the tick after it was opened. The goal is the maximum total
// released at the horizon.
//
// Model pipeline:
//
//	Parse -> graph.Build -> Graph.Collapse(start) -> [dijkstra.Closure] -> NewModel
//
// Prepare runs the pipeline from a Config. Part1 and Part2 answer the single
// and dual agent questions for one input.
//
// Activation sets are generic: Solo and Duo work over any type satisfying
// Activation, in practice bitset.Set (fast) and bitset.NameSet (hashed
// names). Both give identical searches.
//
// Dual agents use per-tick transit: a move along a tunnel of weight w keeps
// the agent "in transit" for w ticks, during which it can do nothing else,
// while the other agent keeps choosing every tick. On a metric closure this
// reduces to the direct-jump model.
//
// Both problems are frontier.Bounders. The floor idles from now on; the bound
// opens the closed valves largest first, as if each agent needed only one
// tick to reach the next valve and one to open it.
package valve
