// Package robots solves the robot-factory problem with the frontier engine.
//
// A blueprint prices four robot kinds (ore, clay, obsidian, geode) in ore,
// clay and obsidian. The factory starts with one ore robot. Each tick it may
// start one robot it can afford; every robot then collects one unit of its
// resource, and the new robot joins at the end of the tick. The goal is the
// most geodes cracked by the horizon.
//
// Geodes are committed: a geode robot built at tick t is credited with
// horizon-t-1 geodes on the spot and plays no further part in the state.
//
// Search reductions, all sound:
//   - no more robots of a kind than the largest per-tick spend of its resource;
//   - stock is clamped to maxSpend×rem - robots×(rem-1), the most that the
//     remaining ticks can still spend;
//   - no builds in the last tick, since the robot would never collect;
//   - Plan.Bound relaxes the blueprint (free ore, a clay robot every tick)
//     and lets frontier cut states that cannot beat the best so far.
//
// Dominance: states are bucketed by time and ore, clay and obsidian robot
// counts. Inside a bucket they compare by componentwise stock (Stock.IsSubset
// is "≤ in every resource") and by geodes, through frontier.Compare.
//
// Errors:
//   - ErrBadBlueprint - Parse found a blueprint without exactly seven numbers.
//   - ErrNoBlueprints - TopProduct got nothing to multiply.
package robots
