// Package frontier implements a round-based, Pareto-pruned search over
// time-stepped simulation states.
//
// What:
//   - A Problem describes a state space: how a state branches (Choices), which
//     bucket it belongs to (Key), how far along it is (Elapsed), what it has
//     earned (Objective) and how two same-bucket states relate (Compare).
//   - Search drives the frontier from one initial state to a fixed horizon and
//     returns the best objective among the states that reached it.
//   - Prune removes dominated states from one bucket.
//
// How (one round):
//  1. Expand every frontier state into its successors (parallel, chunked).
//  2. Move successors that reached the horizon into the finished tally; only
//     the running maximum is kept since result order is irrelevant.
//  3. Regroup the rest by Key.
//  4. Drop states whose Bound cannot reach the best known Floor, when the
//     Problem is also a Bounder and bounding is on.
//  5. Prune each bucket independently (parallel across buckets, sequential
//     inside one).
//  6. Stop when the frontier is empty.
//
// Dominance:
//
//	A dominates B when A's activation set is a superset of B's and A's
//	objective is at least B's. States with incomparable sets are never pruned
//	against each other; Compare encodes this once for every instance.
//
// Bounds:
//
//	A Bounder supplies Floor (an objective the state is certain to reach) and
//	Bound (one it can never exceed). Both must hold for every completion of
//	the state, otherwise the cut may discard the optimum. WithBounding(false)
//	switches the cut off without touching the Problem.
//
// Termination: every successor must have strictly larger Elapsed than its
// parent. Search panics with ErrNoProgress otherwise, because such a Problem
// would loop forever.
//
// Errors:
//   - ErrBadHorizon  - horizon not set or not positive.
//   - ErrNoResult    - the frontier drained without reaching the horizon.
//   - ErrCanceled    - ctx was done at the start of a round.
//   - ErrPastHorizon - panic value for Choices called at or past the horizon.
//
// Observability: WithLogger attaches an slog.Logger (Debug per round, Info on
// completion); WithMetrics attaches Prometheus counters; WithOnRound exposes
// RoundStats to callers and tests.
package frontier
