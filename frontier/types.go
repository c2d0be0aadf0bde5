package frontier

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// Sentinel errors.
var (
	// ErrPastHorizon is the panic value for Choices called with elapsed >= horizon.
	ErrPastHorizon = errors.New("frontier: choices called at or past horizon")

	// ErrNoProgress is the panic value for a successor whose elapsed time did
	// not grow.
	ErrNoProgress = errors.New("frontier: successor did not advance time")

	// ErrBadHorizon indicates a missing or non-positive horizon.
	ErrBadHorizon = errors.New("frontier: horizon must be positive")

	// ErrNoResult indicates that no state reached the horizon.
	ErrNoResult = errors.New("frontier: no finished state")

	// ErrCanceled wraps ctx.Err() when a search is cut short.
	ErrCanceled = errors.New("frontier: search canceled")

	// ErrUnknownPruneMode indicates an unparsable pruning mode name.
	ErrUnknownPruneMode = errors.New("frontier: unknown prune mode")
)

// Ordering is the result of comparing two same-bucket states.
type Ordering int8

const (
	// Incomparable means neither state dominates the other.
	Incomparable Ordering = iota
	// Less means the left state is dominated by the right one.
	Less
	// Equal means both states carry the same set and objective.
	Equal
	// Greater means the left state dominates the right one.
	Greater
)

// Reverse swaps Less and Greater.
func (o Ordering) Reverse() Ordering {
	switch o {
	case Less:
		return Greater
	case Greater:
		return Less
	default:
		return o
	}
}

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "incomparable"
	}
}

// PruneMode selects how aggressively buckets are pruned.
type PruneMode int

const (
	// PruneDominance removes every dominated state (default).
	PruneDominance PruneMode = iota
	// PruneDuplicates removes only exact duplicates.
	PruneDuplicates
	// PruneNone keeps every state. Exponential; for verification only.
	PruneNone
)

func (m PruneMode) String() string {
	switch m {
	case PruneNone:
		return "none"
	case PruneDuplicates:
		return "duplicates"
	default:
		return "dominance"
	}
}

// ParsePruneMode resolves "none", "duplicates" or "dominance".
func ParsePruneMode(s string) (PruneMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "off":
		return PruneNone, nil
	case "duplicates", "dup":
		return PruneDuplicates, nil
	case "dominance", "":
		return PruneDominance, nil
	}

	return PruneDominance, fmt.Errorf("%w: %q", ErrUnknownPruneMode, s)
}

// Problem describes a state space for Search.
//
// S is the state value type; K is the bucket key. Implementations must be
// safe for concurrent use: Choices, Key, Elapsed, Objective and Compare are
// called from several goroutines at once, each on its own state values.
type Problem[S any, K comparable] interface {
	// Choices returns every legal successor of s. Every successor must have
	// Elapsed > Elapsed(s) and <= horizon. Panics with ErrPastHorizon if
	// Elapsed(s) >= horizon.
	Choices(s S, horizon int) []S
	// Key returns the bucket of s. Only same-key states are compared.
	Key(s S) K
	Elapsed(s S) int
	Objective(s S) int
	// Compare orders two same-key states by dominance.
	Compare(a, b S) Ordering
}

// Bounder is an optional extension of Problem. When a Problem implements it
// and bounding is on, Search drops every running state whose Bound is below
// the best Floor seen so far. Both must be exact promises, or the answer can
// be lost.
type Bounder[S any] interface {
	// Floor is an objective that some continuation of s is sure to reach.
	Floor(s S, horizon int) int
	// Bound is an objective that no continuation of s can exceed.
	Bound(s S, horizon int) int
}

// RoundStats summarizes one completed round.
type RoundStats struct {
	Round    int // 1-based
	Expanded int // successors generated this round
	Finished int // successors that reached the horizon this round
	Pruned   int // states removed by pruning this round
	Cut      int // states removed by the Bounder this round
	Buckets  int // distinct keys after regrouping
	Frontier int // states carried into the next round
	Best     int // best finished objective so far, 0 if none
}

// Result is the outcome of Search.
type Result[S any] struct {
	Best      int // maximum objective among finished states
	BestState S   // a finished state achieving Best
	Rounds    int
	Expanded  int
	Pruned    int
	Cut       int
	Finished  int
}

// Options configures Search.
type Options struct {
	// Horizon is the elapsed time at which a state is finished. Required.
	Horizon int
	// Workers bounds parallel expansion and pruning. Default GOMAXPROCS.
	Workers int
	// Pruning selects the bucket pruning mode. Default PruneDominance.
	Pruning PruneMode
	// Bounding enables Bounder cuts when the Problem supports them. Default on.
	Bounding bool
	// Logger receives per-round Debug records and a final Info record.
	Logger *slog.Logger
	// Metrics, when non-nil, is updated after each round under Label.
	Metrics *Metrics
	Label   string
	// OnRound, when non-nil, is called synchronously after each round.
	OnRound func(RoundStats)
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with every default applied and no horizon.
func DefaultOptions() Options {
	return Options{
		Workers:  runtime.GOMAXPROCS(0),
		Pruning:  PruneDominance,
		Bounding: true,
		Logger:   slog.New(slog.DiscardHandler),
		Label:    "default",
	}
}

// WithHorizon sets the horizon. Search rejects h <= 0 with ErrBadHorizon.
func WithHorizon(h int) Option {
	return func(o *Options) { o.Horizon = h }
}

// WithWorkers bounds parallelism. 0 means GOMAXPROCS. Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("frontier: WithWorkers(%d)", n))
	}
	return func(o *Options) {
		if n == 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.Workers = n
	}
}

// WithPruning selects the pruning mode.
func WithPruning(m PruneMode) Option {
	return func(o *Options) { o.Pruning = m }
}

// WithBounding turns Bounder cuts on or off.
func WithBounding(on bool) Option {
	return func(o *Options) { o.Bounding = on }
}

// WithLogger attaches a logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("frontier: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithMetrics attaches metrics, recorded under the given problem label.
func WithMetrics(m *Metrics, label string) Option {
	return func(o *Options) {
		o.Metrics = m
		if label != "" {
			o.Label = label
		}
	}
}

// WithOnRound installs a per-round callback.
func WithOnRound(fn func(RoundStats)) Option {
	return func(o *Options) { o.OnRound = fn }
}
