package valve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/paretosearch/graph"
)

// Sentinel errors.
var (
	// ErrSyntax indicates a malformed input line.
	ErrSyntax = errors.New("valve: syntax error")

	// ErrStartNotFound indicates that the start location is not in the graph.
	ErrStartNotFound = errors.New("valve: start location not found")

	// ErrBadHorizon indicates a non-positive horizon in a Config.
	ErrBadHorizon = errors.New("valve: horizon must be positive")
)

// Config drives Prepare, Part1 and Part2.
type Config struct {
	Start      string `yaml:"start"`
	Horizon    int    `yaml:"horizon"`     // single agent
	DuoHorizon int    `yaml:"duo_horizon"` // two agents
	Collapse   bool   `yaml:"collapse"`    // drop zero-flow pass-through nodes
	Closure    bool   `yaml:"closure"`     // search on the metric closure
}

// DefaultConfig returns the standard setup: start at AA, 30 ticks alone,
// 26 ticks with a partner, collapsed graph, no closure.
func DefaultConfig() Config {
	return Config{
		Start:      "AA",
		Horizon:    30,
		DuoHorizon: 26,
		Collapse:   true,
	}
}

// Validate reports a non-positive horizon as ErrBadHorizon and an empty
// start as ErrStartNotFound.
func (c Config) Validate() error {
	var errs []error
	if c.Start == "" {
		errs = append(errs, fmt.Errorf("%w: start is empty", ErrStartNotFound))
	}
	if c.Horizon <= 0 {
		errs = append(errs, fmt.Errorf("%w: horizon=%d", ErrBadHorizon, c.Horizon))
	}
	if c.DuoHorizon <= 0 {
		errs = append(errs, fmt.Errorf("%w: duo_horizon=%d", ErrBadHorizon, c.DuoHorizon))
	}

	return errors.Join(errs...)
}

// Activation is the set of opened valves, indexed by key (see graph.Keys).
// Implementations are immutable: Insert returns a new set.
type Activation[A any] interface {
	Contains(i int) bool
	Insert(i int) A
	IsSubset(o A) bool
	Equal(o A) bool
	Len() int
}

// Solo is the single-agent search state.
type Solo[A Activation[A]] struct {
	At       graph.NodeID
	Time     int
	Open     A
	Rate     int // total flow of Open
	Released int
}

// Agent is one walker in a Duo. Left > 0 means the agent is still Left ticks
// away from At.
type Agent struct {
	At   graph.NodeID
	Left int
}

// Duo is the two-agent search state. A and B are kept in canonical order
// (see agentLess) so that swapped agents share a bucket.
type Duo[A Activation[A]] struct {
	Time     int
	A, B     Agent
	Open     A
	Rate     int
	Released int
}

type soloKey struct {
	time int
	at   graph.NodeID
}

type duoKey struct {
	time int
	a, b Agent
}
