package frontier_test

import (
	"sort"

	"github.com/katalvlaran/paretosearch/bitset"
	"github.com/katalvlaran/paretosearch/frontier"
)

// taps is a movement-free valve problem: each tick either open one closed
// tap (it yields from the next tick on) or wait.
type taps struct {
	flows []int
}

type tapState struct {
	T    int
	Open bitset.Set
	Rate int
	V    int
}

func (p taps) Choices(s tapState, horizon int) []tapState {
	if s.T >= horizon {
		panic(frontier.ErrPastHorizon)
	}
	out := []tapState{{T: s.T + 1, Open: s.Open, Rate: s.Rate, V: s.V + s.Rate}}
	for i, f := range p.flows {
		if s.Open.Contains(i) {
			continue
		}
		out = append(out, tapState{T: s.T + 1, Open: s.Open.Insert(i), Rate: s.Rate + f, V: s.V + s.Rate})
	}

	return out
}

func (taps) Key(s tapState) int       { return s.T }
func (taps) Elapsed(s tapState) int   { return s.T }
func (taps) Objective(s tapState) int { return s.V }
func (taps) Compare(a, b tapState) frontier.Ordering {
	return frontier.Compare(a.Open, a.V, b.Open, b.V)
}

// stuck never advances time.
type stuck struct{ taps }

func (stuck) Choices(s tapState, _ int) []tapState { return []tapState{s} }

// deadEnd has no successors at all.
type deadEnd struct{ taps }

func (deadEnd) Choices(tapState, int) []tapState { return nil }

// boundedTaps adds exact floor and bound estimates to taps.
type boundedTaps struct{ taps }

func (p boundedTaps) Floor(s tapState, horizon int) int {
	return s.V + s.Rate*(horizon-s.T)
}

// Bound opens the closed taps largest first, one per tick from now on.
func (p boundedTaps) Bound(s tapState, horizon int) int {
	var closed []int
	for i, f := range p.flows {
		if !s.Open.Contains(i) {
			closed = append(closed, f)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(closed)))
	b := p.Floor(s, horizon)
	for i, f := range closed {
		if left := horizon - s.T - 1 - i; left > 0 {
			b += f * left
		}
	}

	return b
}
