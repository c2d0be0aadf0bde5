package valve

import (
	"fmt"

	"github.com/katalvlaran/paretosearch/frontier"
)

// wait advances s by dt ticks at its current rate.
func (s Solo[A]) wait(dt int) Solo[A] {
	s.Time += dt
	s.Released += s.Rate * dt
	return s
}

// Choices returns the successors of s.
//
//   - Every valve open: one state idled to the horizon.
//   - Otherwise "open here" (1 tick) when the local valve is closed, and a
//     move along every tunnel that fits in the horizon.
//   - Nothing legal: one state idled to the horizon.
//
// Panics with frontier.ErrPastHorizon if s.Time >= horizon.
func (s Solo[A]) Choices(m *Model, horizon int) []Solo[A] {
	if s.Time >= horizon {
		panic(fmt.Errorf("%w: time %d, horizon %d", frontier.ErrPastHorizon, s.Time, horizon))
	}
	if s.Open.Len() == m.keys.Len() {
		return []Solo[A]{s.wait(horizon - s.Time)}
	}

	arcs := m.arcs[s.At]
	out := make([]Solo[A], 0, len(arcs)+1)
	if k := m.bit[s.At]; k >= 0 && !s.Open.Contains(k) {
		n := s.wait(1)
		n.Open = n.Open.Insert(k)
		n.Rate += m.flow[s.At]
		out = append(out, n)
	}
	for _, a := range arcs {
		if s.Time+a.Weight > horizon {
			continue
		}
		n := s.wait(a.Weight)
		n.At = a.To
		out = append(out, n)
	}
	if len(out) == 0 {
		out = append(out, s.wait(horizon-s.Time))
	}

	return out
}

type soloProblem[A Activation[A]] struct{ m *Model }

func (p soloProblem[A]) Choices(s Solo[A], horizon int) []Solo[A] { return s.Choices(p.m, horizon) }
func (soloProblem[A]) Key(s Solo[A]) soloKey                      { return soloKey{s.Time, s.At} }
func (soloProblem[A]) Elapsed(s Solo[A]) int                      { return s.Time }
func (soloProblem[A]) Objective(s Solo[A]) int                    { return s.Released }

func (soloProblem[A]) Compare(a, b Solo[A]) frontier.Ordering {
	if a.Time != b.Time || a.At != b.At {
		return frontier.Incomparable
	}

	return frontier.Compare(a.Open, a.Released, b.Open, b.Released)
}

func (soloProblem[A]) Floor(s Solo[A], horizon int) int {
	return s.Released + s.Rate*(horizon-s.Time)
}

func (p soloProblem[A]) Bound(s Solo[A], horizon int) int {
	return bound(p.m, s.Open, s.Rate, s.Released, horizon-s.Time, 1)
}
