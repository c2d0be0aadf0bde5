package valve

import (
	"fmt"

	"github.com/katalvlaran/paretosearch/frontier"
)

// step is one agent's action for one tick: where it ends up and which key
// it opens (-1 for none).
type step struct {
	agent Agent
	open  int
}

func agentLess(a, b Agent) bool {
	if a.At != b.At {
		return a.At < b.At
	}
	return a.Left < b.Left
}

// steps lists the legal one-tick actions of ag: continue if in transit,
// otherwise open the local valve, set off along a tunnel that arrives before
// the horizon, or idle.
func steps[A Activation[A]](m *Model, ag Agent, open A, time, horizon int) []step {
	if ag.Left > 0 {
		return []step{{agent: Agent{At: ag.At, Left: ag.Left - 1}, open: -1}}
	}

	arcs := m.arcs[ag.At]
	out := make([]step, 0, len(arcs)+2)
	if k := m.bit[ag.At]; k >= 0 && !open.Contains(k) {
		out = append(out, step{agent: ag, open: k})
	}
	for _, a := range arcs {
		if time+a.Weight >= horizon {
			continue
		}
		out = append(out, step{agent: Agent{At: a.To, Left: a.Weight - 1}, open: -1})
	}

	return append(out, step{agent: ag, open: -1})
}

// Choices returns the successors of s one tick later: the cross product of
// both agents' steps, minus the pairs where both open the same valve. Once
// every valve is open it returns one state idled to the horizon.
//
// Panics with frontier.ErrPastHorizon if s.Time >= horizon.
func (s Duo[A]) Choices(m *Model, horizon int) []Duo[A] {
	if s.Time >= horizon {
		panic(fmt.Errorf("%w: time %d, horizon %d", frontier.ErrPastHorizon, s.Time, horizon))
	}
	if s.Open.Len() == m.keys.Len() {
		dt := horizon - s.Time
		s.Time = horizon
		s.Released += s.Rate * dt
		return []Duo[A]{s}
	}

	as := steps(m, s.A, s.Open, s.Time, horizon)
	bs := steps(m, s.B, s.Open, s.Time, horizon)
	out := make([]Duo[A], 0, len(as)*len(bs))
	for _, a := range as {
		for _, b := range bs {
			if a.open >= 0 && a.open == b.open {
				continue
			}
			n := Duo[A]{
				Time:     s.Time + 1,
				A:        a.agent,
				B:        b.agent,
				Open:     s.Open,
				Rate:     s.Rate,
				Released: s.Released + s.Rate,
			}
			for _, st := range [2]step{a, b} {
				if st.open >= 0 {
					n.Open = n.Open.Insert(st.open)
					n.Rate += m.flow[st.agent.At]
				}
			}
			if agentLess(n.B, n.A) {
				n.A, n.B = n.B, n.A
			}
			out = append(out, n)
		}
	}

	return out
}

type duoProblem[A Activation[A]] struct{ m *Model }

func (p duoProblem[A]) Choices(s Duo[A], horizon int) []Duo[A] { return s.Choices(p.m, horizon) }
func (duoProblem[A]) Key(s Duo[A]) duoKey                      { return duoKey{s.Time, s.A, s.B} }
func (duoProblem[A]) Elapsed(s Duo[A]) int                     { return s.Time }
func (duoProblem[A]) Objective(s Duo[A]) int                   { return s.Released }

func (duoProblem[A]) Compare(a, b Duo[A]) frontier.Ordering {
	if a.Time != b.Time || a.A != b.A || a.B != b.B {
		return frontier.Incomparable
	}

	return frontier.Compare(a.Open, a.Released, b.Open, b.Released)
}

func (duoProblem[A]) Floor(s Duo[A], horizon int) int {
	return s.Released + s.Rate*(horizon-s.Time)
}

func (p duoProblem[A]) Bound(s Duo[A], horizon int) int {
	return bound(p.m, s.Open, s.Rate, s.Released, horizon-s.Time, 2)
}
