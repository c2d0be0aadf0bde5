package robots

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/paretosearch/frontier"
)

// Plan is the read-only view of one blueprint shared by every state.
type Plan struct {
	bp       Blueprint
	maxSpend [Resources]int
}

// NewPlan indexes bp.
func NewPlan(bp Blueprint) *Plan {
	p := &Plan{bp: bp}
	for _, c := range bp.Costs {
		for i := range p.maxSpend {
			p.maxSpend[i] = max(p.maxSpend[i], c[i])
		}
	}

	return p
}

// Blueprint returns the indexed blueprint.
func (p *Plan) Blueprint() Blueprint { return p.bp }

// MaxSpend returns the most of resource k one tick can ever consume.
func (p *Plan) MaxSpend(k Kind) int { return p.maxSpend[k] }

// Start returns the initial state: one ore robot and nothing else.
func Start() State {
	return State{Robots: [Kinds]int{Ore: 1}}
}

// Choices returns the successors of s one tick later, builds first (geode,
// obsidian, clay, ore) and waiting last.
//
// Panics with frontier.ErrPastHorizon if s.Time >= horizon.
func (p *Plan) Choices(s State, horizon int) []State {
	if s.Time >= horizon {
		panic(fmt.Errorf("%w: time %d, horizon %d", frontier.ErrPastHorizon, s.Time, horizon))
	}

	out := make([]State, 0, Kinds+1)
	if horizon-s.Time > 1 {
		for k := Geode; k >= Ore; k-- {
			if k != Geode && s.Robots[k] >= p.maxSpend[k] {
				continue
			}
			c := p.bp.Costs[k]
			if !s.Stock.covers(c) {
				continue
			}
			n := s
			for i := range n.Stock {
				n.Stock[i] -= c[i]
			}
			out = append(out, p.step(n, s.Robots, k, horizon))
		}
	}

	return append(out, p.step(s, s.Robots, -1, horizon))
}

// step collects with the robots working this tick, adds the robot of kind
// built (none if negative) and clamps the stock to what the remaining ticks
// can still spend.
func (p *Plan) step(s State, working [Kinds]int, built Kind, horizon int) State {
	for i := range s.Stock {
		s.Stock[i] += working[i]
	}
	if built >= 0 {
		s.Robots[built]++
		if built == Geode {
			s.Geodes += horizon - s.Time - 1
		}
	}
	s.Time++

	rem := horizon - s.Time
	for i := range s.Stock {
		if rem == 0 {
			s.Stock[i] = 0
			continue
		}
		s.Stock[i] = min(s.Stock[i], p.maxSpend[i]*rem-s.Robots[i]*(rem-1))
	}

	return s
}

// Bound relaxes the blueprint: ore is free, a clay robot is built every
// tick, and an obsidian or geode robot whenever its clay or obsidian price
// is in stock, both in the same tick if affordable.
func (p *Plan) Bound(s State, horizon int) int {
	clay, obs := s.Stock[Clay], s.Stock[Obsidian]
	clayBots, obsBots := s.Robots[Clay], s.Robots[Obsidian]
	obsCost := p.bp.Costs[Obsidian][Clay]
	geoCost := p.bp.Costs[Geode][Obsidian]

	best := s.Geodes
	for t := s.Time; t < horizon-1; t++ {
		geode := obs >= geoCost
		obsidian := clay >= obsCost
		if geode {
			obs -= geoCost
			best += horizon - t - 1
		}
		if obsidian {
			clay -= obsCost
		}
		clay += clayBots
		obs += obsBots
		clayBots++
		if obsidian {
			obsBots++
		}
	}

	return best
}

// problem adapts a Plan to frontier.Problem and frontier.Bounder.
type problem struct{ *Plan }

func keyOf(s State) key {
	return key{time: s.Time, robots: [Resources]int{s.Robots[Ore], s.Robots[Clay], s.Robots[Obsidian]}}
}

func (problem) Key(s State) key          { return keyOf(s) }
func (problem) Elapsed(s State) int      { return s.Time }
func (problem) Objective(s State) int    { return s.Geodes }
func (problem) Floor(s State, _ int) int { return s.Geodes }

func (problem) Compare(a, b State) frontier.Ordering {
	if keyOf(a) != keyOf(b) {
		return frontier.Incomparable
	}

	return frontier.Compare(a.Stock, a.Geodes, b.Stock, b.Geodes)
}

// Solve runs the search for bp over horizon ticks.
func Solve(ctx context.Context, bp Blueprint, horizon int, opts ...frontier.Option) (frontier.Result[State], error) {
	opts = append(opts[:len(opts):len(opts)],
		frontier.WithHorizon(horizon))

	return frontier.Search[State, key](ctx, problem{NewPlan(bp)}, Start(), opts...)
}

// MaxGeodes returns the most geodes bp can crack in horizon ticks.
func MaxGeodes(ctx context.Context, bp Blueprint, horizon int, opts ...frontier.Option) (int, error) {
	res, err := Solve(ctx, bp, horizon, opts...)
	if err != nil {
		return 0, fmt.Errorf("blueprint %d: %w", bp.ID, err)
	}

	return res.Best, nil
}

// maxAll solves every blueprint in parallel; out[i] belongs to bps[i].
func maxAll(ctx context.Context, bps []Blueprint, horizon int, opts []frontier.Option) ([]int, error) {
	out := make([]int, len(bps))
	g, ctx := errgroup.WithContext(ctx)
	for i, bp := range bps {
		g.Go(func() error {
			v, err := MaxGeodes(ctx, bp, horizon, opts...)
			out[i] = v
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// QualitySum returns Σ ID × MaxGeodes over bps. An empty list sums to 0.
func QualitySum(ctx context.Context, bps []Blueprint, horizon int, opts ...frontier.Option) (int, error) {
	best, err := maxAll(ctx, bps, horizon, opts)
	if err != nil {
		return 0, err
	}
	sum := 0
	for i, bp := range bps {
		sum += bp.ID * best[i]
	}

	return sum, nil
}

// TopProduct returns the product of MaxGeodes over the first n blueprints
// (all of them if fewer).
//
// Errors: ErrNoBlueprints if bps is empty or n < 1.
func TopProduct(ctx context.Context, bps []Blueprint, n, horizon int, opts ...frontier.Option) (int, error) {
	if len(bps) == 0 || n < 1 {
		return 0, fmt.Errorf("%w: %d blueprints, top %d", ErrNoBlueprints, len(bps), n)
	}
	best, err := maxAll(ctx, bps[:min(n, len(bps))], horizon, opts)
	if err != nil {
		return 0, err
	}
	prod := 1
	for _, v := range best {
		prod *= v
	}

	return prod, nil
}
