package valve

import (
	"context"

	"github.com/katalvlaran/paretosearch/bitset"
	"github.com/katalvlaran/paretosearch/frontier"
	"github.com/katalvlaran/paretosearch/graph"
)

// SolveSolo runs the single-agent search from m's start with empty as the
// initial activation set. opts are applied before the horizon, which always
// wins.
func SolveSolo[A Activation[A]](ctx context.Context, m *Model, horizon int, empty A, opts ...frontier.Option) (frontier.Result[Solo[A]], error) {
	init := Solo[A]{At: m.start, Open: empty}
	opts = append(opts[:len(opts):len(opts)], frontier.WithHorizon(horizon))

	return frontier.Search[Solo[A], soloKey](ctx, soloProblem[A]{m: m}, init, opts...)
}

// SolveDuo runs the two-agent search; both agents start at m's start.
func SolveDuo[A Activation[A]](ctx context.Context, m *Model, horizon int, empty A, opts ...frontier.Option) (frontier.Result[Duo[A]], error) {
	at := Agent{At: m.start}
	init := Duo[A]{A: at, B: at, Open: empty}
	opts = append(opts[:len(opts):len(opts)], frontier.WithHorizon(horizon))

	return frontier.Search[Duo[A], duoKey](ctx, duoProblem[A]{m: m}, init, opts...)
}

// MaxReleased returns the most a single agent can release by horizon.
func MaxReleased(ctx context.Context, m *Model, horizon int, opts ...frontier.Option) (int, error) {
	res, err := SolveSolo(ctx, m, horizon, bitset.Set(0), opts...)
	if err != nil {
		return 0, err
	}

	return res.Best, nil
}

// MaxReleasedDuo returns the most two agents can release by horizon.
func MaxReleasedDuo(ctx context.Context, m *Model, horizon int, opts ...frontier.Option) (int, error) {
	res, err := SolveDuo(ctx, m, horizon, bitset.Set(0), opts...)
	if err != nil {
		return 0, err
	}

	return res.Best, nil
}

// Part1 validates cfg, prepares defs and solves for one agent over
// cfg.Horizon.
func Part1(ctx context.Context, defs []graph.NodeDef, cfg Config, opts ...frontier.Option) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	m, err := Prepare(defs, cfg)
	if err != nil {
		return 0, err
	}

	return MaxReleased(ctx, m, cfg.Horizon, opts...)
}

// Part2 validates cfg, prepares defs and solves for two agents over
// cfg.DuoHorizon.
func Part2(ctx context.Context, defs []graph.NodeDef, cfg Config, opts ...frontier.Option) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	m, err := Prepare(defs, cfg)
	if err != nil {
		return 0, err
	}

	return MaxReleasedDuo(ctx, m, cfg.DuoHorizon, opts...)
}
