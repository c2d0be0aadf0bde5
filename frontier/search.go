package frontier

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"
)

// minChunk is the smallest slice of the frontier handed to one goroutine.
const minChunk = 64

// Search explores p from initial until every branch reaches the horizon and
// returns the best finished objective.
//
// Implementation:
//   - Stage 1: validate options; an initial state already at the horizon is
//     the only finished state.
//   - Stage 2: rounds of expand, partition, regroup and prune (see package
//     doc) until the frontier is empty. ctx is checked once per round.
//   - Stage 3: report the running maximum.
//
// Errors:
//   - ErrBadHorizon if no positive horizon was configured.
//   - ErrCanceled (wrapping ctx.Err()) if ctx is done at a round boundary;
//     the partial Result is returned alongside.
//   - ErrNoResult if nothing finished.
//
// Panics with ErrNoProgress if a successor does not advance time, and
// propagates ErrPastHorizon panics from Choices.
func Search[S any, K comparable](ctx context.Context, p Problem[S, K], initial S, opts ...Option) (Result[S], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	var res Result[S]
	if o.Horizon <= 0 {
		return res, fmt.Errorf("%w: %d", ErrBadHorizon, o.Horizon)
	}

	log := o.Logger.With(slog.String("problem", o.Label), slog.Int("horizon", o.Horizon))
	var bounder Bounder[S]
	if o.Bounding {
		bounder, _ = any(p).(Bounder[S])
	}
	floor := math.MinInt
	found := false
	finish := func(s S) {
		res.Finished++
		v := p.Objective(s)
		if !found || v > res.Best {
			res.Best, res.BestState, found = v, s, true
		}
		floor = max(floor, v)
	}

	if p.Elapsed(initial) >= o.Horizon {
		finish(initial)
		return res, nil
	}

	frontier := []S{initial}
	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("%w after %d rounds: %w", ErrCanceled, res.Rounds, err)
		}

		children, err := expand(ctx, p, frontier, o)
		if err != nil {
			return res, fmt.Errorf("%w after %d rounds: %w", ErrCanceled, res.Rounds, err)
		}

		st := RoundStats{Round: res.Rounds + 1}
		index := make(map[K]int)
		var buckets [][]S
		for i, kids := range children {
			parent := p.Elapsed(frontier[i])
			for _, c := range kids {
				st.Expanded++
				t := p.Elapsed(c)
				if t <= parent {
					panic(fmt.Errorf("%w: %d -> %d", ErrNoProgress, parent, t))
				}
				if t >= o.Horizon {
					st.Finished++
					finish(c)
					continue
				}
				if bounder != nil {
					floor = max(floor, bounder.Floor(c, o.Horizon))
				}
				k := p.Key(c)
				b, ok := index[k]
				if !ok {
					b = len(buckets)
					index[k] = b
					buckets = append(buckets, nil)
				}
				buckets[b] = append(buckets[b], c)
			}
		}

		st.Cut, st.Pruned = pruneAll(p, bounder, floor, buckets, o)
		next := make([]S, 0, st.Expanded-st.Finished-st.Cut-st.Pruned)
		for _, b := range buckets {
			next = append(next, b...)
		}
		frontier = next

		res.Rounds++
		res.Expanded += st.Expanded
		res.Pruned += st.Pruned
		res.Cut += st.Cut
		st.Buckets = len(buckets)
		st.Frontier = len(frontier)
		st.Best = res.Best
		log.Debug("round",
			slog.Int("round", st.Round),
			slog.Int("expanded", st.Expanded),
			slog.Int("finished", st.Finished),
			slog.Int("pruned", st.Pruned),
			slog.Int("cut", st.Cut),
			slog.Int("buckets", st.Buckets),
			slog.Int("frontier", st.Frontier),
		)
		o.Metrics.observe(o.Label, st)
		if o.OnRound != nil {
			o.OnRound(st)
		}
	}

	if !found {
		return res, ErrNoResult
	}
	log.Info("search finished",
		slog.Int("best", res.Best),
		slog.Int("rounds", res.Rounds),
		slog.Int("expanded", res.Expanded),
		slog.Int("pruned", res.Pruned),
		slog.Int("cut", res.Cut),
		slog.Int("finished", res.Finished),
	)

	return res, nil
}

// expand returns the successors of every frontier state, out[i] belonging
// to frontier[i]. Each goroutine owns a disjoint range of out.
func expand[S any, K comparable](ctx context.Context, p Problem[S, K], frontier []S, o Options) ([][]S, error) {
	out := make([][]S, len(frontier))
	if o.Workers <= 1 || len(frontier) <= minChunk {
		for i, s := range frontier {
			out[i] = p.Choices(s, o.Horizon)
		}
		return out, nil
	}

	chunk := len(frontier) / (o.Workers * 4)
	if chunk < minChunk {
		chunk = minChunk
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for lo := 0; lo < len(frontier); lo += chunk {
		hi := min(lo+chunk, len(frontier))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				out[i] = p.Choices(frontier[i], o.Horizon)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// pruneAll filters every bucket through the Bounder (when set) and prunes
// it in place. Each goroutine owns one bucket. Returns the totals cut and
// pruned.
func pruneAll[S any, K comparable](p Problem[S, K], b Bounder[S], floor int, buckets [][]S, o Options) (int, int) {
	if b == nil && o.Pruning == PruneNone {
		return 0, 0
	}
	cut := make([]int, len(buckets))
	removed := make([]int, len(buckets))
	one := func(i int) {
		if b != nil {
			buckets[i], cut[i] = cutBelow(buckets[i], b, floor, o.Horizon)
		}
		buckets[i], removed[i] = Prune(buckets[i], p.Compare, o.Pruning)
	}

	if o.Workers <= 1 || len(buckets) < 2 {
		for i := range buckets {
			one(i)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(o.Workers)
		for i := range buckets {
			g.Go(func() error {
				one(i)
				return nil
			})
		}
		_ = g.Wait()
	}

	totalCut, totalPruned := 0, 0
	for i := range buckets {
		totalCut += cut[i]
		totalPruned += removed[i]
	}

	return totalCut, totalPruned
}

// cutBelow keeps the states of bucket whose Bound reaches floor.
func cutBelow[S any](bucket []S, b Bounder[S], floor, horizon int) ([]S, int) {
	out := bucket[:0]
	for _, s := range bucket {
		if b.Bound(s, horizon) >= floor {
			out = append(out, s)
		}
	}
	n := len(bucket) - len(out)
	var zero S
	for i := len(out); i < len(bucket); i++ {
		bucket[i] = zero
	}

	return out, n
}
