package frontier_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/paretosearch/frontier"
)

type SearchSuite struct {
	suite.Suite
	ctx context.Context
	p   taps
}

func (s *SearchSuite) SetupTest() {
	s.ctx = context.Background()
	s.p = taps{flows: []int{3, 1, 2}}
}

// Opening 3, 2, 1 on consecutive ticks from t=0 releases 0+3+5+6 by t=4.
func (s *SearchSuite) TestBestAcrossModes() {
	for _, mode := range []frontier.PruneMode{frontier.PruneNone, frontier.PruneDuplicates, frontier.PruneDominance} {
		res, err := frontier.Search[tapState, int](s.ctx, s.p, tapState{},
			frontier.WithHorizon(4), frontier.WithPruning(mode))
		s.Require().NoError(err, mode.String())
		s.Equal(14, res.Best, mode.String())
		s.Equal(4, res.BestState.T)
		s.Equal(4, res.Rounds)
	}
}

func (s *SearchSuite) TestPruningShrinksWork() {
	full, err := frontier.Search[tapState, int](s.ctx, s.p, tapState{},
		frontier.WithHorizon(5), frontier.WithPruning(frontier.PruneNone))
	s.Require().NoError(err)
	pruned, err := frontier.Search[tapState, int](s.ctx, s.p, tapState{},
		frontier.WithHorizon(5))
	s.Require().NoError(err)

	s.Equal(full.Best, pruned.Best)
	s.Zero(full.Pruned)
	s.Positive(pruned.Pruned)
	s.Less(pruned.Expanded, full.Expanded)
}

func (s *SearchSuite) TestParallelMatchesSerial() {
	p := taps{flows: []int{5, 1, 4, 2, 8, 3, 7}}
	serial, err := frontier.Search[tapState, int](s.ctx, p, tapState{},
		frontier.WithHorizon(8), frontier.WithWorkers(1), frontier.WithPruning(frontier.PruneDuplicates))
	s.Require().NoError(err)
	par, err := frontier.Search[tapState, int](s.ctx, p, tapState{},
		frontier.WithHorizon(8), frontier.WithWorkers(4), frontier.WithPruning(frontier.PruneDuplicates))
	s.Require().NoError(err)

	s.Equal(serial.Best, par.Best)
	s.Equal(serial.Expanded, par.Expanded)
	s.Equal(serial.Pruned, par.Pruned)
	s.Equal(serial.Finished, par.Finished)
}

func (s *SearchSuite) TestBadHorizon() {
	_, err := frontier.Search[tapState, int](s.ctx, s.p, tapState{})
	s.ErrorIs(err, frontier.ErrBadHorizon)
	_, err = frontier.Search[tapState, int](s.ctx, s.p, tapState{}, frontier.WithHorizon(-3))
	s.ErrorIs(err, frontier.ErrBadHorizon)
}

func (s *SearchSuite) TestInitialAlreadyFinished() {
	res, err := frontier.Search[tapState, int](s.ctx, s.p, tapState{T: 4, V: 9}, frontier.WithHorizon(4))
	s.Require().NoError(err)
	s.Equal(9, res.Best)
	s.Equal(1, res.Finished)
	s.Zero(res.Rounds)
}

func (s *SearchSuite) TestNoResult() {
	_, err := frontier.Search[tapState, int](s.ctx, deadEnd{s.p}, tapState{}, frontier.WithHorizon(3))
	s.ErrorIs(err, frontier.ErrNoResult)
}

func (s *SearchSuite) TestNoProgressPanics() {
	s.PanicsWithError(frontier.ErrNoProgress.Error()+": 0 -> 0", func() {
		_, _ = frontier.Search[tapState, int](s.ctx, stuck{s.p}, tapState{}, frontier.WithHorizon(3))
	})
}

func (s *SearchSuite) TestCanceled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err := frontier.Search[tapState, int](ctx, s.p, tapState{}, frontier.WithHorizon(4))
	s.ErrorIs(err, frontier.ErrCanceled)
	s.ErrorIs(err, context.Canceled)
}

func (s *SearchSuite) TestCanceledMidway() {
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	res, err := frontier.Search[tapState, int](ctx, s.p, tapState{},
		frontier.WithHorizon(10),
		frontier.WithOnRound(func(st frontier.RoundStats) {
			if st.Round == 2 {
				cancel()
			}
		}))
	s.ErrorIs(err, frontier.ErrCanceled)
	s.Equal(2, res.Rounds)
}

func (s *SearchSuite) TestOnRoundStats() {
	var rounds []frontier.RoundStats
	res, err := frontier.Search[tapState, int](s.ctx, s.p, tapState{},
		frontier.WithHorizon(4),
		frontier.WithOnRound(func(st frontier.RoundStats) { rounds = append(rounds, st) }))
	s.Require().NoError(err)
	s.Require().Len(rounds, 4)

	expanded, finished := 0, 0
	for i, st := range rounds {
		s.Equal(i+1, st.Round)
		expanded += st.Expanded
		finished += st.Finished
		s.Equal(st.Buckets > 0, st.Frontier > 0)
	}
	s.Equal(res.Expanded, expanded)
	s.Equal(res.Finished, finished)
	s.Zero(rounds[3].Frontier)
	s.Equal(14, rounds[3].Best)
}

func (s *SearchSuite) TestBounderCuts() {
	p := boundedTaps{taps{flows: []int{5, 1, 4, 2, 8, 3}}}
	plain, err := frontier.Search[tapState, int](s.ctx, p, tapState{},
		frontier.WithHorizon(9), frontier.WithBounding(false))
	s.Require().NoError(err)
	s.Zero(plain.Cut)

	cut, err := frontier.Search[tapState, int](s.ctx, p, tapState{}, frontier.WithHorizon(9))
	s.Require().NoError(err)
	s.Equal(plain.Best, cut.Best)
	s.Positive(cut.Cut)
	s.LessOrEqual(cut.Expanded, plain.Expanded)

	unpruned, err := frontier.Search[tapState, int](s.ctx, p, tapState{},
		frontier.WithHorizon(6), frontier.WithPruning(frontier.PruneNone))
	s.Require().NoError(err)
	brute, err := frontier.Search[tapState, int](s.ctx, s.p, tapState{},
		frontier.WithHorizon(6), frontier.WithPruning(frontier.PruneNone))
	s.Require().NoError(err)
	s.Equal(brute.Best, unpruned.Best)
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

func TestSearch_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := frontier.NewMetrics(reg)
	_, err := frontier.Search[tapState, int](context.Background(), taps{flows: []int{3, 1, 2}}, tapState{},
		frontier.WithHorizon(4), frontier.WithMetrics(m, "taps"))
	require.NoError(t, err)

	want := `
# HELP pareto_rounds_total Completed search rounds.
# TYPE pareto_rounds_total counter
pareto_rounds_total{problem="taps"} 4
# HELP pareto_frontier_states Live states carried into the next round.
# TYPE pareto_frontier_states gauge
pareto_frontier_states{problem="taps"} 0
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want),
		"pareto_rounds_total", "pareto_frontier_states"))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	assert.Panics(t, func() { frontier.NewMetrics(reg) }, "duplicate registration")
}

func TestSearch_Logs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := frontier.Search[tapState, int](context.Background(), taps{flows: []int{1}}, tapState{},
		frontier.WithHorizon(2), frontier.WithLogger(log), frontier.WithMetrics(nil, "one"))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=round")
	assert.Contains(t, out, "problem=one")
	assert.Contains(t, out, `msg="search finished"`)
	assert.Contains(t, out, "best=1")
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { frontier.WithWorkers(-1) })
	assert.Panics(t, func() { frontier.WithLogger(nil) })
	assert.NotPanics(t, func() { frontier.WithWorkers(0) })
}
