package robots_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/paretosearch/frontier"
	"github.com/katalvlaran/paretosearch/robots"
)

type BlueprintSuite struct {
	suite.Suite
	ctx context.Context
	bps []robots.Blueprint
}

func (s *BlueprintSuite) SetupSuite() {
	s.ctx = context.Background()
	s.bps = exampleBlueprints(s.T())
}

func (s *BlueprintSuite) TestMaxGeodes() {
	for i, want := range []int{9, 12} {
		got, err := robots.MaxGeodes(s.ctx, s.bps[i], 24)
		s.Require().NoError(err)
		s.Equal(want, got, "blueprint %d", s.bps[i].ID)
	}
}

func (s *BlueprintSuite) TestQualitySum() {
	got, err := robots.QualitySum(s.ctx, s.bps, 24)
	s.Require().NoError(err)
	s.Equal(33, got)
}

func (s *BlueprintSuite) TestTopProduct() {
	if testing.Short() {
		s.T().Skip("32 ticks")
	}
	got, err := robots.TopProduct(s.ctx, s.bps, 3, 32)
	s.Require().NoError(err)
	s.Equal(56*62, got)
}

func (s *BlueprintSuite) TestBestStateBuiltGeodeRobots() {
	res, err := robots.Solve(s.ctx, s.bps[0], 24)
	s.Require().NoError(err)
	s.Equal(9, res.Best)
	s.Equal(24, res.BestState.Time)
	s.Positive(res.BestState.Robots[robots.Geode])
}

func TestBlueprintSuite(t *testing.T) {
	suite.Run(t, new(BlueprintSuite))
}

var first = robots.Blueprint{
	ID: 1,
	Costs: [robots.Kinds]robots.Cost{
		robots.Ore:      {4, 0, 0},
		robots.Clay:     {2, 0, 0},
		robots.Obsidian: {3, 14, 0},
		robots.Geode:    {2, 0, 7},
	},
}

func TestPlan(t *testing.T) {
	p := robots.NewPlan(first)
	assert.Equal(t, first, p.Blueprint())
	assert.Equal(t, 4, p.MaxSpend(robots.Ore))
	assert.Equal(t, 14, p.MaxSpend(robots.Clay))
	assert.Equal(t, 7, p.MaxSpend(robots.Obsidian))
}

func TestChoices(t *testing.T) {
	p := robots.NewPlan(first)

	kids := p.Choices(robots.Start(), 24)
	require.Len(t, kids, 1, "nothing affordable")
	assert.Equal(t, robots.State{Time: 1, Stock: robots.Stock{1, 0, 0}, Robots: [robots.Kinds]int{1, 0, 0, 0}}, kids[0])

	s := robots.State{Time: 5, Stock: robots.Stock{4, 0, 0}, Robots: [robots.Kinds]int{1, 0, 0, 0}}
	kids = p.Choices(s, 24)
	require.Len(t, kids, 3)
	assert.Equal(t, robots.State{Time: 6, Stock: robots.Stock{3, 0, 0}, Robots: [robots.Kinds]int{1, 1, 0, 0}}, kids[0], "clay")
	assert.Equal(t, robots.State{Time: 6, Stock: robots.Stock{1, 0, 0}, Robots: [robots.Kinds]int{2, 0, 0, 0}}, kids[1], "ore")
	assert.Equal(t, robots.State{Time: 6, Stock: robots.Stock{5, 0, 0}, Robots: [robots.Kinds]int{1, 0, 0, 0}}, kids[2], "wait")
}

func TestChoices_CommittedGeodes(t *testing.T) {
	p := robots.NewPlan(first)
	s := robots.State{Time: 21, Stock: robots.Stock{2, 0, 7}, Robots: [robots.Kinds]int{1, 4, 2, 0}}

	kids := p.Choices(s, 24)
	require.Len(t, kids, 3, "geode, clay, wait")
	geode := kids[0]
	assert.Equal(t, 2, geode.Geodes, "credited for ticks 22 and 23")
	assert.Equal(t, 1, geode.Robots[robots.Geode])
	assert.Equal(t, robots.Stock{1, 4, 2}, geode.Stock)

	assert.Equal(t, 5, kids[1].Robots[robots.Clay])
	assert.Equal(t, robots.Stock{1, 4, 9}, kids[1].Stock)
	assert.Equal(t, robots.Stock{3, 4, 9}, kids[2].Stock)
	for _, k := range kids[1:] {
		assert.Zero(t, k.Geodes)
	}
}

func TestChoices_RobotCap(t *testing.T) {
	p := robots.NewPlan(first)
	s := robots.State{Stock: robots.Stock{4, 0, 0}, Robots: [robots.Kinds]int{4, 0, 0, 0}}
	kids := p.Choices(s, 24)
	require.Len(t, kids, 2, "clay and wait; ore robots are capped")
	assert.Equal(t, 1, kids[0].Robots[robots.Clay])
	assert.Equal(t, 4, kids[1].Robots[robots.Ore])
}

func TestChoices_Clamp(t *testing.T) {
	p := robots.NewPlan(first)
	s := robots.State{Time: 20, Stock: robots.Stock{50, 0, 0}, Robots: [robots.Kinds]int{1, 0, 0, 0}}
	kids := p.Choices(s, 24)
	wait := kids[len(kids)-1]
	assert.Equal(t, 10, wait.Stock[robots.Ore], "3 ticks left: 4 per tick minus what one robot brings in")
}

func TestChoices_LastTick(t *testing.T) {
	p := robots.NewPlan(first)
	s := robots.State{Time: 23, Stock: robots.Stock{10, 20, 20}, Geodes: 4, Robots: [robots.Kinds]int{1, 1, 1, 0}}

	kids := p.Choices(s, 24)
	require.Len(t, kids, 1, "a robot built now would never work")
	assert.Equal(t, robots.State{Time: 24, Geodes: 4, Robots: [robots.Kinds]int{1, 1, 1, 0}}, kids[0])

	assert.PanicsWithError(t, frontier.ErrPastHorizon.Error()+": time 24, horizon 24", func() {
		p.Choices(kids[0], 24)
	})
}

func TestBound(t *testing.T) {
	p := robots.NewPlan(first)
	assert.Equal(t, 4, p.Bound(robots.State{Time: 23, Geodes: 4}, 24))
	assert.GreaterOrEqual(t, p.Bound(robots.Start(), 24), 9)

	// 7 obsidian in stock at tick 21 of 24 can pay one geode robot now.
	s := robots.State{Time: 21, Stock: robots.Stock{0, 0, 7}}
	assert.Equal(t, 2, p.Bound(s, 24))
}

func TestErrors(t *testing.T) {
	ctx := context.Background()
	_, err := robots.MaxGeodes(ctx, first, 0)
	assert.ErrorIs(t, err, frontier.ErrBadHorizon)

	_, err = robots.TopProduct(ctx, nil, 3, 32)
	assert.ErrorIs(t, err, robots.ErrNoBlueprints)
	_, err = robots.TopProduct(ctx, []robots.Blueprint{first}, 0, 32)
	assert.ErrorIs(t, err, robots.ErrNoBlueprints)

	sum, err := robots.QualitySum(ctx, nil, 24)
	require.NoError(t, err)
	assert.Zero(t, sum)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = robots.QualitySum(canceled, []robots.Blueprint{first}, 24)
	assert.ErrorIs(t, err, frontier.ErrCanceled)
}
