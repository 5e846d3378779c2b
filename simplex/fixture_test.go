package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcflow/digraph"
	"github.com/katalvlaran/mcflow/simplex"
)

// The reference network: 12 nodes, 21 arcs, one cost and capacity per arc,
// two alternative lower-bound sets and five alternative supply vectors.
// Node and arc order follow the classic minimum-cost-flow test instance.
type fixture struct {
	g *digraph.List

	cost  *digraph.ArcMap[int64]
	cap   *digraph.ArcMap[int64]
	low1  *digraph.ArcMap[int64] // all zero
	low2  *digraph.ArcMap[int64]
	sup1  *digraph.NodeMap[int64]
	sup2  *digraph.NodeMap[int64]
	sup3  *digraph.NodeMap[int64] // all zero
	sup4  *digraph.NodeMap[int64]
	sup5  *digraph.NodeMap[int64]
	src   digraph.NodeID // node "1"
	tgt   digraph.NodeID // node "12"
	unitC digraph.ConstArcValues[int64]
	unbnd digraph.ConstArcValues[int64]
}

// arcRow is one fixture arc: endpoints (1-based), cost, capacity and the
// second lower-bound set (the first one is identically zero).
type arcRow struct {
	from, to  int
	cost, cap int64
	low2      int64
}

var fixtureArcs = []arcRow{
	{1, 2, 70, 11, 8},
	{1, 3, 150, 3, 1},
	{1, 4, 80, 15, 2},
	{2, 8, 80, 12, 0},
	{3, 5, 140, 5, 3},
	{4, 6, 60, 10, 1},
	{4, 7, 80, 2, 0},
	{4, 8, 110, 3, 0},
	{5, 7, 60, 14, 0},
	{5, 11, 120, 12, 0},
	{6, 3, 0, 3, 0},
	{6, 9, 140, 4, 0},
	{6, 10, 90, 8, 0},
	{7, 1, 30, 5, 0},
	{8, 12, 60, 16, 4},
	{9, 12, 50, 6, 0},
	{10, 12, 70, 13, 5},
	{10, 2, 100, 7, 0},
	{10, 7, 60, 10, 0},
	{11, 10, 20, 14, 6},
	{12, 11, 30, 10, 0},
}

// Supply vectors indexed by 1-based node label.
var (
	fixtureSup1 = []int64{20, -4, 0, 0, 9, -6, 0, 0, 3, -2, 0, -20}
	fixtureSup2 = []int64{27, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, -27}
	fixtureSup4 = []int64{20, -8, 0, 0, 6, -5, 0, 0, 0, -7, -10, -30}
	fixtureSup5 = []int64{30, -3, 0, 0, 11, -6, 0, 3, 0, -2, 0, -20}
)

func buildFixture(t *testing.T) *fixture {
	t.Helper()

	g := digraph.NewList(12, len(fixtureArcs))
	g.AddNodes(12)

	f := &fixture{g: g}
	for _, row := range fixtureArcs {
		_, err := g.AddArc(digraph.NodeID(row.from-1), digraph.NodeID(row.to-1))
		require.NoError(t, err)
	}

	f.cost = digraph.NewArcMap[int64](g)
	f.cap = digraph.NewArcMap[int64](g)
	f.low1 = digraph.NewArcMap[int64](g)
	f.low2 = digraph.NewArcMap[int64](g)
	for i, row := range fixtureArcs {
		a := digraph.ArcID(i)
		f.cost.Set(a, row.cost)
		f.cap.Set(a, row.cap)
		f.low2.Set(a, row.low2)
	}

	f.sup1 = nodeMapOf(g, fixtureSup1)
	f.sup2 = nodeMapOf(g, fixtureSup2)
	f.sup3 = digraph.NewNodeMap[int64](g)
	f.sup4 = nodeMapOf(g, fixtureSup4)
	f.sup5 = nodeMapOf(g, fixtureSup5)

	f.src, f.tgt = 0, 11
	f.unitC = digraph.ConstArcValues[int64]{Value: 1}
	f.unbnd = digraph.ConstArcValues[int64]{Value: simplex.Unbounded}

	return f
}

func nodeMapOf(g digraph.Digraph, values []int64) *digraph.NodeMap[int64] {
	m := digraph.NewNodeMap[int64](g)
	for i, v := range values {
		m.Set(digraph.NodeID(i), v)
	}

	return m
}

// checkFlow asserts primal feasibility of the solved flow: per-arc bounds
// and the per-node balance relation of the given problem type.
func checkFlow(
	t *testing.T,
	g digraph.Digraph,
	lower, upper digraph.ArcValues[int64],
	supply digraph.NodeValues[int64],
	s *simplex.Solver,
	ptype simplex.ProblemType,
) {
	t.Helper()

	for a := g.FirstArc(); a != digraph.InvalidArc; a = g.NextArc(a) {
		flow := s.Flow(a)
		require.GreaterOrEqual(t, flow, lower.Get(a), "arc %d below lower bound", a)
		require.LessOrEqual(t, flow, upper.Get(a), "arc %d above upper bound", a)
	}

	for n := g.FirstNode(); n != digraph.InvalidNode; n = g.NextNode(n) {
		var sum int64
		for a := g.FirstOut(n); a != digraph.InvalidArc; a = g.NextOut(a) {
			sum += s.Flow(a)
		}
		for a := g.FirstIn(n); a != digraph.InvalidArc; a = g.NextIn(a) {
			sum -= s.Flow(a)
		}
		switch ptype {
		case simplex.Equal:
			require.Equal(t, supply.Get(n), sum, "node %d balance", n)
		case simplex.GreaterOrEqual:
			require.GreaterOrEqual(t, sum, supply.Get(n), "node %d balance", n)
		case simplex.LessOrEqual:
			require.LessOrEqual(t, sum, supply.Get(n), "node %d balance", n)
		}
	}
}

// checkPotential asserts dual feasibility via complementary slackness: every
// arc has zero reduced cost or sits at the bound its reduced-cost sign
// demands, and every node with a non-binding balance has zero potential.
func checkPotential(
	t *testing.T,
	g digraph.Digraph,
	lower, upper digraph.ArcValues[int64],
	cost digraph.ArcValues[int64],
	supply digraph.NodeValues[int64],
	s *simplex.Solver,
) {
	t.Helper()

	for a := g.FirstArc(); a != digraph.InvalidArc; a = g.NextArc(a) {
		red := cost.Get(a) + s.Potential(g.Source(a)) - s.Potential(g.Target(a))
		flow := s.Flow(a)
		ok := red == 0 ||
			(red > 0 && flow == lower.Get(a)) ||
			(red < 0 && flow == upper.Get(a))
		require.True(t, ok, "arc %d: reduced cost %d with flow %d", a, red, flow)
	}

	for n := g.FirstNode(); n != digraph.InvalidNode; n = g.NextNode(n) {
		var sum int64
		for a := g.FirstOut(n); a != digraph.InvalidArc; a = g.NextOut(a) {
			sum += s.Flow(a)
		}
		for a := g.FirstIn(n); a != digraph.InvalidArc; a = g.NextIn(a) {
			sum -= s.Flow(a)
		}
		require.True(t, sum == supply.Get(n) || s.Potential(n) == 0,
			"node %d: non-binding balance with potential %d", n, s.Potential(n))
	}
}

// checkMcf runs the full certificate for one scenario: expected result flag,
// expected optimal total, primal feasibility and complementary slackness.
func checkMcf(
	t *testing.T,
	got bool,
	s *simplex.Solver,
	f *fixture,
	lower, upper digraph.ArcValues[int64],
	cost digraph.ArcValues[int64],
	supply digraph.NodeValues[int64],
	want bool,
	total int64,
	ptype simplex.ProblemType,
) {
	t.Helper()

	require.Equal(t, want, got, "unexpected run result")
	if !want {
		return
	}
	checkFlow(t, f.g, lower, upper, supply, s, ptype)
	require.Equal(t, total, s.TotalCost(), "suboptimal flow")
	checkPotential(t, f.g, lower, upper, cost, supply, s)
}
