package simplex

import (
	"github.com/katalvlaran/mcflow/digraph"
)

// Solver is a network simplex solver bound to one digraph. Configure it with
// the chainable setters, execute with Run, and read results through the
// accessors. The zero value is not usable; construct with New.
//
// A Solver snapshots the digraph structure at construction time into dense
// index arrays, so the digraph must not change structurally afterwards.
// Reconfiguring and re-running the same instance is supported; every Run
// re-solves from scratch.
type Solver struct {
	g digraph.Digraph

	nodeNum int
	arcNum  int

	// Structure snapshot: dense endpoint indices per real arc.
	source []int
	target []int

	// Configuration, per real arc / node. Setters copy values in eagerly.
	lower  []int64
	upper  []int64
	cost   []int64
	supply []int64
	ptype  ProblemType

	// Augmented working instance, rebuilt by init on every Run.
	// Arc slots [0, arcNum) are the real arcs; the rest are the GEQ/LEQ
	// slack arcs and the artificial root arcs.
	srcW  []int
	tgtW  []int
	capW  []int64
	flowW []int64
	costW []int64
	state []arcState

	searchArcNum int // arcs eligible for entering-arc search
	allArcNum    int // search arcs + artificial arcs
	root         int

	// Spanning tree arenas, indexed by dense node id (root = nodeNum).
	parent    []int
	pred      []int // arc connecting to parent; -1 at the root
	forward   []bool
	thread    []int // cyclic preorder successor
	revThread []int
	depth     []int
	succNum   []int // subtree size, self included
	pi        []int64

	// Per-pivot scratch set by findJoinNode/findLeavingArc.
	inArc int
	join  int
	uIn   int
	vIn   int
	uOut  int
	delta int64

	// Subtree restructuring buffers.
	subBuf    []int
	orderBuf  []int
	stackBuf  []int
	childHead []int
	childNext []int

	status runStatus

	// Results of the latest successful Run; stale values survive a failed
	// Run untouched.
	flowRes *digraph.ArcMap[int64]
	piRes   *digraph.NodeMap[int64]
	costRes []int64
}

// New returns a Solver over g with default configuration (see Reset).
// The digraph must stay structurally unchanged for the Solver's lifetime.
func New(g digraph.Digraph) *Solver {
	n, m := g.NodeNum(), g.ArcNum()
	s := &Solver{
		g:       g,
		nodeNum: n,
		arcNum:  m,
		source:  make([]int, m),
		target:  make([]int, m),
		lower:   make([]int64, m),
		upper:   make([]int64, m),
		cost:    make([]int64, m),
		supply:  make([]int64, n),
		flowRes: digraph.NewArcMap[int64](g),
		piRes:   digraph.NewNodeMap[int64](g),
		costRes: make([]int64, m),
	}

	// Snapshot incidence through the iteration capability set.
	for a := g.FirstArc(); a != digraph.InvalidArc; a = g.NextArc(a) {
		s.source[a] = int(g.Source(a))
		s.target[a] = int(g.Target(a))
	}

	return s.Reset()
}

// Reset discards all configuration and restores defaults: lower bounds 0,
// upper bounds Unbounded, costs 0, supplies 0, problem type Equal. The
// digraph binding and the results of earlier runs are retained.
func (s *Solver) Reset() *Solver {
	for i := 0; i < s.arcNum; i++ {
		s.lower[i] = 0
		s.upper[i] = Unbounded
		s.cost[i] = 0
	}
	for i := 0; i < s.nodeNum; i++ {
		s.supply[i] = 0
	}
	s.ptype = Equal

	return s
}

// LowerMap copies per-arc lower bounds from m.
func (s *Solver) LowerMap(m digraph.ArcValues[int64]) *Solver {
	for i := 0; i < s.arcNum; i++ {
		s.lower[i] = m.Get(digraph.ArcID(i))
	}

	return s
}

// UpperMap copies per-arc upper bounds from m. Use Unbounded for arcs
// without a capacity limit.
func (s *Solver) UpperMap(m digraph.ArcValues[int64]) *Solver {
	for i := 0; i < s.arcNum; i++ {
		s.upper[i] = m.Get(digraph.ArcID(i))
	}

	return s
}

// CapacityMap is UpperMap under its transportation-problem name: with the
// default zero lower bounds, capacity and upper bound coincide.
func (s *Solver) CapacityMap(m digraph.ArcValues[int64]) *Solver {
	return s.UpperMap(m)
}

// BoundMaps copies lower and upper bounds in one call.
// Precondition: lo.Get(a) ≤ hi.Get(a) for every arc.
func (s *Solver) BoundMaps(lo, hi digraph.ArcValues[int64]) *Solver {
	return s.LowerMap(lo).UpperMap(hi)
}

// CostMap copies per-arc costs from m.
func (s *Solver) CostMap(m digraph.ArcValues[int64]) *Solver {
	for i := 0; i < s.arcNum; i++ {
		s.cost[i] = m.Get(digraph.ArcID(i))
	}

	return s
}

// SupplyMap copies per-node supply values from m (demand = negative supply).
func (s *Solver) SupplyMap(m digraph.NodeValues[int64]) *Solver {
	for i := 0; i < s.nodeNum; i++ {
		s.supply[i] = m.Get(digraph.NodeID(i))
	}

	return s
}

// STSupply replaces the supply configuration with a single source→target
// demand: +k at src, −k at tgt, zero everywhere else.
func (s *Solver) STSupply(src, tgt digraph.NodeID, k int64) *Solver {
	for i := 0; i < s.nodeNum; i++ {
		s.supply[i] = 0
	}
	s.supply[src] = k
	s.supply[tgt] = -k

	return s
}

// ProblemType selects the node balance relation (default Equal).
func (s *Solver) ProblemType(t ProblemType) *Solver {
	s.ptype = t

	return s
}

// Run solves the configured instance and reports whether an optimal feasible
// flow was found. An optional pivot rule overrides the BlockSearch default.
//
// On true, Flow/FlowMap, Potential/PotentialMap and TotalCost/TotalCostAs
// describe the optimum. On false the instance is infeasible under the
// configured bounds, supplies and problem type (or its objective is unbounded
// below), and the result accessors keep whatever the previous successful Run
// produced.
func (s *Solver) Run(rule ...PivotRule) bool {
	r := BlockSearch
	if len(rule) > 0 {
		r = rule[0]
	}

	if !s.init() {
		s.status = statusInfeasible

		return false
	}
	if !s.pivotLoop(r) {
		s.status = statusInfeasible

		return false
	}

	s.status = statusOptimal
	s.materialize()

	return true
}

// materialize publishes the working solution: per-arc flows with the
// lower-bound shift undone, potentials normalized to a zero root, and a cost
// snapshot so TotalCostAs keeps matching this solution across later
// reconfiguration.
func (s *Solver) materialize() {
	for i := 0; i < s.arcNum; i++ {
		s.flowRes.Set(digraph.ArcID(i), s.flowW[i]+s.lower[i])
	}
	rootPi := s.pi[s.root]
	for u := 0; u < s.nodeNum; u++ {
		s.piRes.Set(digraph.NodeID(u), s.pi[u]-rootPi)
	}
	copy(s.costRes, s.cost)
}

// Flow returns the flow of arc a in the latest successful solution.
func (s *Solver) Flow(a digraph.ArcID) int64 { return s.flowRes.Get(a) }

// Potential returns the dual value of node n in the latest successful
// solution, normalized so the artificial root has potential zero.
func (s *Solver) Potential(n digraph.NodeID) int64 { return s.piRes.Get(n) }

// FlowMap returns the solver-owned per-arc flow view of the latest
// successful solution. Treat it as read-only; it is overwritten by the next
// successful Run.
func (s *Solver) FlowMap() *digraph.ArcMap[int64] { return s.flowRes }

// PotentialMap returns the solver-owned per-node potential view of the
// latest successful solution. Treat it as read-only.
func (s *Solver) PotentialMap() *digraph.NodeMap[int64] { return s.piRes }

// TotalCost returns Σ cost(a)·flow(a) of the latest successful solution,
// accumulated in int64. Use TotalCostAs when the products may overflow.
func (s *Solver) TotalCost() int64 { return TotalCostAs[int64](s) }

// TotalCostAs returns the total cost of s's latest successful solution,
// accumulated in T. The per-arc cost and flow types stay int64; T only has
// to hold the sum, so callers with large instances can pick float64 or a
// wider integer independent of the arc data.
func TotalCostAs[T Numeric](s *Solver) T {
	var total T
	for i := 0; i < s.arcNum; i++ {
		total += T(s.costRes[i]) * T(s.flowRes.Get(digraph.ArcID(i)))
	}

	return total
}
