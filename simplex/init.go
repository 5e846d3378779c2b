package simplex

// init normalizes the configured instance and builds the initial spanning
// tree on the augmented network. It reports false when the supply sum is
// incompatible with the problem type (or the graph is empty), which already
// proves infeasibility without any pivoting.
//
// Normalization shifts every arc's feasible flow range by its lower bound,
// so the working flow' = flow − lower lives in [0, upper−lower] and the
// all-zero assignment is bound-feasible; the flow forced by the lower bounds
// is folded into the node supplies. The artificial root then absorbs the
// residual supplies: every node is connected to the root by one tree arc
// carrying exactly its residual, giving a feasible starting basis. For the
// inequality forms an extra zero-cost slack arc per node (toward the root
// for LessOrEqual, from the root for GreaterOrEqual) makes the non-binding
// side of the relation expressible; those slack arcs are ordinary search
// arcs, while the penalized artificial arcs are not.
func (s *Solver) init() bool {
	n, m := s.nodeNum, s.arcNum
	if n == 0 {
		return false
	}

	// 1) The supply sum decides both feasibility and the slack orientation.
	var sumSupply int64
	for _, v := range s.supply {
		sumSupply += v
	}
	switch s.ptype {
	case Equal:
		if sumSupply != 0 {
			return false
		}
	case GreaterOrEqual:
		if sumSupply > 0 {
			return false
		}
	case LessOrEqual:
		if sumSupply < 0 {
			return false
		}
	default:
		return false
	}

	// 2) Allocate the augmented arena: m real arcs, up to n slack arcs and
	//    up to n artificial arcs.
	maxArc := m + 2*n
	s.srcW = make([]int, maxArc)
	s.tgtW = make([]int, maxArc)
	s.capW = make([]int64, maxArc)
	s.flowW = make([]int64, maxArc)
	s.costW = make([]int64, maxArc)
	s.state = make([]arcState, maxArc)

	s.parent = make([]int, n+1)
	s.pred = make([]int, n+1)
	s.forward = make([]bool, n+1)
	s.thread = make([]int, n+1)
	s.revThread = make([]int, n+1)
	s.depth = make([]int, n+1)
	s.succNum = make([]int, n+1)
	s.pi = make([]int64, n+1)

	s.subBuf = make([]int, 0, n+1)
	s.orderBuf = make([]int, 0, n+1)
	s.stackBuf = make([]int, 0, n+1)
	s.childHead = make([]int, n+1)
	s.childNext = make([]int, n+1)

	// 3) Copy the real arcs, shifting the flow range by the lower bounds and
	//    folding the shifted-away flow into the supplies.
	supplyW := make([]int64, n)
	copy(supplyW, s.supply)
	for i := 0; i < m; i++ {
		s.srcW[i] = s.source[i]
		s.tgtW[i] = s.target[i]
		s.costW[i] = s.cost[i]
		s.flowW[i] = 0
		s.state[i] = stateLower
		if s.upper[i] == Unbounded {
			s.capW[i] = Unbounded
		} else {
			s.capW[i] = s.upper[i] - s.lower[i]
		}
		if lo := s.lower[i]; lo != 0 {
			supplyW[s.source[i]] -= lo
			supplyW[s.target[i]] += lo
		}
	}

	// 4) Artificial cost: strictly dominates the cost of any simple path of
	//    real arcs, so the optimum never keeps artificial flow it could
	//    route through the real network.
	var maxCost int64
	for i := 0; i < m; i++ {
		c := s.costW[i]
		if c < 0 {
			c = -c
		}
		if c > maxCost {
			maxCost = c
		}
	}
	art := (maxCost + 1) * int64(n)

	// 5) Root bookkeeping. The initial thread cycle is root,0,1,…,n-1.
	root := n
	s.root = root
	s.parent[root] = -1
	s.pred[root] = -1
	s.forward[root] = false
	s.thread[root] = 0
	s.revThread[0] = root
	s.depth[root] = 0
	s.succNum[root] = n + 1
	s.pi[root] = 0

	star := func(u int) {
		s.parent[u] = root
		s.thread[u] = u + 1 // u = n-1 closes the cycle back to the root
		s.revThread[u+1] = u
		s.depth[u] = 1
		s.succNum[u] = 1
	}

	f := m + n // next artificial arc slot in the inequality forms
	switch {
	case sumSupply == 0:
		// Equality form: one artificial tree arc per node, oriented by the
		// sign of its residual supply. Only the demand side carries the
		// penalty cost; flow conservation at the root prices every unit of
		// artificial circulation at art anyway.
		s.searchArcNum = m
		for u := 0; u < n; u++ {
			e := m + u
			star(u)
			s.pred[u] = e
			s.capW[e] = Unbounded
			s.state[e] = stateTree
			if supplyW[u] >= 0 {
				s.forward[u] = true
				s.pi[u] = 0
				s.srcW[e] = u
				s.tgtW[e] = root
				s.flowW[e] = supplyW[u]
				s.costW[e] = 0
			} else {
				s.forward[u] = false
				s.pi[u] = art
				s.srcW[e] = root
				s.tgtW[e] = u
				s.flowW[e] = -supplyW[u]
				s.costW[e] = art
			}
		}

	case sumSupply > 0:
		// LessOrEqual form: zero-cost slack arcs u→root let any node leave
		// part of its supply unused; demand nodes additionally hang on a
		// penalized artificial arc that must drain to zero.
		s.searchArcNum = m + n
		for u := 0; u < n; u++ {
			e := m + u
			star(u)
			if supplyW[u] >= 0 {
				s.forward[u] = true
				s.pi[u] = 0
				s.pred[u] = e
				s.srcW[e] = u
				s.tgtW[e] = root
				s.capW[e] = Unbounded
				s.flowW[e] = supplyW[u]
				s.costW[e] = 0
				s.state[e] = stateTree
			} else {
				s.forward[u] = false
				s.pi[u] = art
				s.pred[u] = f
				s.srcW[f] = root
				s.tgtW[f] = u
				s.capW[f] = Unbounded
				s.flowW[f] = -supplyW[u]
				s.costW[f] = art
				s.state[f] = stateTree
				f++
				s.srcW[e] = u
				s.tgtW[e] = root
				s.capW[e] = Unbounded
				s.flowW[e] = 0
				s.costW[e] = 0
				s.state[e] = stateLower
			}
		}

	default:
		// GreaterOrEqual form: mirrored — zero-cost slack arcs root→u let
		// any node absorb beyond its demand; supply nodes hang on the
		// penalized artificial arc.
		s.searchArcNum = m + n
		for u := 0; u < n; u++ {
			e := m + u
			star(u)
			if supplyW[u] <= 0 {
				s.forward[u] = false
				s.pi[u] = 0
				s.pred[u] = e
				s.srcW[e] = root
				s.tgtW[e] = u
				s.capW[e] = Unbounded
				s.flowW[e] = -supplyW[u]
				s.costW[e] = 0
				s.state[e] = stateTree
			} else {
				s.forward[u] = true
				s.pi[u] = -art
				s.pred[u] = f
				s.srcW[f] = u
				s.tgtW[f] = root
				s.capW[f] = Unbounded
				s.flowW[f] = supplyW[u]
				s.costW[f] = art
				s.state[f] = stateTree
				f++
				s.srcW[e] = root
				s.tgtW[e] = u
				s.capW[e] = Unbounded
				s.flowW[e] = 0
				s.costW[e] = 0
				s.state[e] = stateLower
			}
		}
	}
	s.allArcNum = f
	s.status = statusSearching

	return true
}
