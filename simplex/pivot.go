package simplex

// This file is the simplex iteration itself: the main loop, the cycle and
// leaving-arc computation, the flow push, and the spanning-tree repair that
// follows a basis exchange. All of it works on the dense index arenas built
// by init; nodes and arcs are plain ints here.

// pivotLoop runs entering-arc searches until the strategy proves optimality,
// then verifies that no artificial arc still carries flow. It reports false
// for an infeasible instance and for an objective unbounded below (a cycle
// of violating arcs with no finite residual).
func (s *Solver) pivotLoop(rule PivotRule) bool {
	strategy := s.newStrategy(rule)
	for strategy.findEnteringArc() {
		s.findJoinNode()
		change := s.findLeavingArc()
		if s.delta == Unbounded {
			return false
		}
		s.changeFlow(change)
		if change {
			s.rewireTree()
			s.shiftPotentials()
		}
	}

	// Complementary slackness holds now; feasibility is decided by the
	// artificial arcs alone.
	for e := s.searchArcNum; e < s.allArcNum; e++ {
		if s.flowW[e] != 0 {
			return false
		}
	}

	return true
}

// violation is the signed entering test: state · reducedCost. Tree arcs
// yield 0; a negative value means the arc improves the objective when moved
// off its bound.
func (s *Solver) violation(e int) int64 {
	return int64(s.state[e]) * (s.costW[e] + s.pi[s.srcW[e]] - s.pi[s.tgtW[e]])
}

// residual returns how much more flow arc e can carry forward.
func (s *Solver) residual(e int) int64 {
	if s.capW[e] == Unbounded {
		return Unbounded
	}

	return s.capW[e] - s.flowW[e]
}

// findJoinNode walks both endpoints of the entering arc toward the root,
// equalizing depths first, and stores their lowest common ancestor: the apex
// of the pivot cycle.
func (s *Solver) findJoinNode() {
	u, v := s.srcW[s.inArc], s.tgtW[s.inArc]
	for s.depth[u] > s.depth[v] {
		u = s.parent[u]
	}
	for s.depth[v] > s.depth[u] {
		v = s.parent[v]
	}
	for u != v {
		u = s.parent[u]
		v = s.parent[v]
	}
	s.join = u
}

// findLeavingArc scans the pivot cycle for its tightest residual in the
// direction the cycle must move, filling delta, uOut (the child endpoint of
// the leaving arc) and the uIn/vIn attachment pair. It reports whether a
// tree arc leaves the basis; when false the entering arc blocks itself and
// merely jumps to its other bound.
//
// The cycle is oriented along the entering arc's flow change. The first leg
// (from the node the cycle leaves toward the apex) breaks residual ties
// strictly, the second leg loosely, a fixed deterministic preference that
// avoids cycling between equal bottlenecks.
func (s *Solver) findLeavingArc() bool {
	var first, second int
	if s.state[s.inArc] == stateLower {
		first, second = s.srcW[s.inArc], s.tgtW[s.inArc]
	} else {
		first, second = s.tgtW[s.inArc], s.srcW[s.inArc]
	}
	s.delta = s.capW[s.inArc]

	found := 0
	var d int64
	for u := first; u != s.join; u = s.parent[u] {
		e := s.pred[u]
		if s.forward[u] {
			d = s.flowW[e]
		} else {
			d = s.residual(e)
		}
		if d < s.delta {
			s.delta = d
			s.uOut = u
			found = 1
		}
	}
	for u := second; u != s.join; u = s.parent[u] {
		e := s.pred[u]
		if s.forward[u] {
			d = s.residual(e)
		} else {
			d = s.flowW[e]
		}
		if d <= s.delta {
			s.delta = d
			s.uOut = u
			found = 2
		}
	}

	if found == 1 {
		s.uIn, s.vIn = first, second
	} else {
		s.uIn, s.vIn = second, first
	}

	return found != 0
}

// changeFlow pushes delta units around the pivot cycle and retags the
// entering and leaving arcs. With change == false the entering arc simply
// switches bounds.
func (s *Solver) changeFlow(change bool) {
	if s.delta > 0 {
		val := int64(s.state[s.inArc]) * s.delta
		s.flowW[s.inArc] += val
		for u := s.srcW[s.inArc]; u != s.join; u = s.parent[u] {
			if s.forward[u] {
				s.flowW[s.pred[u]] -= val
			} else {
				s.flowW[s.pred[u]] += val
			}
		}
		for u := s.tgtW[s.inArc]; u != s.join; u = s.parent[u] {
			if s.forward[u] {
				s.flowW[s.pred[u]] += val
			} else {
				s.flowW[s.pred[u]] -= val
			}
		}
	}

	if change {
		s.state[s.inArc] = stateTree
		out := s.pred[s.uOut]
		if s.flowW[out] == 0 {
			s.state[out] = stateLower
		} else {
			s.state[out] = stateUpper
		}
	} else {
		s.state[s.inArc] = -s.state[s.inArc]
	}
}

// rewireTree detaches the subtree rooted at uOut (the leaving arc's child
// side), re-roots it at uIn, and reattaches it under vIn via the entering
// arc. thread/depth/subtree-size bookkeeping is repaired in one pass over
// the relocated subtree; nothing outside it is touched beyond the two
// ancestor paths of the old and new attachment points.
func (s *Solver) rewireTree() {
	uOut, uIn, vIn := s.uOut, s.uIn, s.vIn
	vOut := s.parent[uOut]
	size := s.succNum[uOut]

	// 1) Enumerate the moving subtree: it occupies size consecutive thread
	//    slots starting at uOut.
	sub := s.subBuf[:0]
	v := uOut
	for i := 0; i < size; i++ {
		sub = append(sub, v)
		v = s.thread[v]
	}
	after := v

	// 2) Splice the block out of the thread cycle.
	before := s.revThread[uOut]
	s.thread[before] = after
	s.revThread[after] = before

	// 3) Reverse the stem path uIn → uOut: every stem node adopts its old
	//    parent as a child; uIn hangs below vIn via the entering arc.
	u := uIn
	newPar, newPred := vIn, s.inArc
	for {
		oldPar, oldPred := s.parent[u], s.pred[u]
		s.parent[u] = newPar
		s.pred[u] = newPred
		if u == uOut {
			break
		}
		newPar, newPred = u, oldPred
		u = oldPar
	}

	// 4) Children lists for the subtree, threaded through flat arrays.
	for _, w := range sub {
		s.childHead[w] = -1
	}
	for _, w := range sub {
		if w == uIn {
			continue
		}
		p := s.parent[w]
		s.childNext[w] = s.childHead[p]
		s.childHead[p] = w
	}

	// 5) Preorder walk from the new subtree root: fresh depth values and
	//    the new thread order of the block.
	order := s.orderBuf[:0]
	stack := append(s.stackBuf[:0], uIn)
	s.depth[uIn] = s.depth[vIn] + 1
	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if w != uIn {
			s.depth[w] = s.depth[s.parent[w]] + 1
		}
		order = append(order, w)
		for c := s.childHead[w]; c != -1; c = s.childNext[c] {
			stack = append(stack, c)
		}
	}

	// 6) Subtree sizes, bottom-up over the fresh preorder.
	for _, w := range order {
		s.succNum[w] = 1
	}
	for i := len(order) - 1; i > 0; i-- {
		w := order[i]
		s.succNum[s.parent[w]] += s.succNum[w]
	}

	// 7) Splice the re-rooted block back in right behind vIn; every proper
	//    ancestor's block stays contiguous, so the preorder invariant of
	//    the whole tree is preserved.
	next := s.thread[vIn]
	s.thread[vIn] = uIn
	s.revThread[uIn] = vIn
	for i := 0; i+1 < len(order); i++ {
		s.thread[order[i]] = order[i+1]
		s.revThread[order[i+1]] = order[i]
	}
	last := order[len(order)-1]
	s.thread[last] = next
	s.revThread[next] = last

	// 8) Direction flags of the relocated nodes, then subtree sizes along
	//    both old ancestor paths up to the apex.
	for _, w := range order {
		s.forward[w] = s.srcW[s.pred[w]] == w
	}
	for w := vIn; w != s.join; w = s.parent[w] {
		s.succNum[w] += size
	}
	for w := vOut; w != s.join; w = s.parent[w] {
		s.succNum[w] -= size
	}

	s.subBuf = sub[:0]
	s.orderBuf = order[:0]
	s.stackBuf = stack[:0]
}

// shiftPotentials restores zero reduced cost on the entering arc by adding
// one constant to every potential in the relocated subtree. Arcs inside the
// subtree kept both endpoints, so the uniform shift leaves them tight; arcs
// outside it are untouched.
func (s *Solver) shiftPotentials() {
	var sigma int64
	e := s.pred[s.uIn]
	if s.forward[s.uIn] {
		sigma = s.pi[s.vIn] - s.pi[s.uIn] - s.costW[e]
	} else {
		sigma = s.pi[s.vIn] - s.pi[s.uIn] + s.costW[e]
	}

	u := s.uIn
	for i := 0; i < s.succNum[s.uIn]; i++ {
		s.pi[u] += sigma
		u = s.thread[u]
	}
}
