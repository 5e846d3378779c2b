package digraph

// Full is the complete digraph on n nodes: every ordered pair of nodes,
// loops included, is connected by exactly one arc. Nothing is stored per
// node or per arc — incidence is pure arithmetic over the arc id:
//
//	id(s→t) = s·n + t,  source(a) = a / n,  target(a) = a % n
//
// which also gives an O(1) Arc(s, t) lookup. Useful for dense assignment
// and transportation instances where listing arcs explicitly would waste
// memory.
type Full struct {
	nodeNum int
	arcNum  int // nodeNum * nodeNum
}

// NewFull returns the complete digraph on n nodes.
// ErrNegativeOrder is returned when n < 0.
func NewFull(n int) (*Full, error) {
	if n < 0 {
		return nil, ErrNegativeOrder
	}

	return &Full{nodeNum: n, arcNum: n * n}, nil
}

// Arc returns the id of the unique arc from s to t.
func (g *Full) Arc(s, t NodeID) ArcID { return ArcID(int(s)*g.nodeNum + int(t)) }

// NodeNum returns the number of nodes.
func (g *Full) NodeNum() int { return g.nodeNum }

// ArcNum returns the number of arcs (n²).
func (g *Full) ArcNum() int { return g.arcNum }

// Source returns the tail node of arc a.
func (g *Full) Source(a ArcID) NodeID { return NodeID(int(a) / g.nodeNum) }

// Target returns the head node of arc a.
func (g *Full) Target(a ArcID) NodeID { return NodeID(int(a) % g.nodeNum) }

// FirstNode returns node 0, or InvalidNode for the empty graph.
func (g *Full) FirstNode() NodeID {
	if g.nodeNum == 0 {
		return InvalidNode
	}

	return 0
}

// NextNode returns the node after n, or InvalidNode past the end.
func (g *Full) NextNode(n NodeID) NodeID {
	if int(n)+1 >= g.nodeNum {
		return InvalidNode
	}

	return n + 1
}

// FirstArc returns arc 0, or InvalidArc for the empty graph.
func (g *Full) FirstArc() ArcID {
	if g.arcNum == 0 {
		return InvalidArc
	}

	return 0
}

// NextArc returns the arc after a, or InvalidArc past the end.
func (g *Full) NextArc(a ArcID) ArcID {
	if int(a)+1 >= g.arcNum {
		return InvalidArc
	}

	return a + 1
}

// FirstOut returns the first arc leaving n; out-arcs are ordered by
// ascending target id.
func (g *Full) FirstOut(n NodeID) ArcID {
	if g.nodeNum == 0 {
		return InvalidArc
	}

	return ArcID(int(n) * g.nodeNum)
}

// NextOut returns the next arc leaving the same node, or InvalidArc after
// the arc toward the last node.
func (g *Full) NextOut(a ArcID) ArcID {
	if (int(a)+1)%g.nodeNum == 0 {
		return InvalidArc
	}

	return a + 1
}

// FirstIn returns the first arc entering n (ordered by ascending source id).
func (g *Full) FirstIn(n NodeID) ArcID {
	if g.nodeNum == 0 {
		return InvalidArc
	}

	return ArcID(n)
}

// NextIn returns the next arc entering the same node, or InvalidArc after
// the arc from the last node.
func (g *Full) NextIn(a ArcID) ArcID {
	next := int(a) + g.nodeNum
	if next >= g.arcNum {
		return InvalidArc
	}

	return ArcID(next)
}

// Compile-time interface satisfaction check.
var _ Digraph = (*Full)(nil)
