package digraph

// List is a growable directed graph with adjacency chains threaded through
// flat slices, in the manner of linked-list digraph representations: every
// node keeps the id of its first outgoing and first incoming arc, and every
// arc keeps the id of the next arc sharing its source / its target.
//
// Construction is append-only: AddNode and AddArc hand out the next dense id
// and never invalidate previously returned ids. There is no removal; the
// solvers treat the structure as frozen once handed over.
//
// The zero value is an empty, ready-to-use digraph.
type List struct {
	firstOut []ArcID // firstOut[n]: head of n's out-arc chain, InvalidArc if none
	firstIn  []ArcID // firstIn[n]:  head of n's in-arc chain, InvalidArc if none

	source  []NodeID // source[a]: tail of arc a
	target  []NodeID // target[a]: head of arc a
	nextOut []ArcID  // nextOut[a]: next arc with the same source
	nextIn  []ArcID  // nextIn[a]:  next arc with the same target
}

// NewList returns an empty digraph with capacity hints for nodes and arcs.
func NewList(nodeHint, arcHint int) *List {
	return &List{
		firstOut: make([]ArcID, 0, nodeHint),
		firstIn:  make([]ArcID, 0, nodeHint),
		source:   make([]NodeID, 0, arcHint),
		target:   make([]NodeID, 0, arcHint),
		nextOut:  make([]ArcID, 0, arcHint),
		nextIn:   make([]ArcID, 0, arcHint),
	}
}

// AddNode appends a new isolated node and returns its id.
func (g *List) AddNode() NodeID {
	n := NodeID(len(g.firstOut))
	g.firstOut = append(g.firstOut, InvalidArc)
	g.firstIn = append(g.firstIn, InvalidArc)

	return n
}

// AddNodes appends count new nodes and returns the id of the first one.
// Ids are contiguous: first, first+1, …, first+count-1.
func (g *List) AddNodes(count int) NodeID {
	first := NodeID(len(g.firstOut))
	for i := 0; i < count; i++ {
		g.AddNode()
	}

	return first
}

// AddArc appends a directed arc from src to tgt and returns its id.
// Both endpoints must already exist; otherwise ErrNodeNotFound is returned.
// Parallel arcs and self-loops are permitted.
func (g *List) AddArc(src, tgt NodeID) (ArcID, error) {
	if src < 0 || int(src) >= len(g.firstOut) || tgt < 0 || int(tgt) >= len(g.firstOut) {
		return InvalidArc, ErrNodeNotFound
	}

	a := ArcID(len(g.source))
	g.source = append(g.source, src)
	g.target = append(g.target, tgt)

	// Prepend to both adjacency chains; order within a chain is LIFO.
	g.nextOut = append(g.nextOut, g.firstOut[src])
	g.firstOut[src] = a
	g.nextIn = append(g.nextIn, g.firstIn[tgt])
	g.firstIn[tgt] = a

	return a, nil
}

// NodeNum returns the number of nodes.
func (g *List) NodeNum() int { return len(g.firstOut) }

// ArcNum returns the number of arcs.
func (g *List) ArcNum() int { return len(g.source) }

// Source returns the tail node of arc a.
func (g *List) Source(a ArcID) NodeID { return g.source[a] }

// Target returns the head node of arc a.
func (g *List) Target(a ArcID) NodeID { return g.target[a] }

// FirstNode returns node 0, or InvalidNode for an empty graph.
func (g *List) FirstNode() NodeID {
	if len(g.firstOut) == 0 {
		return InvalidNode
	}

	return 0
}

// NextNode returns the node after n, or InvalidNode past the end.
func (g *List) NextNode(n NodeID) NodeID {
	if int(n)+1 >= len(g.firstOut) {
		return InvalidNode
	}

	return n + 1
}

// FirstArc returns arc 0, or InvalidArc for an arcless graph.
func (g *List) FirstArc() ArcID {
	if len(g.source) == 0 {
		return InvalidArc
	}

	return 0
}

// NextArc returns the arc after a, or InvalidArc past the end.
func (g *List) NextArc(a ArcID) ArcID {
	if int(a)+1 >= len(g.source) {
		return InvalidArc
	}

	return a + 1
}

// FirstOut returns the head of n's out-arc chain.
func (g *List) FirstOut(n NodeID) ArcID { return g.firstOut[n] }

// NextOut returns the next arc sharing a's source.
func (g *List) NextOut(a ArcID) ArcID { return g.nextOut[a] }

// FirstIn returns the head of n's in-arc chain.
func (g *List) FirstIn(n NodeID) ArcID { return g.firstIn[n] }

// NextIn returns the next arc sharing a's target.
func (g *List) NextIn(a ArcID) ArcID { return g.nextIn[a] }

// Compile-time interface satisfaction check.
var _ Digraph = (*List)(nil)
