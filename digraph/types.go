package digraph

import "errors"

// NodeID is a dense, stable node identifier in [0, NodeNum()).
type NodeID int

// ArcID is a dense, stable arc identifier in [0, ArcNum()).
type ArcID int

// InvalidNode is the sentinel returned by node iteration past the end.
const InvalidNode NodeID = -1

// InvalidArc is the sentinel returned by arc iteration past the end.
const InvalidArc ArcID = -1

// Sentinel errors reported by digraph constructors and mutators.
var (
	// ErrNodeNotFound indicates an arc endpoint that does not exist in the graph.
	ErrNodeNotFound = errors.New("digraph: node not found")
	// ErrNegativeOrder indicates a negative node count for a Full digraph.
	ErrNegativeOrder = errors.New("digraph: node count must be non-negative")
)

// Digraph is the read-only capability set required by the mcflow solvers:
// dense integer identity, incidence lookup and forward first/next iteration
// over nodes, arcs, and the out-/in-arc lists of a node.
//
// Implementations must keep ids stable: once an id is handed out it always
// refers to the same node or arc. No mutation capability is part of the
// contract; a Digraph must stay structurally unchanged while a solver that
// snapshot-ed it is alive.
type Digraph interface {
	// NodeNum returns the number of nodes.
	NodeNum() int
	// ArcNum returns the number of arcs.
	ArcNum() int

	// Source returns the tail node of arc a.
	Source(a ArcID) NodeID
	// Target returns the head node of arc a.
	Target(a ArcID) NodeID

	// FirstNode returns the first node id, or InvalidNode when empty.
	FirstNode() NodeID
	// NextNode returns the node after n, or InvalidNode past the end.
	NextNode(n NodeID) NodeID

	// FirstArc returns the first arc id, or InvalidArc when empty.
	FirstArc() ArcID
	// NextArc returns the arc after a, or InvalidArc past the end.
	NextArc(a ArcID) ArcID

	// FirstOut returns the first arc leaving n, or InvalidArc if none.
	FirstOut(n NodeID) ArcID
	// NextOut returns the next arc with the same source, or InvalidArc.
	NextOut(a ArcID) ArcID

	// FirstIn returns the first arc entering n, or InvalidArc if none.
	FirstIn(n NodeID) ArcID
	// NextIn returns the next arc with the same target, or InvalidArc.
	NextIn(a ArcID) ArcID
}

// NodeValues is a read-only association from node id to a value of type V.
type NodeValues[V any] interface {
	// Get returns the value associated with node n.
	Get(n NodeID) V
}

// ArcValues is a read-only association from arc id to a value of type V.
type ArcValues[V any] interface {
	// Get returns the value associated with arc a.
	Get(a ArcID) V
}
