package digraph

// NodeMap is a dense association from NodeID to V, backed by a flat slice
// sized to the graph it was created for. Reading an id that was never Set
// yields the zero value of V.
type NodeMap[V any] struct {
	data []V
}

// NewNodeMap returns a NodeMap covering every node of g, filled with the
// zero value of V.
func NewNodeMap[V any](g Digraph) *NodeMap[V] {
	return &NodeMap[V]{data: make([]V, g.NodeNum())}
}

// Get returns the value stored for node n.
func (m *NodeMap[V]) Get(n NodeID) V { return m.data[n] }

// Set stores v for node n.
func (m *NodeMap[V]) Set(n NodeID, v V) { m.data[n] = v }

// Len returns the number of keys covered by the map.
func (m *NodeMap[V]) Len() int { return len(m.data) }

// ArcMap is a dense association from ArcID to V, backed by a flat slice
// sized to the graph it was created for.
type ArcMap[V any] struct {
	data []V
}

// NewArcMap returns an ArcMap covering every arc of g, filled with the
// zero value of V.
func NewArcMap[V any](g Digraph) *ArcMap[V] {
	return &ArcMap[V]{data: make([]V, g.ArcNum())}
}

// Get returns the value stored for arc a.
func (m *ArcMap[V]) Get(a ArcID) V { return m.data[a] }

// Set stores v for arc a.
func (m *ArcMap[V]) Set(a ArcID, v V) { m.data[a] = v }

// Len returns the number of keys covered by the map.
func (m *ArcMap[V]) Len() int { return len(m.data) }

// ConstNodeValues presents the same value for every node.
type ConstNodeValues[V any] struct {
	// Value is returned for every key.
	Value V
}

// Get returns the constant value regardless of n.
func (c ConstNodeValues[V]) Get(NodeID) V { return c.Value }

// ConstArcValues presents the same value for every arc, e.g. unit costs or
// unbounded capacities.
type ConstArcValues[V any] struct {
	// Value is returned for every key.
	Value V
}

// Get returns the constant value regardless of a.
func (c ConstArcValues[V]) Get(ArcID) V { return c.Value }

// Compile-time interface satisfaction checks.
var (
	_ NodeValues[int64] = (*NodeMap[int64])(nil)
	_ ArcValues[int64]  = (*ArcMap[int64])(nil)
	_ NodeValues[int64] = ConstNodeValues[int64]{}
	_ ArcValues[int64]  = ConstArcValues[int64]{}
)
