// Package digraph provides the directed-graph abstraction consumed by the
// mcflow solvers, plus two concrete implementations and dense associative
// containers keyed by node/arc identifiers.
//
// # Design
//
// Nodes and arcs are identified by dense, stable integer ids (NodeID, ArcID)
// in the ranges [0, NodeNum()) and [0, ArcNum()). Dense ids let every consumer
// keep its per-node/per-arc data in flat slices instead of hash maps: lookups
// are index arithmetic, and algorithms that restructure internal state (such
// as the network simplex spanning tree) stay pure index bookkeeping with no
// reference cycles and no dangling pointers.
//
// The Digraph interface is a read-only capability set:
//
//	– Counting:   NodeNum, ArcNum
//	– Incidence:  Source(arc), Target(arc)
//	– Iteration:  FirstNode/NextNode, FirstArc/NextArc,
//	              FirstOut/NextOut, FirstIn/NextIn
//
// Iteration follows the first/next cursor style: First* returns the initial
// id (or the Invalid sentinel when the sequence is empty) and Next* advances,
// returning the Invalid sentinel past the end. Any type implementing the
// interface can be solved over; satisfaction is verified at compile time.
//
// # Implementations
//
//   - List — a growable adjacency-chain digraph built with AddNode/AddArc.
//     Out/in arc chains are per-node linked lists threaded through flat
//     slices, so iteration is allocation-free.
//   - Full — the complete digraph on n nodes with n² arithmetic arc ids
//     (id = src·n + tgt, loops included). It stores nothing per arc and
//     supports O(1) Arc(s,t) lookup.
//
// # Maps
//
// NodeValues[V] and ArcValues[V] are the read interfaces the solvers consume.
// NodeMap[V]/ArcMap[V] are dense slice-backed containers implementing them,
// and ConstNodeValues[V]/ConstArcValues[V] present a single value for every
// key (handy for unit costs or unbounded capacities).
//
// Concurrency: List and Full are safe for concurrent readers once built;
// mutation (AddNode/AddArc) must not race with readers.
package digraph
