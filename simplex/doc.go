// Package simplex implements a minimum-cost flow solver based on the primal
// network simplex method over digraph.Digraph instances. Given per-arc lower
// and upper flow bounds, per-arc costs and per-node supply values, it finds a
// feasible flow of minimum total cost, or proves that no feasible flow exists.
//
// # Method
//
// The solver maintains a spanning-tree solution on an augmented network: an
// artificial root node plus one artificial arc per real node guarantee that an
// initial feasible tree always exists. Artificial arcs carry a cost dominating
// any combination of real arc costs, so they are driven out of the optimal
// basis whenever the instance is truly feasible. Each iteration then
//
//  1. asks a pivot strategy for a non-tree arc with a violating reduced cost
//     (negative at its lower bound, positive at its upper bound),
//  2. locates the unique cycle this arc closes in the tree by walking both
//     endpoints toward their common ancestor,
//  3. pushes the largest bound-respecting amount of flow around that cycle,
//  4. swaps the entering arc with the blocking (leaving) arc and repairs the
//     tree bookkeeping — parent/thread/depth/subtree-size links and node
//     potentials — in one pass over the relocated subtree.
//
// The run terminates when no violating arc remains. If at that point every
// artificial arc carries zero flow the solution is optimal (complementary
// slackness holds: every arc has zero reduced cost, or sits at the bound its
// reduced-cost sign demands); otherwise the instance is infeasible.
//
// Complexity:
//
//	– Time:  O(pivots · (n + scan)), where the per-iteration scan cost and the
//	   pivot count trade off against each other via the pivot rule; BlockSearch
//	   is the best all-round default.
//	– Space: O(n + m) flat arrays; the spanning tree is pure index bookkeeping
//	   (parent/thread/depth/size arenas), never pointers.
//
// # Configuration
//
// A Solver is bound to one digraph and configured through chainable setters
// that mutate and return the same instance:
//
//	s := simplex.New(g).
//		BoundMaps(lower, upper).
//		CostMap(cost).
//		SupplyMap(supply).
//		ProblemType(simplex.LessOrEqual)
//	if s.Run() {
//		fmt.Println(s.TotalCost())
//	}
//
// Unset configuration defaults to lower = 0, upper = Unbounded, cost = 0,
// supply = 0 and the Equal problem type; Reset restores these defaults while
// keeping the digraph binding. Setter calls copy values out of the supplied
// maps immediately, so the maps may be reused or modified afterwards.
//
// Problem types select the node balance relation of the flow (outgoing minus
// incoming against supply): Equal, GreaterOrEqual (alias CarrySupplies — every
// supply is fully carried, demands may stay under-served) and LessOrEqual
// (alias SatisfyDemands — demands bind, supplies may stay under-used).
//
// # Pivot rules
//
// Run accepts an optional pivot rule; all five converge to the same optimal
// total cost and differ only in iteration counts (and, on degenerate
// instances, in which of several optimal flows is returned):
//
//	FirstEligible — cyclic scan, first violating arc wins
//	BestEligible  — full scan, most violating arc wins
//	BlockSearch   — best violator of √m-sized blocks (default)
//	CandidateList — bounded list of violators, refilled on exhaustion
//	AlteringList  — candidate list with continuous replacement
//
// # Results
//
// On success, Flow/FlowMap expose the per-arc optimum (lower-bound shift
// undone), Potential/PotentialMap the dual values normalized so the artificial
// root sits at zero, and TotalCost/TotalCostAs the objective — the latter
// accumulated in any sufficiently wide numeric type chosen by the caller.
// A failed Run reports false and leaves the result accessors exactly as the
// previous successful Run (if any) left them; it never clears them.
//
// Precondition: lower[a] ≤ upper[a] for every arc. A violated precondition is
// not distinguished from ordinary infeasibility.
//
// A Solver is not safe for concurrent use; independent solvers over the same
// read-only digraph are.
package simplex
