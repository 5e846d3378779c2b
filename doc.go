// Package mcflow is a minimum-cost flow toolkit for Go: a network simplex
// solver on top of a tiny dense-id digraph layer.
//
// 🚀 What is mcflow?
//
//	A focused optimization library that brings together:
//		• digraph/ — dense-id directed graphs (adjacency-chain List, arithmetic
//		  Full), flat NodeMap/ArcMap containers and constant value maps
//		• simplex/ — the primal network simplex method with lower/upper arc
//		  bounds, node supplies, three balance relations (=, ≥, ≤) and five
//		  interchangeable pivot rules
//
// ✨ Why choose mcflow?
//
//   - Exact – pure int64 arithmetic, no tolerances; terminating runs carry
//     a complementary-slackness certificate
//   - Fast – flat index arenas throughout: the spanning tree, the pivot
//     cycle and the dual update are slice bookkeeping, never pointers
//   - Flexible – chainable configuration, equality and inequality supply
//     forms, generic wide-type cost totals via TotalCostAs
//
// Quick taste:
//
//	g := digraph.NewList(2, 1)
//	s, t := g.AddNode(), g.AddNode()
//	a, _ := g.AddArc(s, t)
//
//	mcf := simplex.New(g).
//		UpperMap(digraph.ConstArcValues[int64]{Value: 7}).
//		CostMap(digraph.ConstArcValues[int64]{Value: 3}).
//		STSupply(s, t, 5)
//	if mcf.Run() {
//		fmt.Println(mcf.Flow(a), mcf.TotalCost()) // 5 15
//	}
//
// Dive into the package docs of digraph and simplex for the full contract,
// and examples/ for a worked transportation scenario.
//
//	go get github.com/katalvlaran/mcflow
package mcflow
