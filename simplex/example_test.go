package simplex_test

import (
	"fmt"

	"github.com/katalvlaran/mcflow/digraph"
	"github.com/katalvlaran/mcflow/simplex"
)

// ExampleSolver demonstrates a tiny transshipment problem: a factory ships
// 10 units to a customer either directly (expensive) or through a depot
// (cheap but capacitated).
//
// Network:
//
//	factory ──(cost 4)──────────────▶ customer
//	factory ──(cost 1)─▶ depot ──(cost 1, cap 6)─▶ customer
func ExampleSolver() {
	g := digraph.NewList(3, 3)
	factory := g.AddNode()
	depot := g.AddNode()
	customer := g.AddNode()

	direct, _ := g.AddArc(factory, customer)
	inbound, _ := g.AddArc(factory, depot)
	outbound, _ := g.AddArc(depot, customer)

	cost := digraph.NewArcMap[int64](g)
	cost.Set(direct, 4)
	cost.Set(inbound, 1)
	cost.Set(outbound, 1)

	upper := digraph.NewArcMap[int64](g)
	upper.Set(direct, simplex.Unbounded)
	upper.Set(inbound, simplex.Unbounded)
	upper.Set(outbound, 6)

	mcf := simplex.New(g).CostMap(cost).UpperMap(upper).STSupply(factory, customer, 10)
	if mcf.Run() {
		fmt.Println("total:", mcf.TotalCost())
		fmt.Println("direct:", mcf.Flow(direct), "via depot:", mcf.Flow(outbound))
	}
	// Output:
	// total: 28
	// direct: 4 via depot: 6
}

// ExampleSolver_problemType shows the less-or-equal form: total supply
// exceeds total demand, and the surplus simply stays at the source.
func ExampleSolver_problemType() {
	g := digraph.NewList(2, 1)
	src := g.AddNode()
	dst := g.AddNode()
	arc, _ := g.AddArc(src, dst)

	supply := digraph.NewNodeMap[int64](g)
	supply.Set(src, 9)
	supply.Set(dst, -5)

	mcf := simplex.New(g).
		CostMap(digraph.ConstArcValues[int64]{Value: 2}).
		SupplyMap(supply).
		ProblemType(simplex.SatisfyDemands)
	fmt.Println(mcf.Run(), mcf.Flow(arc), mcf.TotalCost())
	// Output:
	// true 5 10
}
