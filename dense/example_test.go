// SPDX-License-Identifier: MIT

package dense_test

import (
	"fmt"

	"github.com/katalvlaran/radiomesh/dense"
)

// ExampleWeighted_KruskalMEST builds a square of radios with one diagonal
// and prints its minimum spanning tree.
//
//	0───1
//	│ ╲ │
//	3───2
func ExampleWeighted_KruskalMEST() {
	g, _ := dense.NewWeighted(4)
	link := func(a, b int, w float64) {
		_ = g.Connect(a, b, w)
		_ = g.Connect(b, a, w)
	}
	link(0, 1, 1)
	link(1, 2, 2)
	link(2, 3, 1)
	link(3, 0, 2)
	link(0, 2, 1.5)

	tree, total, err := g.KruskalMEST()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range tree {
		fmt.Printf("%d-%d %.2f\n", e.From, e.To, e.Weight)
	}
	fmt.Printf("total %.2f\n", total)
	// Output:
	// 0-1 1.00
	// 2-3 1.00
	// 0-2 1.50
	// total 3.50
}

// ExampleShortestPaths_Path reconstructs hop paths on a five-radio chain
// after projecting it to an unweighted graph.
func ExampleShortestPaths_Path() {
	g, _ := dense.NewWeighted(5)
	for i := 1; i < 5; i++ {
		_ = g.Connect(i-1, i, 1)
		_ = g.Connect(i, i-1, 1)
	}

	sp := g.Bifurcate().ShortestPathsFW()
	path, _ := sp.Path(0, 4)
	hops, _ := sp.Distance(0, 4)
	fmt.Println(path, hops)
	fmt.Println("diameter:", sp.Diameter())
	// Output:
	// [0 1 2 3 4] 4
	// diameter: 4
}

// ExampleUnweighted_EstimateChromaticNumber colors a 5-cycle, which needs three colors.
func ExampleUnweighted_EstimateChromaticNumber() {
	g, _ := dense.NewUnweighted(5)
	for i := 0; i < 5; i++ {
		_ = g.Connect(i, (i+1)%5)
		_ = g.Connect((i+1)%5, i)
	}
	fmt.Println(g.EstimateChromaticNumber())
	// Output: 3
}
