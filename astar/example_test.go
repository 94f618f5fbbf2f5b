// Package astar_test provides runnable examples for FindPath.
package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridnav/astar"
	"github.com/katalvlaran/gridnav/gridgraph"
)

// ExampleFindPath routes around a short wall.
func ExampleFindPath() {
	m, err := gridgraph.Parse(`
		S#..
		.#..
		....
		...G`, gridgraph.TargetsBlock)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := astar.FindPath(m, m.Start(), m.Goal())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("found:", res.Found, "cost:", res.Cost)
	fmt.Println(res.Path)
	// Output:
	// found: true cost: 6
	// [(0,0) (1,0) (2,0) (3,0) (3,1) (3,2) (3,3)]
}

// ExampleFindPath_unreachable shows that a sealed goal is a result, not an error.
func ExampleFindPath_unreachable() {
	m, _ := gridgraph.Parse(`
		S.#
		.#G
		...`, gridgraph.TargetsBlock)
	m, _ = m.WithObstacles([]gridgraph.Cell{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 2}})

	res, err := astar.FindPath(m, m.Start(), m.Goal())
	fmt.Println("err:", err, "found:", res.Found)
	// Output: err: <nil> found: false
}
