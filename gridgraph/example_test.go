// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// ExampleParse builds a model from its ASCII form and queries it.
func ExampleParse() {
	m, err := gridgraph.Parse(`
		S.#
		.T.
		..G`, gridgraph.TargetsBlock)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("size:", m.Size())
	fmt.Println("obstacles:", m.Obstacles())
	fmt.Println("target blocks:", m.IsBlocked(gridgraph.Cell{Row: 1, Col: 1}))
	fmt.Println("reachable from start:", len(m.Reachable(m.Start())))
	fmt.Print(m)

	// Output:
	// size: 3
	// obstacles: [(0,2)]
	// target blocks: true
	// reachable from start: 7
	// S.#
	// .T.
	// ..G
}
