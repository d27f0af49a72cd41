package solve_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/flood"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/solve"
)

// ExampleTrace compares the three strategies in a 3×3 room with a wall
// jutting in from the west.
func ExampleTrace() {
	g, _ := maze.New(3, 3)
	g.SetWall(maze.Cell{X: 0, Y: 1}, maze.South)
	g.SetWall(maze.Cell{X: 1, Y: 1}, maze.South)

	f, _ := flood.FromGrid(g)
	for _, s := range solve.Strategies {
		p := solve.Trace(g, f, s)
		fmt.Printf("%-7s %d %v\n", s, p.Length, p.Cells)
	}

	// Output:
	// descent 4 [(0,2) (1,2) (2,2) (2,1) (2,0)]
	// left    8 [(0,2) (1,2) (2,2) (2,1) (1,1) (0,1) (0,0) (1,0) (2,0)]
	// right   4 [(0,2) (1,2) (2,2) (2,1) (2,0)]
}
