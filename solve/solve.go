package solve

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/flood"
	"github.com/katalvlaran/lvmaze/maze"
)

// maxMoves bounds wall following: beyond this many moves some
// (cell, facing) state has repeated and the walk is cycling.
const maxMoves = 4 * maze.Area

// Trace runs strategy s on g. f is required for Descent and ignored by the
// wall followers, which may be given nil.
func Trace(g *maze.Grid, f *flood.Field, s Strategy) Path {
	switch s {
	case Descent:
		return descend(g, f)
	case LeftHand, RightHand:
		return follow(g, s)
	}
	panic(fmt.Sprintf("solve: unknown strategy %d", int(s)))
}

// Length returns the move count of Trace, or maze.Unreachable.
func Length(g *maze.Grid, f *flood.Field, s Strategy) int {
	return Trace(g, f, s).Length
}

// endpoints returns start and finish when both are set.
func endpoints(g *maze.Grid) (start, finish maze.Cell, ok bool) {
	start, okS := g.Start().Cell()
	finish, okF := g.Finish().Cell()
	return start, finish, okS && okF
}

func descend(g *maze.Grid, f *flood.Field) Path {
	if f == nil {
		panic("solve: descent needs a distance field")
	}
	if !f.Matches(g) {
		panic(fmt.Sprintf("solve: %dx%d field does not match %dx%d grid",
			f.Width(), f.Height(), g.Width(), g.Height()))
	}
	start, finish, ok := endpoints(g)
	if !ok {
		return failed()
	}

	cur := start
	cells := []maze.Cell{cur}
	for cur != finish {
		next, ok := downhill(g, f, cur)
		if !ok {
			return Path{Cells: cells, Length: maze.Unreachable}
		}
		cur = next
		cells = append(cells, cur)
	}
	return Path{Cells: cells, Length: len(cells) - 1}
}

// downhill returns the first open neighbour closer to finish than c.
func downhill(g *maze.Grid, f *flood.Field, c maze.Cell) (maze.Cell, bool) {
	here := f.At(c)
	for _, d := range maze.Directions {
		if !g.Open(c, d) {
			continue
		}
		n := g.Neighbour(c, d)
		if f.At(n) < here {
			return n, true
		}
	}
	return c, false
}

func follow(g *maze.Grid, hand Strategy) Path {
	start, finish, ok := endpoints(g)
	if !ok {
		return failed()
	}

	cur, facing := start, maze.North
	cells := []maze.Cell{cur}
	for cur != finish {
		if len(cells) > maxMoves {
			return Path{Cells: cells, Length: maze.Unreachable}
		}
		dir, ok := heading(g, cur, facing, hand)
		if !ok {
			return Path{Cells: cells, Length: maze.Unreachable}
		}
		next := g.Neighbour(cur, dir)
		if next == start {
			return Path{Cells: cells, Length: maze.Unreachable}
		}
		cur, facing = next, dir
		cells = append(cells, cur)
	}
	return Path{Cells: cells, Length: len(cells) - 1}
}

// heading picks the first open side among the hand's candidates.
func heading(g *maze.Grid, c maze.Cell, facing maze.Direction, hand Strategy) (maze.Direction, bool) {
	prefer, other := facing.TurnLeft(), facing.TurnRight()
	if hand == RightHand {
		prefer, other = other, prefer
	}
	for _, d := range [4]maze.Direction{prefer, facing, other, facing.Flip()} {
		if g.Open(c, d) {
			return d, true
		}
	}
	return facing, false
}
