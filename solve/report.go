package solve

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/flood"
	"github.com/katalvlaran/lvmaze/maze"
)

// Report gathers the figures an editor shows after every change.
// Path lengths are maze.Unreachable when there is no path.
type Report struct {
	Walls   int
	Columns int
	Regions int

	// Shortest is the distance of start from finish.
	Shortest  int
	Descent   int
	LeftHand  int
	RightHand int
}

// Analyze recomputes the distance field and every strategy for g.
// Returns ErrGridNil for a nil grid.
func Analyze(g *maze.Grid) (Report, *flood.Field, error) {
	if g == nil {
		return Report{}, nil, ErrGridNil
	}
	f, err := flood.FromGrid(g)
	if err != nil {
		return Report{}, nil, fmt.Errorf("solve: distance field: %w", err)
	}

	r := Report{
		Walls:     g.CountWalls(),
		Columns:   g.CountColumns(),
		Regions:   len(g.Regions()),
		Shortest:  maze.Unreachable,
		Descent:   Length(g, f, Descent),
		LeftHand:  Length(g, f, LeftHand),
		RightHand: Length(g, f, RightHand),
	}
	if start, ok := g.Start().Cell(); ok {
		r.Shortest = f.At(start)
	}
	return r, f, nil
}
