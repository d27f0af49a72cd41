// Package solve defines the path-tracing strategies and their results.
package solve

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmaze/maze"
)

// Strategy selects how a path is traced from start to finish.
type Strategy int

const (
	// Descent walks downhill on the distance field.
	Descent Strategy = iota
	// LeftHand keeps the left hand on the wall.
	LeftHand
	// RightHand keeps the right hand on the wall.
	RightHand
)

// Strategies lists every strategy in display order.
var Strategies = [3]Strategy{Descent, LeftHand, RightHand}

func (s Strategy) String() string {
	switch s {
	case Descent:
		return "descent"
	case LeftHand:
		return "left"
	case RightHand:
		return "right"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy resolves a strategy name as printed by String.
// "flood" is accepted as an alias for descent.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "descent", "flood":
		return Descent, nil
	case "left", "lefthand", "left-hand":
		return LeftHand, nil
	case "right", "righthand", "right-hand":
		return RightHand, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Path is the outcome of one trace.
//
// Cells is the walked trail beginning at start; on failure it holds the
// cells visited before the walk gave up. Length is the number of moves, or
// maze.Unreachable if finish was not reached.
type Path struct {
	Cells  []maze.Cell
	Length int
}

// Solved reports whether the trace reached finish.
func (p Path) Solved() bool {
	return p.Length != maze.Unreachable
}

// failed is the result for a walk that could not start.
func failed() Path {
	return Path{Length: maze.Unreachable}
}
