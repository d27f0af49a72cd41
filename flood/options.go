// Package flood provides tunable options and error definitions
// for breadth-first distance propagation over a maze.Grid.
package flood

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/maze"
)

// Sentinel errors for Compute.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("flood: grid is nil")

	// ErrFinishOutOfBounds is returned when the finish cell lies outside the grid.
	ErrFinishOutOfBounds = errors.New("flood: finish cell out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("flood: invalid option supplied")
)

// Option configures Compute via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for Compute.
type Options struct {
	// OnVisit is called once per dequeued cell with its distance from finish.
	OnVisit func(c maze.Cell, dist int)

	// MaxDepth, if > 0, stops expanding beyond this distance; farther cells
	// keep maze.Unreachable. 0 means no limit.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with no hook and no depth limit.
func DefaultOptions() Options {
	return Options{
		OnVisit:  func(maze.Cell, int) {},
		MaxDepth: 0,
	}
}

// WithOnVisit registers a callback run for every reached cell, in BFS order.
func WithOnVisit(fn func(c maze.Cell, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits propagation to distance d (inclusive).
//
//	d > 0: limit to d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}
