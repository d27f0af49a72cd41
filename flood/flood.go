// Package flood computes the distance field of a maze: for every cell, the
// number of moves through open sides needed to reach the finish cell.
//
// Distances are propagated breadth-first from the finish, scanning sides in
// the fixed order North, East, South, West. Cells the flood never reaches
// keep maze.Unreachable. The field is recomputed from scratch whenever the
// walls or the finish change; on a 16×16 grid that is at most 256 visits.
package flood

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/maze"
)

// Field is a snapshot of distances for one grid size. Distances are stored
// with the same slot addressing as the grid's walls.
type Field struct {
	dist          [maze.Area]int
	width, height int
}

// walker encapsulates mutable flood state.
type walker struct {
	grid  *maze.Grid
	opts  Options
	field *Field
	queue []maze.Cell
}

// Compute floods g from finish. If finish is unset every cell is
// maze.Unreachable.
// Returns ErrGridNil, ErrFinishOutOfBounds, or ErrOptionViolation.
func Compute(g *maze.Grid, finish maze.Endpoint, opts ...Option) (*Field, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	f := newField(g.Width(), g.Height())
	target, ok := finish.Cell()
	if !ok {
		return f, nil
	}
	if !g.InBounds(target) {
		return nil, fmt.Errorf("%w: %v", ErrFinishOutOfBounds, target)
	}

	w := &walker{
		grid:  g,
		opts:  o,
		field: f,
		queue: make([]maze.Cell, 0, g.Width()*g.Height()),
	}
	w.enqueue(target, 0)
	w.loop()

	return f, nil
}

// FromGrid floods g from its own finish marker.
func FromGrid(g *maze.Grid, opts ...Option) (*Field, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	return Compute(g, g.Finish(), opts...)
}

func newField(width, height int) *Field {
	f := &Field{width: width, height: height}
	for i := range f.dist {
		f.dist[i] = maze.Unreachable
	}
	return f
}

// enqueue records c at distance d and appends it to the queue.
func (w *walker) enqueue(c maze.Cell, d int) {
	w.field.dist[w.field.slot(c)] = d
	w.queue = append(w.queue, c)
}

// loop processes the queue until empty.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		c := w.queue[0]
		w.queue = w.queue[1:]
		d := w.field.dist[w.field.slot(c)]
		w.opts.OnVisit(c, d)

		if w.opts.MaxDepth > 0 && d+1 > w.opts.MaxDepth {
			continue
		}
		for _, dir := range maze.Directions {
			if !w.grid.Open(c, dir) {
				continue
			}
			n := w.grid.Neighbour(c, dir)
			if w.field.dist[w.field.slot(n)] == maze.Unreachable {
				w.enqueue(n, d+1)
			}
		}
	}
}

func (f *Field) slot(c maze.Cell) int {
	return c.X*maze.MaxHeight + (f.height - c.Y - 1)
}

// Width returns the grid width the field was computed for.
func (f *Field) Width() int { return f.width }

// Height returns the grid height the field was computed for.
func (f *Field) Height() int { return f.height }

// InBounds reports whether c lies within the field's rectangle.
func (f *Field) InBounds(c maze.Cell) bool {
	return c.X >= 0 && c.X < f.width && c.Y >= 0 && c.Y < f.height
}

// At returns the distance of c, or maze.Unreachable.
// Panics if c is outside the field.
func (f *Field) At(c maze.Cell) int {
	if !f.InBounds(c) {
		panic(fmt.Sprintf("flood: cell %v outside %dx%d field", c, f.width, f.height))
	}
	return f.dist[f.slot(c)]
}

// Reachable reports whether c has a finite distance.
func (f *Field) Reachable(c maze.Cell) bool {
	return f.At(c) != maze.Unreachable
}

// Slots returns a copy of the storage-addressed distances. Inactive slots
// hold maze.Unreachable.
func (f *Field) Slots() [maze.Area]int {
	return f.dist
}

// Max returns the largest finite distance, or -1 if nothing is reachable.
func (f *Field) Max() int {
	best := -1
	for _, d := range f.dist {
		if d != maze.Unreachable && d > best {
			best = d
		}
	}
	return best
}

// Matches reports whether f was computed for g's current size.
func (f *Field) Matches(g *maze.Grid) bool {
	return g != nil && f.width == g.Width() && f.height == g.Height()
}
