package maze

import "fmt"

// Grid is the single source of truth for wall topology and the start/finish
// markers. It is not safe for concurrent use; one editing session owns it.
//
// walls is always sized for the full 16×16 area. width and height select the
// active rectangle; data outside it is kept untouched across resizes.
type Grid struct {
	walls         [Area]WallMask
	width, height int
	start, finish Endpoint
}

// New returns a reset width×height grid with start at the bottom-left cell
// and finish at the top-right cell.
// Returns ErrBadSize if either dimension is outside [1,16].
func New(width, height int) (*Grid, error) {
	if width < 1 || width > MaxWidth || height < 1 || height > MaxHeight {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadSize, width, height)
	}
	g := &Grid{width: width, height: height}
	g.Reset()
	g.defaultEndpoints()

	return g, nil
}

// defaultEndpoints places start bottom-left and finish top-right.
func (g *Grid) defaultEndpoints() {
	g.start = EndpointAt(Cell{X: 0, Y: g.height - 1})
	g.finish = EndpointAt(Cell{X: g.width - 1, Y: 0})
}

// Width returns the number of active columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of active rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within the active rectangle.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Slot maps c to its storage index: X*16 + (Height-Y-1).
// Panics if c is out of bounds.
func (g *Grid) Slot(c Cell) int {
	g.mustInBounds(c)
	return g.slot(c)
}

func (g *Grid) slot(c Cell) int {
	return c.X*MaxHeight + (g.height - c.Y - 1)
}

func (g *Grid) mustInBounds(c Cell) {
	if !g.InBounds(c) {
		panic(fmt.Sprintf(panicOutOfBounds, c, g.width, g.height))
	}
}

// WallsAt returns the wall mask of c. Panics if c is out of bounds.
func (g *Grid) WallsAt(c Cell) WallMask {
	g.mustInBounds(c)
	return g.walls[g.slot(c)]
}

// HasWall reports whether side d of c is closed.
func (g *Grid) HasWall(c Cell, d Direction) bool {
	mustValid(d)
	return g.WallsAt(c).Has(d)
}

// NeighbourInBounds reports whether stepping once from c toward d stays
// inside the active rectangle.
func (g *Grid) NeighbourInBounds(c Cell, d Direction) bool {
	switch d {
	case North:
		return c.Y > 0
	case East:
		return c.X < g.width-1
	case South:
		return c.Y < g.height-1
	case West:
		return c.X > 0
	}
	panic(fmt.Sprintf(panicBadDirection, uint8(d)))
}

// Neighbour returns the cell one step from c toward d.
// Callers must check NeighbourInBounds first; Neighbour panics otherwise.
func (g *Grid) Neighbour(c Cell, d Direction) Cell {
	if !g.NeighbourInBounds(c, d) {
		panic(fmt.Sprintf(panicNoNeighbour, c, d))
	}
	dx, dy := d.offset()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Open reports whether a move from c toward d is possible: the side is not
// walled and the neighbour exists.
func (g *Grid) Open(c Cell, d Direction) bool {
	return !g.HasWall(c, d) && g.NeighbourInBounds(c, d)
}

// SetWall closes side d of c and the facing side of its neighbour, if any.
func (g *Grid) SetWall(c Cell, d Direction) {
	mustValid(d)
	g.mustInBounds(c)
	g.walls[g.slot(c)] |= WallMask(d)
	if g.NeighbourInBounds(c, d) {
		g.walls[g.slot(g.Neighbour(c, d))] |= WallMask(d.Flip())
	}
}

// ClearWall opens side d of c and the facing side of its neighbour, if any.
func (g *Grid) ClearWall(c Cell, d Direction) {
	mustValid(d)
	g.mustInBounds(c)
	g.walls[g.slot(c)] &^= WallMask(d)
	if g.NeighbourInBounds(c, d) {
		g.walls[g.slot(g.Neighbour(c, d))] &^= WallMask(d.Flip())
	}
}

// ToggleWall flips side d of c reciprocally and reports whether it is now closed.
func (g *Grid) ToggleWall(c Cell, d Direction) bool {
	if g.HasWall(c, d) {
		g.ClearWall(c, d)
		return false
	}
	g.SetWall(c, d)
	return true
}

// borderMask returns the sides of c that face outside the active rectangle.
func (g *Grid) borderMask(c Cell) WallMask {
	var m WallMask
	if c.X == 0 {
		m |= WallMask(West)
	}
	if c.Y == 0 {
		m |= WallMask(North)
	}
	if c.X == g.width-1 {
		m |= WallMask(East)
	}
	if c.Y == g.height-1 {
		m |= WallMask(South)
	}
	return m
}

// Reset closes the outer boundary and opens every interior side.
// Start and finish are left as they are.
func (g *Grid) Reset() {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			c := Cell{X: x, Y: y}
			g.walls[g.slot(c)] = g.borderMask(c)
		}
	}
}

// Resize changes the active rectangle, clamping each dimension to [1,16].
// Storage is not reallocated and slots outside the new rectangle are not
// touched. Inside it, any side closed on only one of two adjacent cells is
// closed on both. Start and finish are clamped into the new bounds.
func (g *Grid) Resize(width, height int) {
	g.width = clamp(width, 1, MaxWidth)
	g.height = clamp(height, 1, MaxHeight)
	g.start = g.clampEndpoint(g.start)
	g.finish = g.clampEndpoint(g.finish)
	g.reconcile()
}

// reconcile restores reciprocity inside the active rectangle, favouring walls.
func (g *Grid) reconcile() {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			c := Cell{X: x, Y: y}
			// East and South own every interior side once.
			for _, d := range [2]Direction{East, South} {
				if !g.NeighbourInBounds(c, d) {
					continue
				}
				n := g.Neighbour(c, d)
				if g.walls[g.slot(c)].Has(d) || g.walls[g.slot(n)].Has(d.Flip()) {
					g.walls[g.slot(c)] |= WallMask(d)
					g.walls[g.slot(n)] |= WallMask(d.Flip())
				}
			}
		}
	}
}

func (g *Grid) clampEndpoint(e Endpoint) Endpoint {
	c, ok := e.Cell()
	if !ok {
		return e
	}
	c.X = clamp(c.X, 0, g.width-1)
	c.Y = clamp(c.Y, 0, g.height-1)
	return EndpointAt(c)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Start returns the start marker.
func (g *Grid) Start() Endpoint { return g.start }

// Finish returns the finish marker.
func (g *Grid) Finish() Endpoint { return g.finish }

// SetStart marks c as the start cell. Panics if c is out of bounds.
func (g *Grid) SetStart(c Cell) {
	g.mustInBounds(c)
	g.start = EndpointAt(c)
}

// SetFinish marks c as the finish cell. Panics if c is out of bounds.
func (g *Grid) SetFinish(c Cell) {
	g.mustInBounds(c)
	g.finish = EndpointAt(c)
}

// ClearStart unsets the start marker.
func (g *Grid) ClearStart() { g.start = NoEndpoint }

// ClearFinish unsets the finish marker.
func (g *Grid) ClearFinish() { g.finish = NoEndpoint }

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	cp := *g
	return &cp
}
