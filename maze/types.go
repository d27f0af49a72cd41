// Package maze defines core types, constants, and sentinel errors
// for the maze subpackage of github.com/katalvlaran/lvmaze.
package maze

import (
	"fmt"
	"strings"
)

// Grid limits. The backing store is always Area slots regardless of the
// active size.
const (
	MaxWidth  = 16
	MaxHeight = 16
	Area      = MaxWidth * MaxHeight
	// Unreachable is the sentinel distance and path length meaning
	// "no open path" or "not computed".
	Unreachable = Area + 1
)

// Direction names one side of a cell. The bit values double as WallMask bits
// and form the clockwise cycle North → East → South → West → North.
type Direction uint8

const (
	North Direction = 1 << iota
	East
	South
	West
)

// Directions is the fixed scan order used by every traversal.
var Directions = [4]Direction{North, East, South, West}

// Valid reports whether d is exactly one of the four sides.
func (d Direction) Valid() bool {
	switch d {
	case North, East, South, West:
		return true
	}
	return false
}

// Flip returns the opposite side: North↔South, East↔West.
func (d Direction) Flip() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	}
	panic(fmt.Sprintf(panicBadDirection, uint8(d)))
}

// TurnRight rotates d clockwise.
func (d Direction) TurnRight() Direction {
	mustValid(d)
	if d == West {
		return North
	}
	return d << 1
}

// TurnLeft rotates d counter-clockwise. It is the inverse of TurnRight.
func (d Direction) TurnLeft() Direction {
	mustValid(d)
	if d == North {
		return West
	}
	return d >> 1
}

// offset is the geometric step for d.
func (d Direction) offset() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	panic(fmt.Sprintf(panicBadDirection, uint8(d)))
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

func mustValid(d Direction) {
	if !d.Valid() {
		panic(fmt.Sprintf(panicBadDirection, uint8(d)))
	}
}

// WallMask holds one bit per closed side of a cell. Only the low 4 bits are
// meaningful.
type WallMask uint8

// maskBits keeps the meaningful part of a stored byte.
const maskBits WallMask = 0x0F

// Has reports whether the wall on side d is closed.
func (m WallMask) Has(d Direction) bool {
	return m&WallMask(d) != 0
}

// String lists closed sides as initials in scan order, e.g. "N-S-".
func (m WallMask) String() string {
	var b strings.Builder
	for _, d := range Directions {
		if m.Has(d) {
			b.WriteByte(strings.ToUpper(d.String())[0])
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// Cell is a grid coordinate. X grows eastward, Y grows southward.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Endpoint is an optional cell used for the start and finish markers.
// The zero value is unset.
type Endpoint struct {
	cell Cell
	set  bool
}

// NoEndpoint is the unset marker.
var NoEndpoint = Endpoint{}

// EndpointAt returns a marker set to c.
func EndpointAt(c Cell) Endpoint {
	return Endpoint{cell: c, set: true}
}

// Cell returns the marked cell and whether the marker is set.
func (e Endpoint) Cell() (Cell, bool) {
	return e.cell, e.set
}

// IsSet reports whether the marker points at a cell.
func (e Endpoint) IsSet() bool {
	return e.set
}

func (e Endpoint) String() string {
	if !e.set {
		return "unset"
	}
	return e.cell.String()
}
