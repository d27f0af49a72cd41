// Package maze models a hand-drawn maze as a bounded grid of cells whose
// walls are stored as 4-bit masks.
//
// What:
//
//   - Grid keeps one WallMask per cell in a fixed 16×16 backing store and
//     tracks the active Width×Height rectangle separately.
//   - Wall mutations are reciprocal: closing the East side of a cell closes the
//     West side of its eastern neighbour, when that neighbour is in bounds.
//   - Start and Finish are optional Endpoints.
//   - CountWalls, CountColumns and Regions give read-only aggregates.
//   - MarshalBinary/UnmarshalBinary implement the 256-byte .maz layout.
//
// Coordinates:
//
//	Cell{X, Y}: X grows eastward, Y grows southward (y=0 is the top row).
//	Storage slot: X*16 + (Height-Y-1), i.e. rows are counted from the bottom,
//	so growing or shrinking Height never re-indexes the rows already drawn.
//
//	    y=0  ┌───┬───┬───┐   North
//	    y=1  │   │   │   │     ↑
//	    y=2  └───┴───┴───┘   West ← → East
//	         x=0 x=1 x=2        ↓
//	                          South
//
// Errors:
//
//   - ErrBadSize: requested width or height outside [1,16].
//   - ErrTruncatedFile: persisted blob shorter than 256 bytes.
//   - ErrMalformedFile: persisted blob longer than 256 bytes.
//
// Misuse (invalid Direction, out-of-bounds Cell, Neighbour without a bounds
// check) panics: it is a caller bug, not bad input.
//
// Complexity:
//
//   - WallsAt, SetWall, ClearWall, Neighbour: O(1).
//   - Reset, Resize, CountWalls, Regions:      O(W×H).
package maze
