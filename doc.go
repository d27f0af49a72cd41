// Package lvmaze is the model behind a hand-drawn maze editor: a bounded
// grid of walled cells, a distance field flooded from the finish, and the
// classic ways of walking from start to finish.
//
// What is in the box?
//
//	maze/         Grid with reciprocal 4-bit walls, start/finish markers,
//	              wall and column counts, regions, the 256-byte .maz codec
//	flood/        breadth-first distance field from the finish cell
//	solve/        descent, left-hand and right-hand tracing; editor Report
//	mazefile/     .maz load/save on disk
//	cmd/mazestat  inspect a .maz file from the command line
//
// Default layout of a fresh 3×3 grid (y grows southward):
//
//	y=0   ·  ·  F
//	y=1   ·  ·  ·
//	y=2   S  ·  ·
//
// Everything is single-threaded and synchronous: an editing session owns its
// Grid and recomputes the field and paths after each change. On a 16×16
// grid each recompute is at most a few hundred steps.
//
//	go get github.com/katalvlaran/lvmaze
package lvmaze
