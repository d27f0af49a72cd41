package maze

import "errors"

var (
	// ErrBadSize indicates a width or height outside [1,16].
	ErrBadSize = errors.New("maze: width and height must be in [1,16]")
	// ErrTruncatedFile indicates a persisted maze shorter than Area bytes.
	ErrTruncatedFile = errors.New("maze: truncated maze data")
	// ErrMalformedFile indicates a persisted maze that does not match the fixed layout.
	ErrMalformedFile = errors.New("maze: malformed maze data")
)

// Panic messages for caller bugs.
const (
	panicBadDirection = "maze: invalid direction %d"
	panicOutOfBounds  = "maze: cell %v outside %dx%d grid"
	panicNoNeighbour  = "maze: cell %v has no neighbour to the %v"
)
