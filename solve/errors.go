package solve

import "errors"

var (
	// ErrUnknownStrategy indicates a strategy name ParseStrategy cannot resolve.
	ErrUnknownStrategy = errors.New("solve: unknown strategy")
	// ErrGridNil is returned by Analyze for a nil grid.
	ErrGridNil = errors.New("solve: grid is nil")
)
