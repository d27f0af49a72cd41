package mazefile

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/lvmaze/maze"
)

// Ext is the conventional file extension.
const Ext = ".maz"

// Load reads path into a new width×height grid.
// Errors wrap maze.ErrBadSize, maze.ErrTruncatedFile, maze.ErrMalformedFile
// or the underlying os error.
func Load(path string, width, height int) (*maze.Grid, error) {
	g, err := maze.New(width, height)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mazefile: open: %w", err)
	}
	defer f.Close()

	if _, err := g.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("mazefile: read %s: %w", path, err)
	}
	return g, nil
}

// Save writes g to path, appending Ext when path lacks it, and returns the
// path actually written.
func Save(g *maze.Grid, path string) (string, error) {
	if !strings.HasSuffix(path, Ext) {
		path += Ext
	}
	data, err := g.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("mazefile: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("mazefile: write: %w", err)
	}
	return path, nil
}
