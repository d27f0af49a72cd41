package flood_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvmaze/flood"
	"github.com/katalvlaran/lvmaze/maze"
)

// FloodSuite exercises Compute on hand-built and random grids.
type FloodSuite struct {
	suite.Suite
}

func (s *FloodSuite) newGrid(w, h int) *maze.Grid {
	g, err := maze.New(w, h)
	require.NoError(s.T(), err)
	return g
}

// TestErrors verifies that invalid inputs and options are rejected.
func (s *FloodSuite) TestErrors() {
	_, err := flood.Compute(nil, maze.NoEndpoint)
	require.ErrorIs(s.T(), err, flood.ErrGridNil)
	_, err = flood.FromGrid(nil)
	require.ErrorIs(s.T(), err, flood.ErrGridNil)

	g := s.newGrid(3, 3)
	_, err = flood.Compute(g, maze.EndpointAt(maze.Cell{X: 3, Y: 0}))
	require.ErrorIs(s.T(), err, flood.ErrFinishOutOfBounds)

	_, err = flood.Compute(g, g.Finish(), flood.WithMaxDepth(-1))
	require.ErrorIs(s.T(), err, flood.ErrOptionViolation)
}

// TestUnsetFinish leaves every cell unreachable.
func (s *FloodSuite) TestUnsetFinish() {
	g := s.newGrid(4, 4)
	f, err := flood.Compute(g, maze.NoEndpoint)
	require.NoError(s.T(), err)
	for _, d := range f.Slots() {
		require.Equal(s.T(), maze.Unreachable, d)
	}
	require.Equal(s.T(), -1, f.Max())
}

// TestOpenRoom gives Manhattan distances.
func (s *FloodSuite) TestOpenRoom() {
	g := s.newGrid(5, 4)
	finish := maze.Cell{X: 4, Y: 0}
	f, err := flood.Compute(g, maze.EndpointAt(finish))
	require.NoError(s.T(), err)
	for x := 0; x < 5; x++ {
		for y := 0; y < 4; y++ {
			want := (4 - x) + y
			require.Equal(s.T(), want, f.At(maze.Cell{X: x, Y: y}), "cell (%d,%d)", x, y)
		}
	}
	require.Equal(s.T(), 7, f.Max())
	require.True(s.T(), f.Matches(g))
}

// TestWallDetour forces a detour around a partial wall.
func (s *FloodSuite) TestWallDetour() {
	// 3x3, wall under the whole top row except at x=2
	g := s.newGrid(3, 3)
	g.SetWall(maze.Cell{X: 0, Y: 0}, maze.South)
	g.SetWall(maze.Cell{X: 1, Y: 0}, maze.South)

	f, err := flood.Compute(g, maze.EndpointAt(maze.Cell{X: 0, Y: 0}))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, f.At(maze.Cell{X: 0, Y: 0}))
	require.Equal(s.T(), 2, f.At(maze.Cell{X: 2, Y: 0}))
	require.Equal(s.T(), 3, f.At(maze.Cell{X: 2, Y: 1}))
	require.Equal(s.T(), 5, f.At(maze.Cell{X: 0, Y: 1}))
	require.Equal(s.T(), 6, f.At(maze.Cell{X: 0, Y: 2}))
}

// TestDisconnected keeps the far side at the sentinel.
func (s *FloodSuite) TestDisconnected() {
	g := s.newGrid(3, 3)
	for y := 0; y < 3; y++ {
		g.SetWall(maze.Cell{X: 0, Y: y}, maze.East)
	}
	f, err := flood.FromGrid(g)
	require.NoError(s.T(), err)
	for y := 0; y < 3; y++ {
		require.False(s.T(), f.Reachable(maze.Cell{X: 0, Y: y}))
		require.True(s.T(), f.Reachable(maze.Cell{X: 2, Y: y}))
	}
}

// TestMaxDepth stops propagation past the limit.
func (s *FloodSuite) TestMaxDepth() {
	g := s.newGrid(5, 1)
	f, err := flood.Compute(g, maze.EndpointAt(maze.Cell{X: 0, Y: 0}), flood.WithMaxDepth(2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, f.At(maze.Cell{X: 2, Y: 0}))
	require.Equal(s.T(), maze.Unreachable, f.At(maze.Cell{X: 3, Y: 0}))
}

// TestOnVisitOrder checks the hook sees cells in nondecreasing distance,
// starting at the finish, in N/E/S/W scan order for ties.
func (s *FloodSuite) TestOnVisitOrder() {
	g := s.newGrid(3, 3)
	var order []maze.Cell
	last := 0
	_, err := flood.Compute(g, maze.EndpointAt(maze.Cell{X: 1, Y: 1}),
		flood.WithOnVisit(func(c maze.Cell, d int) {
			require.GreaterOrEqual(s.T(), d, last)
			last = d
			order = append(order, c)
		}))
	require.NoError(s.T(), err)
	require.Len(s.T(), order, 9)
	require.Equal(s.T(), []maze.Cell{{X: 1, Y: 1}, {X: 1, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 1}}, order[:5])
}

// TestAddressing checks Slots uses the grid's storage layout.
func (s *FloodSuite) TestAddressing() {
	g := s.newGrid(2, 3)
	f, err := flood.Compute(g, maze.EndpointAt(maze.Cell{X: 0, Y: 2}))
	require.NoError(s.T(), err)
	slots := f.Slots()
	require.Equal(s.T(), 0, slots[g.Slot(maze.Cell{X: 0, Y: 2})])
	require.Equal(s.T(), 0, slots[0])
	require.Equal(s.T(), 3, slots[g.Slot(maze.Cell{X: 1, Y: 0})])
	require.Equal(s.T(), maze.Unreachable, slots[5])
	require.Panics(s.T(), func() { f.At(maze.Cell{X: 2, Y: 0}) })
}

// TestBFSProperties checks the distance-field invariants on random grids.
func (s *FloodSuite) TestBFSProperties() {
	rnd := rand.New(rand.NewSource(2024))
	for iter := 0; iter < 50; iter++ {
		w, h := 1+rnd.Intn(maze.MaxWidth), 1+rnd.Intn(maze.MaxHeight)
		g := s.newGrid(w, h)
		for i := 0; i < w*h; i++ {
			g.SetWall(maze.Cell{X: rnd.Intn(w), Y: rnd.Intn(h)}, maze.Directions[rnd.Intn(4)])
		}
		finish := maze.Cell{X: rnd.Intn(w), Y: rnd.Intn(h)}
		f, err := flood.Compute(g, maze.EndpointAt(finish))
		require.NoError(s.T(), err)
		require.Equal(s.T(), 0, f.At(finish))

		for x := 0; x < w; x++ {
			for y := 0; y < h; y++ {
				c := maze.Cell{X: x, Y: y}
				d := f.At(c)
				// reachability agrees with connectivity
				require.Equal(s.T(), g.Connected(c, finish), d != maze.Unreachable, "cell %v", c)
				if d == maze.Unreachable || c == finish {
					continue
				}
				best := maze.Unreachable
				for _, dir := range maze.Directions {
					if g.Open(c, dir) {
						best = min(best, f.At(g.Neighbour(c, dir)))
					}
				}
				require.Equal(s.T(), d-1, best, "cell %v", c)
			}
		}
	}
}

func TestFloodSuite(t *testing.T) {
	suite.Run(t, new(FloodSuite))
}
