// Package solve traces paths from a maze's start to its finish.
//
// Three strategies are offered:
//
//   - Descent steps to any open neighbour with a strictly smaller distance
//     (first in North, East, South, West order) until it reaches the finish
//     or gets stuck. On a reachable start it yields a shortest path.
//   - LeftHand and RightHand follow a wall. Starting at start facing North,
//     each step tries, in order: the preferred turn (left or right), straight
//     on, the other turn, then reversing. The first open side is taken.
//     The walk fails at a dead end (no open side), when it steps back onto
//     start, or once every (cell, facing) state could have been used.
//
// No strategy returns an error for "no path": failure is reported as a
// Path whose Length is maze.Unreachable. Misuse (nil field, a field computed
// for another grid size, unknown strategy) panics.
//
// Complexity: O(W×H) moves per trace.
package solve
