package maze

// Regions finds all connected regions of the passage graph: cells joined by
// open sides. Regions are returned in column-major discovery order (x, then y)
// and each region lists its cells in BFS order from its first cell.
//
// A fully walled grid yields W×H single-cell regions; a freshly reset grid
// yields exactly one.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions() [][]Cell {
	var seen [Area]bool
	var regions [][]Cell

	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			c0 := Cell{X: x, Y: y}
			if seen[g.slot(c0)] {
				continue
			}
			// BFS to collect the region
			queue := []Cell{c0}
			seen[g.slot(c0)] = true
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range Directions {
					if !g.Open(u, d) {
						continue
					}
					v := g.Neighbour(u, d)
					if !seen[g.slot(v)] {
						seen[g.slot(v)] = true
						queue = append(queue, v)
					}
				}
			}
			regions = append(regions, queue)
		}
	}
	return regions
}

// Connected reports whether a and b lie in the same region.
// Panics if either cell is out of bounds.
func (g *Grid) Connected(a, b Cell) bool {
	g.mustInBounds(a)
	g.mustInBounds(b)
	for _, r := range g.Regions() {
		hasA, hasB := false, false
		for _, c := range r {
			hasA = hasA || c == a
			hasB = hasB || c == b
		}
		if hasA || hasB {
			return hasA && hasB
		}
	}
	return false
}
