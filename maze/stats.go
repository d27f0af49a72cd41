package maze

// CountWalls counts every closed wall segment once. A side shared by two
// cells is owned by the cell west or north of it, so West is counted only
// in the first column, North only in the first row, and East/South always.
// Complexity: O(W×H).
func (g *Grid) CountWalls() int {
	count := 0
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			m := g.walls[g.slot(Cell{X: x, Y: y})]
			if x == 0 && m.Has(West) {
				count++
			}
			if y == 0 && m.Has(North) {
				count++
			}
			if m.Has(South) {
				count++
			}
			if m.Has(East) {
				count++
			}
		}
	}
	return count
}

// CountColumns returns the number of wall posts at cell corners: (W+1)×(H+1).
func (g *Grid) CountColumns() int {
	return (g.width + 1) * (g.height + 1)
}
