package gridmap

// Components finds all connected regions of passable cells under conn.
// Regions are discovered in row-major order; cells inside a region are
// listed in BFS order from the region's first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (m *Map) Components(conn Connectivity) [][]Point {
	seen := make(map[Point]bool)
	var comps [][]Point

	for y, row := range m.rows {
		for x := range row {
			p0 := Point{X: x, Y: y}
			if seen[p0] || !m.Passable(p0) {
				continue
			}
			// BFS to collect component
			queue := []Point{p0}
			seen[p0] = true
			for qi := 0; qi < len(queue); qi++ {
				for _, q := range m.Neighbors(queue[qi], conn) {
					if !seen[q] {
						seen[q] = true
						queue = append(queue, q)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// Connected reports whether a and b are passable and lie in the same
// region under conn. Equal passable points are connected.
// Complexity: O(W·H·d) worst case.
func (m *Map) Connected(a, b Point, conn Connectivity) bool {
	if !m.Passable(a) || !m.Passable(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := map[Point]bool{a: true}
	queue := []Point{a}
	for qi := 0; qi < len(queue); qi++ {
		for _, q := range m.Neighbors(queue[qi], conn) {
			if q == b {
				return true
			}
			if !seen[q] {
				seen[q] = true
				queue = append(queue, q)
			}
		}
	}
	return false
}
