package gridmap

// NewMap constructs a Map from rows of tags, one byte per cell.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if there are no rows or all rows are empty,
// ErrNonRectangular if WithRectangular is set and any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewMap(rows []string, opts ...Option) (*Map, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return nil, ErrEmptyGrid
	}
	if cfg.Rectangular {
		for _, row := range rows {
			if len(row) != width {
				return nil, ErrNonRectangular
			}
		}
	}

	// Deep copy to prevent external mutation
	cells := make([][]byte, len(rows))
	for y, row := range rows {
		cells[y] = []byte(row)
	}

	return &Map{rows: cells, width: width, height: len(rows)}, nil
}

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// Width returns the length of the longest row.
func (m *Map) Width() int { return m.width }

// RowWidth returns the length of row y, or 0 when y is out of range.
func (m *Map) RowWidth(y int) int {
	if y < 0 || y >= m.height {
		return 0
	}
	return len(m.rows[y])
}

// InBounds reports whether p lies inside the map, honoring the length of
// its own row.
// Complexity: O(1).
func (m *Map) InBounds(p Point) bool {
	return p.Y >= 0 && p.Y < m.height && p.X >= 0 && p.X < len(m.rows[p.Y])
}

// Tag returns the tag at p and whether p is in bounds.
func (m *Map) Tag(p Point) (byte, bool) {
	if !m.InBounds(p) {
		return 0, false
	}
	return m.rows[p.Y][p.X], true
}

// Passable reports whether p is in bounds and tagged TagOpen or TagGoal.
func (m *Map) Passable(p Point) bool {
	tag, ok := m.Tag(p)
	return ok && (tag == TagOpen || tag == TagGoal)
}

// Rows returns a copy of the map as strings.
func (m *Map) Rows() []string {
	out := make([]string, m.height)
	for y, row := range m.rows {
		out[y] = string(row)
	}
	return out
}

// Locate returns the first cell tagged tag in row-major order.
func (m *Map) Locate(tag byte) (Point, bool) {
	for y, row := range m.rows {
		for x, c := range row {
			if c == tag {
				return Point{X: x, Y: y}, true
			}
		}
	}
	return Point{}, false
}

// Neighbors returns the passable cells adjacent to p under conn, in the
// order given by Offsets. Cells outside a row's bounds are skipped, never
// indexed. Unknown connectivity yields nil.
// Complexity: O(d).
func (m *Map) Neighbors(p Point, conn Connectivity) []Point {
	offs := Offsets(conn)
	if offs == nil {
		return nil
	}
	out := make([]Point, 0, len(offs))
	for _, d := range offs {
		q := p.Add(d[0], d[1])
		if m.Passable(q) {
			out = append(out, q)
		}
	}
	return out
}
