// Package gridmap models a 2D map of single-byte cell tags as a searchable
// grid: bounds, passability, neighbor generation and region labelling.
//
// What:
//
//   - Map wraps rows of tags. Rows may differ in length; every lookup is
//     bounded by the length of the row it touches.
//   - A cell is passable when its tag is TagOpen (' ') or TagGoal ('B').
//     Every other tag blocks, including TagWall ('X'), the TagStart marker
//     ('A') and border glyphs such as '+', '-' and '|'.
//   - Neighbors expands a cell under Conn4 (N/E/S/W) or Conn8 (plus diagonals).
//   - Components groups passable cells into connected regions.
//
// Example map:
//
//	+-----+
//	|A   B|
//	+-----+
//
// Complexity:
//
//   - NewMap:     O(W×H) time and memory (deep copy).
//   - Neighbors:  O(d), d = 4 or 8.
//   - Components: O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: no rows, or every row is empty.
//   - ErrNonRectangular: rows differ in length and WithRectangular was set.
//   - ErrBadConnectivity: unknown connectivity value or name.
package gridmap
