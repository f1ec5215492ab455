// Package astargrid is a small toolkit for shortest-path search on
// character grids with the A* algorithm.
//
// What is inside?
//
//	gridmap/  — immutable map of cell tags: bounds, passability, 4/8-way
//	            neighbors, marker lookup and connected regions
//	astar/    — FindPath: A* with Manhattan or Euclidean heuristics,
//	            first-discovery or decrease-key re-discovery, hooks and
//	            slog logging
//	scenario/ — YAML fixtures (map, endpoints, modes, expected outcome)
//	            executed through astar
//
// Map contract:
//
//	+-----+      ' ' open      'B' goal (walkable)
//	|A X B|      'A' start     'X' wall; any other glyph blocks
//	+-----+
//
// Every step costs 1, diagonal or not. A missing path is reported as
// astar.ErrNotFound, an expected outcome rather than a failure.
//
//	go get github.com/katalvlaran/astargrid
package astargrid
