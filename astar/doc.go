// Package astar finds shortest paths on a gridmap.Map with the A* algorithm.
//
// Overview:
//
//   - FindPath expands cells best-first by f = g + h, where g counts unit
//     steps from the start and h is a Heuristic estimate to the goal.
//   - Every step costs 1, cardinal or diagonal alike.
//   - Connectivity (gridmap.Conn4 or gridmap.Conn8) selects which offsets
//     count as neighbors.
//   - Equal f values are popped in insertion order, so results are
//     deterministic for identical inputs.
//
// Heuristics:
//
//   - Manhattan: |dx| + |dy|. Admissible only under Conn4.
//   - Euclidean: floor(sqrt(dx² + dy²)). The truncation toward zero is kept
//     on purpose; it may underestimate more than strictly necessary but never
//     overestimates the Euclidean distance.
//
// Re-discovery policy:
//
//   - PolicyFirstDiscovery (default): a cell already waiting in the frontier
//     keeps the g, f and parent it was first enqueued with, even when a
//     cheaper route to it is found later. With Manhattan under Conn8 this can
//     produce a longer path than necessary.
//   - PolicyDecreaseKey (WithDecreaseKey): the frontier entry is updated and
//     its heap position fixed whenever a strictly lower g is found.
//
// Either way a cell enters the closed set at most once, so the search always
// terminates on a finite map.
//
// Errors (sentinel, match with errors.Is):
//
//   - ErrInvalidMap:      nil map, or FindPathRows could not build one.
//   - ErrInvalidEndpoint: start or goal out of bounds or on a blocked cell.
//     The start may sit on the gridmap.TagStart marker.
//   - ErrNotFound:        the frontier emptied before reaching the goal.
//     This is an expected outcome; the returned Result still reports how
//     many cells were expanded.
//   - ErrInvalidMode:     unknown Heuristic or Connectivity value.
//   - ErrOptionViolation: an Option was given an invalid argument.
//
// Thread safety:
//
//   - All working state is local to one call. Concurrent calls, including
//     calls sharing the same immutable *gridmap.Map, are safe.
//   - There is no built-in cancellation; run long searches on their own
//     goroutine if the caller must stay responsive.
//
// Example:
//
//	m, _ := gridmap.NewMap([]string{
//	    "+-----+",
//	    "|A   B|",
//	    "+-----+",
//	})
//	res, err := astar.FindPath(m, gridmap.Point{X: 1, Y: 1}, gridmap.Point{X: 5, Y: 1},
//	    astar.Manhattan, gridmap.Conn4)
//	if errors.Is(err, astar.ErrNotFound) {
//	    fmt.Println("No path was found")
//	}
//	fmt.Println(res.Path, res.Cost) // [(1,1) (2,1) (3,1) (4,1) (5,1)] 4
package astar
