package astar

import "github.com/katalvlaran/astargrid/gridmap"

// trace walks parent links from arena[id] to the node without a parent and
// returns the coordinates goal-first, both endpoints included. It only reads
// the arena, so repeated calls return equal slices.
func trace(arena []node, id int) []gridmap.Point {
	var out []gridmap.Point
	for at := id; at >= 0; at = arena[at].parent {
		out = append(out, arena[at].p)
	}
	return out
}

// reverse returns a reversed copy of path.
func reverse(path []gridmap.Point) []gridmap.Point {
	out := make([]gridmap.Point, len(path))
	for i, p := range path {
		out[len(path)-1-i] = p
	}
	return out
}
