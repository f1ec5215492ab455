package astar

import (
	"math"

	"github.com/katalvlaran/astargrid/gridmap"
)

// Distance returns h's estimate between a and b. Unknown values return 0,
// which degrades the search to uniform-cost; FindPath rejects them earlier.
func (h Heuristic) Distance(a, b gridmap.Point) int {
	switch h {
	case Manhattan:
		return ManhattanDistance(a, b)
	case Euclidean:
		return EuclideanDistance(a, b)
	default:
		return 0
	}
}

// ManhattanDistance returns |dx| + |dy|.
func ManhattanDistance(a, b gridmap.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// EuclideanDistance returns sqrt(dx² + dy²) truncated toward zero.
func EuclideanDistance(a, b gridmap.Point) int {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return int(math.Sqrt(dx*dx + dy*dy))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
