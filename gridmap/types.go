package gridmap

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for gridmap operations.
var (
	// ErrEmptyGrid indicates the input has no rows, or only empty rows.
	ErrEmptyGrid = errors.New("gridmap: map must have at least one non-empty row")
	// ErrNonRectangular indicates rows of differing lengths under WithRectangular.
	ErrNonRectangular = errors.New("gridmap: all rows must have the same length")
	// ErrBadConnectivity indicates an unknown Connectivity value or name.
	ErrBadConnectivity = errors.New("gridmap: unknown connectivity")
)

// Cell tags understood by the map.
const (
	TagOpen  byte = ' ' // walkable floor
	TagGoal  byte = 'B' // goal marker, walkable
	TagStart byte = 'A' // start marker, not walkable as a neighbor
	TagWall  byte = 'X' // obstacle
)

// Point is a cell coordinate: X is the column, Y the row.
type Point struct {
	X, Y int
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Connectivity selects neighbor connectivity: cardinal (Conn4) or cardinal
// plus diagonal (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: E, W, S, N.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals to Conn4.
	Conn8
)

// Valid reports whether c is Conn4 or Conn8.
func (c Connectivity) Valid() bool {
	return c == Conn4 || c == Conn8
}

// String returns "conn4", "conn8" or "connectivity(n)".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("connectivity(%d)", int(c))
	}
}

// ParseConnectivity maps "4", "four", "conn4" (and the 8 equivalents),
// case-insensitively, to a Connectivity.
func ParseConnectivity(s string) (Connectivity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "4", "four", "conn4":
		return Conn4, nil
	case "8", "eight", "conn8":
		return Conn8, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadConnectivity, s)
	}
}

// Options holds construction parameters for NewMap.
type Options struct {
	// Rectangular rejects rows of differing lengths with ErrNonRectangular.
	Rectangular bool
}

// Option configures NewMap.
type Option func(*Options)

// WithRectangular makes NewMap reject ragged input.
func WithRectangular() Option {
	return func(o *Options) {
		o.Rectangular = true
	}
}

// DefaultOptions returns Options accepting ragged rows.
func DefaultOptions() Options {
	return Options{Rectangular: false}
}

// Map is an immutable grid of cell tags. rows[y][x] is the tag at (x,y).
// It is safe for concurrent readers.
type Map struct {
	rows   [][]byte
	width  int // longest row
	height int
}

var (
	offsets4 = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	offsets8 = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// Offsets returns the neighbor offsets for conn in generation order:
// +x, -x, +y, -y, then the diagonals for Conn8. Unknown values yield nil.
// The returned slice must not be modified.
func Offsets(conn Connectivity) [][2]int {
	switch conn {
	case Conn4:
		return offsets4
	case Conn8:
		return offsets8
	default:
		return nil
	}
}
