package astar

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/astargrid/gridmap"
)

// Sentinel errors returned by FindPath.
var (
	// ErrInvalidMap indicates a nil or structurally invalid map.
	ErrInvalidMap = errors.New("astar: invalid map")

	// ErrInvalidEndpoint indicates a start or goal out of bounds or blocked.
	ErrInvalidEndpoint = errors.New("astar: invalid endpoint")

	// ErrNotFound indicates the frontier was exhausted without reaching the goal.
	ErrNotFound = errors.New("astar: no path found")

	// ErrInvalidMode indicates an unknown Heuristic or Connectivity value.
	ErrInvalidMode = errors.New("astar: invalid mode")

	// ErrOptionViolation indicates an invalid Option argument.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Heuristic selects the distance estimate h used to order the frontier.
type Heuristic int

const (
	// Manhattan estimates |dx| + |dy|.
	Manhattan Heuristic = iota
	// Euclidean estimates floor(sqrt(dx² + dy²)).
	Euclidean
)

// Valid reports whether h is Manhattan or Euclidean.
func (h Heuristic) Valid() bool {
	return h == Manhattan || h == Euclidean
}

// String returns "manhattan", "euclidean" or "heuristic(n)".
func (h Heuristic) String() string {
	switch h {
	case Manhattan:
		return "manhattan"
	case Euclidean:
		return "euclidean"
	default:
		return fmt.Sprintf("heuristic(%d)", int(h))
	}
}

// ParseHeuristic maps "manhattan" or "euclidean" (case-insensitive) to a
// Heuristic. Unknown names yield ErrInvalidMode.
func ParseHeuristic(s string) (Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manhattan":
		return Manhattan, nil
	case "euclidean", "euclidian":
		return Euclidean, nil
	default:
		return 0, fmt.Errorf("%w: heuristic %q", ErrInvalidMode, s)
	}
}

// Policy controls what happens when a cell already in the frontier is
// reached again through another expanded cell.
type Policy int

const (
	// PolicyFirstDiscovery leaves the existing frontier entry untouched.
	PolicyFirstDiscovery Policy = iota
	// PolicyDecreaseKey updates the entry when the new g is strictly lower.
	PolicyDecreaseKey
)

// String returns "first-discovery", "decrease-key" or "policy(n)".
func (p Policy) String() string {
	switch p {
	case PolicyFirstDiscovery:
		return "first-discovery"
	case PolicyDecreaseKey:
		return "decrease-key"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Options holds tunables and callbacks for FindPath.
type Options struct {
	// Policy selects the re-discovery behavior. Default PolicyFirstDiscovery.
	Policy Policy

	// OnEnqueue is called when a cell enters the frontier, and again when a
	// decrease-key lowers its cost.
	OnEnqueue func(p gridmap.Point, g, f int)

	// OnExpand is called when a cell is popped from the frontier, before the
	// goal test.
	OnExpand func(p gridmap.Point, g, f int)

	// Logger receives Debug records for search start and outcome.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// Option configures FindPath via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when FindPath runs.
type Option func(*Options)

// DefaultOptions returns Options with PolicyFirstDiscovery, no-op hooks and
// a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Policy:    PolicyFirstDiscovery,
		OnEnqueue: func(gridmap.Point, int, int) {},
		OnExpand:  func(gridmap.Point, int, int) {},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithPolicy sets the re-discovery policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		if p != PolicyFirstDiscovery && p != PolicyDecreaseKey {
			o.err = fmt.Errorf("%w: unknown policy %d", ErrOptionViolation, int(p))
			return
		}
		o.Policy = p
	}
}

// WithDecreaseKey is shorthand for WithPolicy(PolicyDecreaseKey).
func WithDecreaseKey() Option {
	return WithPolicy(PolicyDecreaseKey)
}

// WithOnEnqueue registers a callback run whenever a cell is (re)queued.
func WithOnEnqueue(fn func(p gridmap.Point, g, f int)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnEnqueue is nil", ErrOptionViolation)
			return
		}
		o.OnEnqueue = fn
	}
}

// WithOnExpand registers a callback run whenever a cell is popped.
func WithOnExpand(fn func(p gridmap.Point, g, f int)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnExpand is nil", ErrOptionViolation)
			return
		}
		o.OnExpand = fn
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the outcome of a search.
//
//   - Path: cells from start to goal inclusive; nil when no path exists.
//   - Cost: number of steps, len(Path)-1.
//   - Expanded: cells moved to the closed set, plus the goal when found.
type Result struct {
	Path     []gridmap.Point
	Cost     int
	Expanded int
}

// Found reports whether r holds a path.
func (r *Result) Found() bool {
	return r != nil && len(r.Path) > 0
}

// GoalToStart returns the path ordered from goal back to start, as a new slice.
func (r *Result) GoalToStart() []gridmap.Point {
	if r == nil || r.Path == nil {
		return nil
	}
	return reverse(r.Path)
}
