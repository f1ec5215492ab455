package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/astargrid/gridmap"
)

// FindPath runs A* on m from start to goal, scoring cells with h and
// expanding neighbors under conn. It accepts functional options to choose
// the re-discovery policy, register hooks, and attach a logger.
//
// Returns:
//
//   - a Result whose Path runs start → goal and whose Cost is the step count;
//   - ErrNotFound together with a Result carrying only Expanded when the goal
//     is unreachable;
//   - nil and one of ErrInvalidMap, ErrOptionViolation, ErrInvalidMode or
//     ErrInvalidEndpoint for invalid input.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrInvalidMap).
//  2. Options must be valid (ErrOptionViolation).
//  3. h and conn must be known values (ErrInvalidMode).
//  4. start must be in bounds and passable or tagged gridmap.TagStart;
//     goal must be in bounds and passable (ErrInvalidEndpoint).
//
// Complexity:
//
//   - Time:  O(N log N), N = number of passable cells.
//   - Space: O(N) for the node arena, frontier and closed set.
func FindPath(m *gridmap.Map, start, goal gridmap.Point, h Heuristic, conn gridmap.Connectivity, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: map is nil", ErrInvalidMap)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !h.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMode, h)
	}
	if !conn.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMode, conn)
	}
	if err := validateEndpoints(m, start, goal); err != nil {
		return nil, err
	}

	r := &runner{
		m:      m,
		goal:   goal,
		h:      h,
		conn:   conn,
		opts:   cfg,
		openAt: make(map[gridmap.Point]int),
		closed: make(map[gridmap.Point]struct{}),
	}
	r.open = frontier{arena: &r.arena, pos: make(map[int]int)}

	logger := cfg.Logger.With("start", start, "goal", goal)
	logger.Debug("astar: search started",
		"heuristic", h.String(), "connectivity", conn.String(), "policy", cfg.Policy.String())

	r.init(start)
	id, found := r.process()
	if !found {
		logger.Debug("astar: no path found", "expanded", r.expanded)
		return &Result{Expanded: r.expanded}, ErrNotFound
	}

	trail := trace(r.arena, id)
	res := &Result{
		Path:     reverse(trail),
		Cost:     r.arena[id].g,
		Expanded: r.expanded,
	}
	logger.Debug("astar: path found", "cost", res.Cost, "expanded", res.Expanded)

	return res, nil
}

// FindPathRows builds a gridmap.Map from rows and calls FindPath.
// Map construction failures are reported as ErrInvalidMap wrapping the
// gridmap sentinel.
func FindPathRows(rows []string, start, goal gridmap.Point, h Heuristic, conn gridmap.Connectivity, opts ...Option) (*Result, error) {
	m, err := gridmap.NewMap(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMap, err)
	}
	return FindPath(m, start, goal, h, conn, opts...)
}

// validateEndpoints checks bounds and passability of both endpoints.
func validateEndpoints(m *gridmap.Map, start, goal gridmap.Point) error {
	tag, ok := m.Tag(start)
	if !ok {
		return fmt.Errorf("%w: start %v is out of bounds", ErrInvalidEndpoint, start)
	}
	if !m.Passable(start) && tag != gridmap.TagStart {
		return fmt.Errorf("%w: start %v is blocked (%q)", ErrInvalidEndpoint, start, tag)
	}
	tag, ok = m.Tag(goal)
	if !ok {
		return fmt.Errorf("%w: goal %v is out of bounds", ErrInvalidEndpoint, goal)
	}
	if !m.Passable(goal) {
		return fmt.Errorf("%w: goal %v is blocked (%q)", ErrInvalidEndpoint, goal, tag)
	}
	return nil
}

// node is one discovered cell. parent is an arena index, -1 for the start.
type node struct {
	p       gridmap.Point
	g, h, f int
	parent  int
	seq     int
}

// runner holds the mutable state for a single FindPath execution.
type runner struct {
	m        *gridmap.Map
	goal     gridmap.Point
	h        Heuristic
	conn     gridmap.Connectivity
	opts     Options
	arena    []node                     // every node created; indices are stable
	open     frontier                   // min-heap over arena indices
	openAt   map[gridmap.Point]int      // coordinate → arena index while queued
	closed   map[gridmap.Point]struct{} // fully expanded coordinates
	nextSeq  int                        // insertion counter for tie-breaking
	expanded int
}

// init seeds the frontier with the start at priority 0 and g = 0.
func (r *runner) init(start gridmap.Point) {
	heap.Init(&r.open)
	r.push(node{p: start, parent: -1})
}

// push stores n in the arena and queues it.
func (r *runner) push(n node) {
	n.seq = r.nextSeq
	r.nextSeq++
	id := len(r.arena)
	r.arena = append(r.arena, n)
	r.openAt[n.p] = id
	heap.Push(&r.open, id)
	r.opts.OnEnqueue(n.p, n.g, n.f)
}

// process pops nodes in f order until the goal is reached or the frontier
// empties. It returns the goal's arena index and true on success.
func (r *runner) process() (int, bool) {
	for r.open.Len() > 0 {
		id := heap.Pop(&r.open).(int)
		cur := r.arena[id]
		delete(r.openAt, cur.p)
		r.expanded++
		r.opts.OnExpand(cur.p, cur.g, cur.f)

		if cur.p == r.goal {
			return id, true
		}
		r.closed[cur.p] = struct{}{}
		r.relax(id, cur)
	}
	return -1, false
}

// relax scores every open neighbor of cur and queues the new ones.
// Under PolicyDecreaseKey a queued neighbor reached more cheaply is updated
// in place; otherwise it is left as first discovered.
func (r *runner) relax(id int, cur node) {
	for _, q := range r.m.Neighbors(cur.p, r.conn) {
		if _, done := r.closed[q]; done {
			continue
		}
		g := cur.g + 1
		h := r.h.Distance(q, r.goal)
		f := g + h

		at, queued := r.openAt[q]
		if !queued {
			r.push(node{p: q, g: g, h: h, f: f, parent: id})
			continue
		}
		if r.opts.Policy != PolicyDecreaseKey || g >= r.arena[at].g {
			continue
		}
		n := &r.arena[at]
		n.g, n.h, n.f, n.parent = g, h, f, id
		heap.Fix(&r.open, r.open.pos[at])
		r.opts.OnEnqueue(q, g, f)
	}
}
