package astar

// frontier is an indexed min-heap of arena indices ordered by f, then by
// insertion sequence. pos maps an arena index to its heap slot (-1 when
// absent) so decrease-key can call heap.Fix without scanning.
type frontier struct {
	arena *[]node
	items []int
	pos   map[int]int
}

// Len returns the number of queued nodes.
func (q *frontier) Len() int { return len(q.items) }

// Less orders by f ascending; equal f falls back to first-in, first-out.
func (q *frontier) Less(i, j int) bool {
	a, b := &(*q.arena)[q.items[i]], &(*q.arena)[q.items[j]]
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

// Swap swaps two heap slots and keeps pos in sync.
func (q *frontier) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.pos[q.items[i]] = i
	q.pos[q.items[j]] = j
}

// Push appends an arena index; called by heap.Push.
func (q *frontier) Push(x interface{}) {
	id := x.(int)
	q.pos[id] = len(q.items)
	q.items = append(q.items, id)
}

// Pop removes the last slot; called by heap.Pop.
func (q *frontier) Pop() interface{} {
	n := len(q.items)
	id := q.items[n-1]
	q.items = q.items[:n-1]
	delete(q.pos, id)

	return id
}
