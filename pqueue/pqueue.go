package pqueue

import "cmp"

// New returns an empty queue with room for capacity items.
func New[T comparable, P cmp.Ordered](capacity int) *Queue[T, P] {
	if capacity < 0 {
		capacity = 0
	}
	q := &Queue[T, P]{
		heap:  make([]*node[T, P], 1, capacity+1),
		nodes: make(map[T]*node[T, P], capacity),
	}

	return q
}

// Len returns the number of queued items.
func (q *Queue[T, P]) Len() int { return len(q.heap) - 1 }

// Contains reports whether item is queued.
func (q *Queue[T, P]) Contains(item T) bool {
	_, ok := q.nodes[item]

	return ok
}

// Priority returns the current priority of item and whether it is queued.
func (q *Queue[T, P]) Priority(item T) (P, bool) {
	n, ok := q.nodes[item]
	if !ok {
		var zero P

		return zero, false
	}

	return n.priority, true
}

// Clear removes every item but keeps the allocated storage.
func (q *Queue[T, P]) Clear() {
	for i := 1; i < len(q.heap); i++ {
		q.heap[i] = nil
	}
	q.heap = q.heap[:1]
	clear(q.nodes)
	q.seq = 0
}

// Push inserts item with the given priority.
// Returns ErrDuplicateItem if item is already queued.
func (q *Queue[T, P]) Push(item T, priority P) error {
	if _, ok := q.nodes[item]; ok {
		return ErrDuplicateItem
	}
	n := &node[T, P]{
		item:     item,
		priority: priority,
		index:    len(q.heap),
		seq:      q.seq,
	}
	q.seq++
	q.heap = append(q.heap, n)
	q.nodes[item] = n
	q.up(n.index)

	return nil
}

// Peek returns the minimum item without removing it.
func (q *Queue[T, P]) Peek() (T, error) {
	if q.Len() == 0 {
		var zero T

		return zero, ErrEmptyQueue
	}

	return q.heap[1].item, nil
}

// Pop removes and returns the minimum item. Among equal priorities the
// earliest pushed item is returned first.
func (q *Queue[T, P]) Pop() (T, error) {
	if q.Len() == 0 {
		var zero T

		return zero, ErrEmptyQueue
	}
	root := q.heap[1]
	q.removeAt(1)

	return root.item, nil
}

// Remove deletes item from the queue.
func (q *Queue[T, P]) Remove(item T) error {
	n, ok := q.nodes[item]
	if !ok {
		return ErrItemNotFound
	}
	q.removeAt(n.index)

	return nil
}

// Update changes the priority of a queued item and restores heap order.
// The item keeps its original insertion rank for tie-breaking.
func (q *Queue[T, P]) Update(item T, priority P) error {
	n, ok := q.nodes[item]
	if !ok {
		return ErrItemNotFound
	}
	n.priority = priority
	q.fix(n.index)

	return nil
}

// removeAt unlinks the node in slot i, moving the last node into its place.
func (q *Queue[T, P]) removeAt(i int) {
	n := q.heap[i]
	last := len(q.heap) - 1
	if i != last {
		q.swap(i, last)
	}
	q.heap[last] = nil
	q.heap = q.heap[:last]
	delete(q.nodes, n.item)
	n.index = 0
	if i < len(q.heap) {
		q.fix(i)
	}
}

// fix moves the node in slot i up or down until heap order holds.
func (q *Queue[T, P]) fix(i int) {
	if i > 1 && q.before(i, i/2) {
		q.up(i)

		return
	}
	q.down(i)
}

func (q *Queue[T, P]) up(i int) {
	for i > 1 {
		parent := i / 2
		if !q.before(i, parent) {
			return
		}
		q.swap(i, parent)
		i = parent
	}
}

func (q *Queue[T, P]) down(i int) {
	n := len(q.heap)
	for {
		left := 2 * i
		if left >= n {
			return
		}
		best := left
		if right := left + 1; right < n && q.before(right, left) {
			best = right
		}
		if !q.before(best, i) {
			return
		}
		q.swap(i, best)
		i = best
	}
}

// before reports whether slot i must be served ahead of slot j.
func (q *Queue[T, P]) before(i, j int) bool {
	a, b := q.heap[i], q.heap[j]
	if c := cmp.Compare(a.priority, b.priority); c != 0 {
		return c < 0
	}

	return a.seq < b.seq
}

func (q *Queue[T, P]) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.heap[i].index = i
	q.heap[j].index = j
}
