package pqueue

import (
	"cmp"
	"errors"
)

// Sentinel errors returned by Queue operations.
var (
	// ErrEmptyQueue indicates Pop or Peek on a queue with no items.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")

	// ErrItemNotFound indicates Remove or Update of an item that is not queued.
	ErrItemNotFound = errors.New("pqueue: item not in queue")

	// ErrDuplicateItem indicates Push of an item that is already queued.
	ErrDuplicateItem = errors.New("pqueue: item already in queue")
)

// node is one heap slot. index is kept in sync with the slot the node
// occupies; seq records insertion order for tie-breaking.
type node[T comparable, P cmp.Ordered] struct {
	item     T
	priority P
	index    int
	seq      uint64
}

// Queue is an indexed binary min-heap. The zero value is not usable; call New.
type Queue[T comparable, P cmp.Ordered] struct {
	heap  []*node[T, P] // heap[0] is unused
	nodes map[T]*node[T, P]
	seq   uint64
}
