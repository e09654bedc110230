// Package pqueue provides a generic indexed binary min-heap.
//
// What:
//
//   - Queue[T, P] orders items of a comparable type T by a priority P.
//   - Every queued item carries its heap slot, so Remove and Update run in
//     O(log n) without a linear search.
//   - Equal priorities are served in insertion order, which keeps searches
//     built on top of the queue deterministic.
//
// Layout:
//
//	The heap lives in a dense slice indexed from 1: slot 0 is unused, the
//	parent of slot i is i/2 and its children are 2i and 2i+1.
//
// Complexity:
//
//   - Push, Pop, Remove, Update: O(log n).
//   - Peek, Len, Contains, Priority: O(1).
//
// Errors:
//
//   - ErrEmptyQueue: Pop or Peek on an empty queue.
//   - ErrItemNotFound: Remove or Update of an item that is not queued.
//   - ErrDuplicateItem: Push of an item that is already queued.
//
// Concurrency: a Queue is not safe for concurrent use.
package pqueue
