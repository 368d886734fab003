// Package priq implements a priority queue over a binary heap whose scores
// only need a partial order.
//
// Scores and items are separate: the score decides the position, the item
// is an opaque payload that needs no ordering. Scores that cannot be
// compared (a NaN float, for example) never rise above comparable ones, so
// they come out of Pop only after every comparable entry.
//
// The default is a min-heap. Wrap the comparison in Reverse for a max-heap.
//
// A PriorityQueue is not safe for concurrent use.
package priq

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrEmpty is the panic value of MustPop on an empty queue.
	ErrEmpty = errors.New("priq: queue is empty")
	// ErrInvalidCapacity is wrapped in the panic value of NewWithCapacity for a
	// negative capacity.
	ErrInvalidCapacity = errors.New("priq: invalid capacity")
	// ErrNilCompare is the panic value of the constructors when no comparison is given.
	ErrNilCompare = errors.New("priq: nil compare func")
)

// shrinkThreshold is the capacity above which Pop gives memory back once
// the queue is down to a quarter of it.
const shrinkThreshold = 1000

// Entry is a score and the item stored with it.
type Entry[S, T any] struct {
	Score S
	Item  T
}

// PriorityQueue is a min-heap of entries ordered by score.
type PriorityQueue[S, T any] struct {
	data []Entry[S, T]
	cmp  CompareFunc[S]
}

// New constructs an empty queue ordered by cmp.
func New[S, T any](cmp CompareFunc[S]) *PriorityQueue[S, T] {
	return NewWithCapacity[S, T](cmp, 0)
}

// NewWithCapacity constructs an empty queue that can hold n entries before
// it has to grow.
// It panics if n is negative.
func NewWithCapacity[S, T any](cmp CompareFunc[S], n int) *PriorityQueue[S, T] {
	if cmp == nil {
		panic(ErrNilCompare)
	}
	if n < 0 {
		panic(fmt.Errorf("%w: %d", ErrInvalidCapacity, n))
	}
	return &PriorityQueue[S, T]{
		data: make([]Entry[S, T], 0, n),
		cmp:  cmp,
	}
}

// From builds a queue out of entries in O(n). The entries are copied, so the
// caller's slice keeps its order.
func From[S, T any](cmp CompareFunc[S], entries []Entry[S, T]) *PriorityQueue[S, T] {
	pq := NewWithCapacity[S, T](cmp, len(entries))
	pq.data = append(pq.data, entries...)
	pq.heapify()
	return pq
}

// Collect builds a queue out of every (score, item) pair produced by seq.
func Collect[S, T any](cmp CompareFunc[S], seq iter.Seq2[S, T]) *PriorityQueue[S, T] {
	pq := New[S, T](cmp)
	for s, t := range seq {
		pq.data = append(pq.data, Entry[S, T]{Score: s, Item: t})
	}
	pq.heapify()
	return pq
}

// Len returns the number of entries in the queue.
func (pq *PriorityQueue[S, T]) Len() int { return len(pq.data) }

// IsEmpty reports whether the queue holds no entries.
func (pq *PriorityQueue[S, T]) IsEmpty() bool { return len(pq.data) == 0 }

// Cap returns the number of entries the queue can hold without growing.
func (pq *PriorityQueue[S, T]) Cap() int { return cap(pq.data) }

// Put inserts item with the given score in O(log n).
//
// The entry starts in the first free slot and climbs towards the root while
// its score is less than its parent's. An equal score stops the climb, so
// no secondary ordering on items is needed.
func (pq *PriorityQueue[S, T]) Put(score S, item T) {
	pq.data = append(pq.data, Entry[S, T]{Score: score, Item: item})
	pq.up(len(pq.data) - 1)
}

// Peek returns the entry at the top of the queue without removing it.
// The second result is false if the queue is empty.
func (pq *PriorityQueue[S, T]) Peek() (Entry[S, T], bool) {
	if len(pq.data) == 0 {
		var zero Entry[S, T]
		return zero, false
	}
	return pq.data[0], true
}

// Pop removes and returns the entry at the top of the queue in O(log n).
// The second result is false if the queue is empty, in which case the queue
// is left untouched.
//
// The last entry takes the place of the root and sinks until the heap order
// is restored.
func (pq *PriorityQueue[S, T]) Pop() (Entry[S, T], bool) {
	var zero Entry[S, T]
	n := len(pq.data)
	if n == 0 {
		return zero, false
	}

	top := pq.data[0]
	last := n - 1
	pq.data[0] = pq.data[last]
	pq.data[last] = zero // avoid memory leak
	pq.data = pq.data[:last]

	if last > 1 {
		pq.down(0)
	}
	pq.shrink()

	return top, true
}

// MustPop is like Pop but panics with ErrEmpty if the queue is empty.
func (pq *PriorityQueue[S, T]) MustPop() Entry[S, T] {
	e, ok := pq.Pop()
	if !ok {
		panic(ErrEmpty)
	}
	return e
}

// shrink halves the backing slice once a large queue has drained to a
// quarter of its capacity.
func (pq *PriorityQueue[S, T]) shrink() {
	c := cap(pq.data)
	if c <= shrinkThreshold || c/4 < len(pq.data) {
		return
	}
	data := make([]Entry[S, T], len(pq.data), c/2)
	copy(data, pq.data)
	pq.data = data
}
