package priq

import (
	"iter"
	"slices"
)

// All returns an iterator over the entries in storage order, which is not
// priority order. The iterator can be ranged over more than once. The queue
// must not be modified while ranging.
func (pq *PriorityQueue[S, T]) All() iter.Seq2[S, T] {
	return func(yield func(S, T) bool) {
		for _, e := range pq.data {
			if !yield(e.Score, e.Item) {
				return
			}
		}
	}
}

// Entries returns a copy of the entries in storage order.
func (pq *PriorityQueue[S, T]) Entries() []Entry[S, T] {
	return slices.Clone(pq.data)
}

// Drain removes every entry and returns them in storage order.
func (pq *PriorityQueue[S, T]) Drain() []Entry[S, T] {
	out := pq.data
	pq.data = nil
	return out
}

// DrainSorted removes every entry and returns them in the order Pop would.
// Scores that cannot be compared come last, in no particular order.
func (pq *PriorityQueue[S, T]) DrainSorted() []Entry[S, T] {
	out := make([]Entry[S, T], 0, len(pq.data))
	for {
		e, ok := pq.Pop()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}

// Truncate keeps the first n entries in storage order and drops the rest.
// It does nothing if n is not less than Len. The entries kept still form a
// valid heap, so the top of the queue does not change unless n is zero.
func (pq *PriorityQueue[S, T]) Truncate(n int) {
	if n >= len(pq.data) {
		return
	}
	n = max(n, 0)
	clear(pq.data[n:])
	pq.data = pq.data[:n]
}

// Clear removes every entry but keeps the allocated capacity.
func (pq *PriorityQueue[S, T]) Clear() {
	clear(pq.data)
	pq.data = pq.data[:0]
}
