package priq

import "slices"

// Merge moves every entry of other into pq, leaving other empty. Each entry
// goes through Put, so this costs O(m log(n+m)) for m entries in other.
// Entries are ordered by pq's comparison.
func (pq *PriorityQueue[S, T]) Merge(other *PriorityQueue[S, T]) {
	if other == nil || other == pq {
		return
	}
	pq.data = slices.Grow(pq.data, len(other.data))
	for {
		e, ok := other.Pop()
		if !ok {
			return
		}
		pq.Put(e.Score, e.Item)
	}
}

// Clone returns a copy of pq with the same comparison. Entries are copied by
// assignment; use CombineFunc when items hold references that must not be
// shared.
func (pq *PriorityQueue[S, T]) Clone() *PriorityQueue[S, T] {
	return pq.cloneWith(nil)
}

func (pq *PriorityQueue[S, T]) cloneWith(dup func(Entry[S, T]) Entry[S, T]) *PriorityQueue[S, T] {
	c := NewWithCapacity[S, T](pq.cmp, len(pq.data))
	if dup == nil {
		c.data = append(c.data, pq.data...)
		return c
	}
	for _, e := range pq.data {
		c.data = append(c.data, dup(e))
	}
	return c
}

// Combine returns a new queue holding the entries of both a and b. Neither
// operand is modified. The result is ordered by a's comparison.
func Combine[S, T any](a, b *PriorityQueue[S, T]) *PriorityQueue[S, T] {
	return CombineFunc[S, T](a, b, nil)
}

// CombineFunc is like Combine but copies every entry with dup, which lets
// callers deep-copy scores or items. A nil dup copies by assignment.
func CombineFunc[S, T any](a, b *PriorityQueue[S, T], dup func(Entry[S, T]) Entry[S, T]) *PriorityQueue[S, T] {
	res := a.cloneWith(dup)
	res.Merge(b.cloneWith(dup))
	return res
}
