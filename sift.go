package priq

// The store is a binary tree laid out in a slice: the children of i live at
// 2i+1 and 2i+2, its parent at (i-1)/2.
func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

func (pq *PriorityQueue[S, T]) swap(i, j int) {
	pq.data[i], pq.data[j] = pq.data[j], pq.data[i]
}

// orderable reports whether s can be compared with itself. Scores that
// cannot (NaN) are kept below every orderable score.
func (pq *PriorityQueue[S, T]) orderable(s S) bool {
	return pq.cmp(s, s) != Incomparable
}

// before reports whether the entry at i should sit above the entry at j.
// Equal scores never swap, so a new entry settles at the first slot that
// satisfies the heap order.
func (pq *PriorityQueue[S, T]) before(i, j int) bool {
	a, b := pq.data[i].Score, pq.data[j].Score
	switch pq.cmp(a, b) {
	case Less:
		return true
	case Incomparable:
		return pq.orderable(a) && !pq.orderable(b)
	default:
		return false
	}
}

// up moves the entry at i towards the root until its parent ranks before
// it, compares equal, or cannot be compared with it.
func (pq *PriorityQueue[S, T]) up(i int) {
	for i > 0 {
		p := parent(i)
		if !pq.before(i, p) {
			break
		}
		pq.swap(i, p)
		i = p
	}
}

// down moves the entry at i away from the root. Only children that rank
// before the entry are candidates; between two candidates the right child
// wins only if it ranks before the left one. A node whose children are all
// incomparable with it stays where it is.
func (pq *PriorityQueue[S, T]) down(i int) {
	n := len(pq.data)
	for {
		l := left(i)
		if l >= n {
			return
		}
		j := -1
		if pq.before(l, i) {
			j = l
		}
		if r := right(i); r < n && pq.before(r, i) {
			if j < 0 || pq.before(r, l) {
				j = r
			}
		}
		if j < 0 {
			return
		}
		pq.swap(i, j)
		i = j
	}
}

// heapify establishes the heap order over the whole slice bottom-up.
func (pq *PriorityQueue[S, T]) heapify() {
	for i := len(pq.data)/2 - 1; i >= 0; i-- {
		pq.down(i)
	}
}
