package priq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityQueue_All(t *testing.T) {
	pq := From(Natural[int](), []Entry[int, int]{{5, 55}, {1, 11}, {4, 44}})

	collect := func() map[int]int {
		m := make(map[int]int)
		for s, item := range pq.All() {
			m[s] = item
		}
		return m
	}
	want := map[int]int{1: 11, 4: 44, 5: 55}
	assert.Equal(t, want, collect())
	assert.Equal(t, want, collect(), "iterator must be restartable")
	assert.Equal(t, 3, pq.Len())

	t.Run("storage order", func(t *testing.T) {
		var scores []int
		for s := range pq.All() {
			scores = append(scores, s)
		}
		assert.Equal(t, []int{1, 5, 4}, scores)
	})

	t.Run("early stop", func(t *testing.T) {
		n := 0
		for range pq.All() {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})
}

func TestPriorityQueue_Drain(t *testing.T) {
	pq := From(Natural[int](), []Entry[int, int]{{5, 55}, {1, 11}, {4, 44}})
	out := pq.Drain()
	assert.True(t, pq.IsEmpty())
	assert.ElementsMatch(t, []Entry[int, int]{{5, 55}, {1, 11}, {4, 44}}, out)

	pq.Put(2, 22)
	assert.Equal(t, 1, pq.Len())
	assert.Len(t, out, 3, "drained slice must not be reused")
}

func TestPriorityQueue_DrainSorted(t *testing.T) {
	pq := From(Natural[int](), []Entry[int, int]{{5, 55}, {1, 11}, {4, 44}})
	out := pq.DrainSorted()
	assert.True(t, pq.IsEmpty())
	assert.Equal(t, []Entry[int, int]{{1, 11}, {4, 44}, {5, 55}}, out)
}

func TestPriorityQueue_Truncate(t *testing.T) {
	t.Run("keeps prefix", func(t *testing.T) {
		pq := From(Natural[int](), []Entry[int, int]{{5, 55}, {1, 11}, {4, 44}, {2, 22}, {7, 77}, {8, 88}})
		pq.Truncate(3)
		assert.Equal(t, 3, pq.Len())
		requireHeapOrder(t, pq)

		top, ok := pq.Peek()
		require.True(t, ok)
		assert.Equal(t, 11, top.Item)
	})

	t.Run("larger than len", func(t *testing.T) {
		pq := From(Natural[int](), []Entry[int, int]{{4, 44}, {2, 22}, {7, 77}, {8, 88}})
		pq.Truncate(5)
		assert.Equal(t, 4, pq.Len())
	})

	t.Run("negative", func(t *testing.T) {
		pq := From(Natural[int](), []Entry[int, int]{{4, 44}, {2, 22}})
		pq.Truncate(-1)
		assert.True(t, pq.IsEmpty())
	})
}

func TestPriorityQueue_Clear(t *testing.T) {
	pq := NewWithCapacity[uint8, string](Natural[uint8](), 8)
	pq.Put(1, "Erti")
	pq.Put(2, "Ori")
	pq.Put(3, "Sami")
	pq.Put(4, "Otxi")

	pq.Clear()
	assert.True(t, pq.IsEmpty())
	assert.Equal(t, 8, pq.Cap())
	assert.Equal(t, "", pq.data[:4][0].Item)

	pq.Put(9, "Cxra")
	top, _ := pq.Peek()
	assert.Equal(t, "Cxra", top.Item)
}
