package pq

import "golang.org/x/exp/constraints"

// Heap is a binary heap of T ordered by less. The zero value is not usable;
// construct one with New, NewMin, NewMax or From.
type Heap[T any] struct {
	items []T
	less  func(a, b T) bool
}

// New returns an empty heap whose root is the minimum according to less.
func New[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{less: less}
}

// NewMin returns an empty min-heap of an ordered type.
func NewMin[T constraints.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return a < b })
}

// NewMax returns an empty max-heap of an ordered type.
func NewMax[T constraints.Ordered]() *Heap[T] {
	return New(func(a, b T) bool { return a > b })
}

// From builds a heap from a copy of items in O(n). The input slice is not modified.
func From[T any](items []T, less func(a, b T) bool) *Heap[T] {
	h := &Heap[T]{
		items: append(make([]T, 0, len(items)), items...),
		less:  less,
	}
	// Sift every internal node down, from the last parent to the root.
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.down(i)
	}

	return h
}

// Len returns the number of items in the heap.
func (h *Heap[T]) Len() int { return len(h.items) }

// Push adds v to the heap.
func (h *Heap[T]) Push(v T) {
	h.items = append(h.items, v)
	h.up(len(h.items) - 1)
}

// Peek returns the root without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}

	return h.items[0], true
}

// Pop removes and returns the root.
func (h *Heap[T]) Pop() (T, bool) {
	n := len(h.items)
	if n == 0 {
		var zero T
		return zero, false
	}

	root := h.items[0]
	h.items[0] = h.items[n-1]
	var zero T
	h.items[n-1] = zero // drop the reference held by the vacated slot
	h.items = h.items[:n-1]
	if len(h.items) > 0 {
		h.down(0)
	}

	return root, true
}

// ReplaceTop swaps the root for v and restores the heap order with a single
// sift. It returns the old root, or pushes v and returns false when the heap
// was empty.
func (h *Heap[T]) ReplaceTop(v T) (T, bool) {
	if len(h.items) == 0 {
		h.Push(v)
		var zero T
		return zero, false
	}

	old := h.items[0]
	h.items[0] = v
	h.down(0)

	return old, true
}

// Drain pops every item and returns them in pop order. The heap is empty afterward.
func (h *Heap[T]) Drain() []T {
	out := make([]T, 0, len(h.items))
	for len(h.items) > 0 {
		v, _ := h.Pop()
		out = append(out, v)
	}

	return out
}

// up moves the element at j toward the root until its parent is not greater.
func (h *Heap[T]) up(j int) {
	for j > 0 {
		i := (j - 1) / 2 // parent
		if !h.less(h.items[j], h.items[i]) {
			break
		}
		h.items[i], h.items[j] = h.items[j], h.items[i]
		j = i
	}
}

// down sinks the element at i toward the leaves until no child is smaller.
func (h *Heap[T]) down(i int) {
	n := len(h.items)
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1
		if j2 := j1 + 1; j2 < n && h.less(h.items[j2], h.items[j1]) {
			j = j2
		}
		if !h.less(h.items[j], h.items[i]) {
			break
		}
		h.items[i], h.items[j] = h.items[j], h.items[i]
		i = j
	}
}
