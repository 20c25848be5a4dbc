// Package pq provides a generic binary heap ordered by an explicit comparator.
//
// Every other package in pqkit composes on top of Heap: the bounded top-k
// selector keeps its worst retained element at the root, the median tracker
// pairs a max-heap with a min-heap, and the k-way merge engine keeps one
// cursor per source.
//
// What & Why
//
//   - A Heap[T] is a complete binary tree laid out in a slice, where for the
//     node at index i the children live at 2i+1 and 2i+2.
//   - The root is always the element e for which less(e, x) holds against
//     every other x (ties in any order).
//   - The comparator is a plain func(a, b T) bool rather than an interface
//     method, so callers can name and unit-test ordering policies on their own
//     (for example "higher count first, then lexicographic").
//
// Complexity:
//
//   - Push, Pop, ReplaceTop: O(log n)
//   - Peek, Len:             O(1)
//   - From (heapify):        O(n)
//   - Drain:                 O(n log n)
//
// Pop and Peek on an empty heap return the zero value and false; they never
// panic. A Heap is not safe for concurrent mutation.
//
//	h := pq.NewMin[int]()
//	h.Push(5)
//	h.Push(1)
//	h.Push(3)
//	v, _ := h.Pop() // 1
package pq
