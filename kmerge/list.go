package kmerge

import "github.com/katalvlaran/pqkit/pq"

// ListNode is a node of a singly linked list.
type ListNode[T any] struct {
	Val  T
	Next *ListNode[T]
}

// FromSlice builds a linked list holding vals in order. It returns nil for an
// empty slice.
func FromSlice[T any](vals []T) *ListNode[T] {
	var head *ListNode[T]
	for i := len(vals) - 1; i >= 0; i-- {
		head = &ListNode[T]{Val: vals[i], Next: head}
	}

	return head
}

// Values returns the values of the list starting at n. A nil list yields an
// empty slice.
func (n *ListNode[T]) Values() []T {
	out := []T{}
	for ; n != nil; n = n.Next {
		out = append(out, n.Val)
	}

	return out
}

// MergeLists merges sorted linked lists by relinking their nodes; no node is
// allocated. Nil lists are skipped. The input lists must not be used
// afterwards.
//
// Complexity: O(N log K) time, O(K) space.
func MergeLists[T any](lists []*ListNode[T], less func(a, b T) bool) *ListNode[T] {
	h := pq.New(func(a, b *ListNode[T]) bool { return less(a.Val, b.Val) })
	for _, l := range lists {
		if l != nil {
			h.Push(l)
		}
	}

	var dummy ListNode[T]
	tail := &dummy
	for h.Len() > 0 {
		n, _ := h.Peek()
		tail.Next = n
		tail = n
		if n.Next != nil {
			h.ReplaceTop(n.Next)
		} else {
			h.Pop()
		}
	}
	tail.Next = nil

	return dummy.Next
}
