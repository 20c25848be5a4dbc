package topk

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// KthLargest returns the k-th largest value of values (k = 1 is the maximum).
// Duplicates count separately: the 2nd largest of [3, 3] is 3.
//
// Errors: ErrInvalidArgument if k ≤ 0 or k > len(values).
//
// Complexity: O(N log k) time, O(k) space.
func KthLargest[T constraints.Ordered](values []T, k int) (T, error) {
	var zero T
	if k > len(values) {
		return zero, fmt.Errorf("%w: k=%d exceeds %d values", ErrInvalidArgument, k, len(values))
	}
	s, err := NewLargest[T](k)
	if err != nil {
		return zero, err
	}
	for _, v := range values {
		s.Offer(v)
	}
	root, _ := s.Root()

	return root, nil
}

// KthLargestStream answers "what is the k-th largest value so far" after
// every Add.
type KthLargestStream[T constraints.Ordered] struct {
	sel *Selector[T]
}

// NewKthLargestStream returns a stream tracker seeded with initial.
func NewKthLargestStream[T constraints.Ordered](k int, initial []T) (*KthLargestStream[T], error) {
	sel, err := NewLargest[T](k)
	if err != nil {
		return nil, err
	}
	for _, v := range initial {
		sel.Offer(v)
	}

	return &KthLargestStream[T]{sel: sel}, nil
}

// Add records v and returns the current k-th largest value, or false while
// fewer than k values have been seen.
func (s *KthLargestStream[T]) Add(v T) (T, bool) {
	return s.sel.Offer(v)
}
