package topk

import (
	"fmt"

	"github.com/katalvlaran/pqkit/pq"
	"golang.org/x/exp/constraints"
)

// Selector retains the k best elements offered to it.
type Selector[T any] struct {
	k      int
	better func(a, b T) bool
	h      *pq.Heap[T] // root is the worst retained element
}

// New returns an empty selector of capacity k. better(a, b) must report
// whether a ranks strictly ahead of b.
func New[T any](k int, better func(a, b T) bool) (*Selector[T], error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", ErrInvalidArgument, k)
	}
	if better == nil {
		return nil, fmt.Errorf("%w: nil ranking policy", ErrInvalidArgument)
	}

	return &Selector[T]{
		k:      k,
		better: better,
		// a sits above b when b outranks it, so the root is the weakest survivor.
		h: pq.New(func(a, b T) bool { return better(b, a) }),
	}, nil
}

// NewLargest returns a selector of the k largest values.
func NewLargest[T constraints.Ordered](k int) (*Selector[T], error) {
	return New(k, func(a, b T) bool { return a > b })
}

// NewSmallest returns a selector of the k smallest values.
func NewSmallest[T constraints.Ordered](k int) (*Selector[T], error) {
	return New(k, func(a, b T) bool { return a < b })
}

// K returns the capacity of the selector.
func (s *Selector[T]) K() int { return s.k }

// Len returns the number of retained elements, never more than K.
func (s *Selector[T]) Len() int { return s.h.Len() }

// Offer considers v for membership. While fewer than k elements are held v is
// always kept; afterwards it replaces the root only if it is strictly better.
// It returns the root once the selector is full, or false while it is not.
func (s *Selector[T]) Offer(v T) (T, bool) {
	if s.h.Len() < s.k {
		s.h.Push(v)
	} else if root, _ := s.h.Peek(); s.better(v, root) {
		s.h.ReplaceTop(v)
	}

	return s.Root()
}

// Root returns the worst retained element (the k-th best) once k elements
// are held.
func (s *Selector[T]) Root() (T, bool) {
	if s.h.Len() < s.k {
		var zero T
		return zero, false
	}

	return s.h.Peek()
}

// ExtractSorted drains the selector and returns its elements best-first.
// The selector is empty afterward and can be reused.
func (s *Selector[T]) ExtractSorted() []T {
	out := s.h.Drain() // worst-first
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}

	return out
}

// Largest returns the k largest values of values, largest first. If k exceeds
// len(values) every value is returned.
func Largest[T constraints.Ordered](values []T, k int) ([]T, error) {
	s, err := NewLargest[T](k)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		s.Offer(v)
	}

	return s.ExtractSorted(), nil
}

// Smallest returns the k smallest values of values, smallest first.
func Smallest[T constraints.Ordered](values []T, k int) ([]T, error) {
	s, err := NewSmallest[T](k)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		s.Offer(v)
	}

	return s.ExtractSorted(), nil
}
