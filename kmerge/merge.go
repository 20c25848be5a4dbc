package kmerge

import (
	"fmt"

	"github.com/katalvlaran/pqkit/pq"
	"golang.org/x/exp/constraints"
)

// Merge merges sorted sources into one sorted slice using a heap of cursors.
// Each source must be sorted by less. The result has exactly as many
// elements as all sources together.
//
// Complexity: O(N log K) time, O(K) heap space besides the output.
func Merge[T any](sources [][]T, less func(a, b T) bool) []T {
	total := 0
	live := make([]int, 0, len(sources)) // indices of non-empty sources
	for i, src := range sources {
		if len(src) > 0 {
			total += len(src)
			live = append(live, i)
		}
	}

	switch len(live) {
	case 0:
		return []T{}
	case 1:
		return append(make([]T, 0, total), sources[live[0]]...)
	case 2:
		return MergeTwo(sources[live[0]], sources[live[1]], less)
	}

	out := make([]T, 0, total)
	h := pq.New(CursorLess(less))
	for _, i := range live {
		h.Push(Cursor[T]{Value: sources[i][0], Source: i})
	}
	for h.Len() > 0 {
		c, _ := h.Peek()
		out = append(out, c.Value)

		src := sources[c.Source]
		if next := c.Pos + 1; next < len(src) {
			// Advance in place: one sift instead of a pop followed by a push.
			h.ReplaceTop(Cursor[T]{Value: src[next], Source: c.Source, Pos: next})
		} else {
			h.Pop()
		}
	}

	return out
}

// MergeOrdered merges sources of an ordered type in ascending order.
func MergeOrdered[T constraints.Ordered](sources ...[]T) []T {
	return Merge(sources, func(a, b T) bool { return a < b })
}

// MergeTwo merges two sorted slices with two pointers. On ties the element of
// a comes first.
func MergeTwo[T any](a, b []T, less func(a, b T) bool) []T {
	out := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if less(b[j], a[i]) {
			out = append(out, b[j])
			j++
		} else {
			out = append(out, a[i])
			i++
		}
	}
	out = append(out, a[i:]...)

	return append(out, b[j:]...)
}

// MergePairwise merges sources by divide and conquer: each half is merged
// recursively and the two results are combined with MergeTwo.
//
// Complexity: O(N log K) time, O(log K) recursion depth.
func MergePairwise[T any](sources [][]T, less func(a, b T) bool) []T {
	switch len(sources) {
	case 0:
		return []T{}
	case 1:
		return append([]T{}, sources[0]...)
	}
	mid := len(sources) / 2

	return MergeTwo(MergePairwise(sources[:mid], less), MergePairwise(sources[mid:], less), less)
}

// Compute merges sources with the strategy selected by opts.
//
// Errors: ErrUnknownStrategy if the strategy is neither StrategyHeap nor
// StrategyPairwise.
func Compute[T any](sources [][]T, less func(a, b T) bool, opts ...Option) ([]T, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Strategy {
	case StrategyHeap:
		return Merge(sources, less), nil
	case StrategyPairwise:
		return MergePairwise(sources, less), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, cfg.Strategy)
	}
}
