package coverrange

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/katalvlaran/pqkit/kmerge"
	"github.com/katalvlaran/pqkit/pq"
	"golang.org/x/exp/constraints"
)

// ErrNoCoveringRange indicates that no interval can cover every source,
// because a source is empty or there are no sources at all.
var ErrNoCoveringRange = errors.New("coverrange: no covering range")

// Number is the set of element types whose ranges have a measurable width.
type Number interface {
	constraints.Integer | constraints.Float
}

// Range is the closed interval [Lo, Hi].
type Range[T Number] struct {
	Lo, Hi T
}

// Width returns Hi - Lo. For integer T the result wraps when the range is
// wider than T can hold, e.g. [-128,127] of int8.
func (r Range[T]) Width() T { return r.Hi - r.Lo }

// String formats the range as [Lo,Hi].
func (r Range[T]) String() string { return fmt.Sprintf("[%v,%v]", r.Lo, r.Hi) }

// Narrower reports whether a beats b: a is strictly narrower, or equally wide
// with a smaller Lo.
func Narrower[T Number](a, b Range[T]) bool {
	if c := compareWidth(a, b); c != 0 {
		return c < 0
	}

	return a.Lo < b.Lo
}

// compareWidth orders a and b by exact width. Integer widths are taken in
// uint64, where Hi - Lo cannot overflow since Hi >= Lo.
func compareWidth[T Number](a, b Range[T]) int {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return cmp.Compare(float64(a.Hi)-float64(a.Lo), float64(b.Hi)-float64(b.Lo))
	}

	return cmp.Compare(uint64(a.Hi)-uint64(a.Lo), uint64(b.Hi)-uint64(b.Lo))
}

// Smallest returns the narrowest range containing at least one element of
// every source. Each source must be sorted ascending.
func Smallest[T Number](sources [][]T) (Range[T], error) {
	if len(sources) == 0 {
		return Range[T]{}, fmt.Errorf("%w: no sources", ErrNoCoveringRange)
	}
	for i, src := range sources {
		if len(src) == 0 {
			return Range[T]{}, fmt.Errorf("%w: source %d is empty", ErrNoCoveringRange, i)
		}
	}

	k := len(sources)
	h := pq.New(kmerge.CursorLess(func(a, b T) bool { return a < b }))
	curMax := sources[0][0]
	for i, src := range sources {
		h.Push(kmerge.Cursor[T]{Value: src[0], Source: i})
		if src[0] > curMax {
			curMax = src[0]
		}
	}

	root, _ := h.Peek()
	best := Range[T]{Lo: root.Value, Hi: curMax}
	for h.Len() == k {
		c, _ := h.Peek()
		if cand := (Range[T]{Lo: c.Value, Hi: curMax}); Narrower(cand, best) {
			best = cand
		}

		src := sources[c.Source]
		next := c.Pos + 1
		if next == len(src) {
			h.Pop() // the source is exhausted, so the heap drops below k and the loop ends
			continue
		}
		v := src[next]
		h.ReplaceTop(kmerge.Cursor[T]{Value: v, Source: c.Source, Pos: next})
		if v > curMax {
			curMax = v
		}
	}

	return best, nil
}
