package median

import (
	"errors"

	"github.com/katalvlaran/pqkit/pq"
	"golang.org/x/exp/constraints"
)

// ErrEmptyState indicates that Median was called before any value was added.
var ErrEmptyState = errors.New("median: no values added")

// Number is the set of element types a Tracker can average.
type Number interface {
	constraints.Integer | constraints.Float
}

// Tracker keeps a running median over the values passed to Add.
type Tracker[T Number] struct {
	lower *pq.Heap[T] // max-heap, smaller half
	upper *pq.Heap[T] // min-heap, larger half
}

// New returns an empty tracker.
func New[T Number]() *Tracker[T] {
	return &Tracker[T]{
		lower: pq.NewMax[T](),
		upper: pq.NewMin[T](),
	}
}

// Add inserts v.
func (t *Tracker[T]) Add(v T) {
	// 1) Everything enters through lower.
	t.lower.Push(v)

	// 2) lower's maximum crosses over, so lower ≤ upper holds again.
	top, _ := t.lower.Pop()
	t.upper.Push(top)

	// 3) Restore the size balance in favour of lower.
	if t.upper.Len() > t.lower.Len() {
		low, _ := t.upper.Pop()
		t.lower.Push(low)
	}
}

// Len returns the number of values added so far.
func (t *Tracker[T]) Len() int { return t.lower.Len() + t.upper.Len() }

// Median returns the median of all values added so far.
func (t *Tracker[T]) Median() (float64, error) {
	lo, ok := t.lower.Peek()
	if !ok {
		return 0, ErrEmptyState
	}
	if t.lower.Len() > t.upper.Len() {
		return float64(lo), nil
	}
	hi, _ := t.upper.Peek()

	return float64(lo)/2 + float64(hi)/2, nil
}

// Running returns the median after each value of values in turn.
func Running[T Number](values []T) []float64 {
	t := New[T]()
	out := make([]float64, len(values))
	for i, v := range values {
		t.Add(v)
		out[i], _ = t.Median()
	}

	return out
}
