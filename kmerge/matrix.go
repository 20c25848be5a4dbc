package kmerge

import (
	"fmt"

	"github.com/katalvlaran/pqkit/pq"
	"golang.org/x/exp/constraints"
)

// KthSmallestInMatrix returns the k-th smallest value (1-based) across the
// rows of matrix, where every row is sorted ascending. Rows may differ in
// length; empty rows are skipped.
//
// Errors: ErrInvalidArgument if k < 1 or k exceeds the number of values.
//
// Complexity: O(K + k log K) for K rows.
func KthSmallestInMatrix[T constraints.Ordered](matrix [][]T, k int) (T, error) {
	var zero T
	total := 0
	for _, row := range matrix {
		total += len(row)
	}
	if k < 1 || k > total {
		return zero, fmt.Errorf("%w: k=%d outside [1, %d]", ErrInvalidArgument, k, total)
	}

	h := pq.New(CursorLess(func(a, b T) bool { return a < b }))
	for i, row := range matrix {
		if len(row) > 0 {
			h.Push(Cursor[T]{Value: row[0], Source: i})
		}
	}
	// Discard the k-1 smallest; the root is then the answer.
	for ; k > 1; k-- {
		c, _ := h.Peek()
		if next := c.Pos + 1; next < len(matrix[c.Source]) {
			h.ReplaceTop(Cursor[T]{Value: matrix[c.Source][next], Source: c.Source, Pos: next})
		} else {
			h.Pop()
		}
	}
	c, _ := h.Peek()

	return c.Value, nil
}
