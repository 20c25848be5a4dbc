package kmerge

import (
	"iter"

	"github.com/katalvlaran/pqkit/pq"
)

// Seq lazily merges sorted sequences. Each input is pulled one element at a
// time, so at most one buffered value per source is held. Iteration stops as
// soon as the consumer stops, and every input is released.
func Seq[T any](less func(a, b T) bool, seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		nexts := make([]func() (T, bool), len(seqs))
		h := pq.New(CursorLess(less))
		for i, s := range seqs {
			next, stop := iter.Pull(s)
			defer stop()
			nexts[i] = next
			if v, ok := next(); ok {
				h.Push(Cursor[T]{Value: v, Source: i})
			}
		}

		for h.Len() > 0 {
			c, _ := h.Peek()
			if !yield(c.Value) {
				return
			}
			if v, ok := nexts[c.Source](); ok {
				h.ReplaceTop(Cursor[T]{Value: v, Source: c.Source, Pos: c.Pos + 1})
			} else {
				h.Pop()
			}
		}
	}
}
