package kmerge

import "errors"

var (
	// ErrInvalidArgument indicates a malformed scalar parameter such as k out of range.
	ErrInvalidArgument = errors.New("kmerge: invalid argument")

	// ErrUnknownStrategy indicates Options.Strategy names no known strategy.
	ErrUnknownStrategy = errors.New("kmerge: unknown merge strategy")
)

// Cursor is the next unconsumed element of one source: its value, the index
// of the source and the position of the value within that source.
type Cursor[T any] struct {
	Value  T
	Source int
	Pos    int
}

// CursorLess lifts an element ordering to cursors.
func CursorLess[T any](less func(a, b T) bool) func(a, b Cursor[T]) bool {
	return func(a, b Cursor[T]) bool { return less(a.Value, b.Value) }
}

// Strategy selects the merge algorithm used by Compute.
type Strategy string

const (
	// StrategyHeap merges with a min-heap of one cursor per source.
	StrategyHeap Strategy = "heap"

	// StrategyPairwise merges by recursive halving and two-pointer merges.
	StrategyPairwise Strategy = "pairwise"
)

// Options configures Compute.
type Options struct {
	// Strategy is StrategyHeap or StrategyPairwise.
	Strategy Strategy
}

// Option modifies Options.
type Option func(*Options)

// WithStrategy sets the merge strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// DefaultOptions returns Options using the heap strategy.
func DefaultOptions() Options {
	return Options{Strategy: StrategyHeap}
}
