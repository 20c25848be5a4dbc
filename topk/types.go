package topk

import (
	"errors"
	"strings"
)

// ErrInvalidArgument indicates a malformed scalar parameter such as k ≤ 0.
var ErrInvalidArgument = errors.New("topk: invalid argument")

// Counted pairs an item with the number of times it occurred.
type Counted[T any] struct {
	Item  T
	Count int
}

// WordCount is a word with its occurrence count.
type WordCount = Counted[string]

// Point is an integer point in the plane.
type Point struct {
	X, Y int
}

// dist2 returns the squared Euclidean distance to the origin, widened to
// int64 so that large coordinates do not overflow.
func (p Point) dist2() int64 {
	x, y := int64(p.X), int64(p.Y)
	return x*x + y*y
}

// ByFrequencyThenLex ranks a ahead of b when it occurs more often, or when the
// counts are equal and a.Item sorts lexicographically before b.Item.
func ByFrequencyThenLex(a, b WordCount) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}

	return strings.Compare(a.Item, b.Item) < 0
}

// ByFrequency returns a policy ranking higher counts first and delegating
// equal counts to tieBreak. A nil tieBreak leaves ties unordered.
func ByFrequency[T any](tieBreak func(a, b T) bool) func(a, b Counted[T]) bool {
	return func(a, b Counted[T]) bool {
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if tieBreak == nil {
			return false
		}

		return tieBreak(a.Item, b.Item)
	}
}

// CloserToOrigin ranks a ahead of b when it is strictly closer to (0, 0).
func CloserToOrigin(a, b Point) bool {
	return a.dist2() < b.dist2()
}
