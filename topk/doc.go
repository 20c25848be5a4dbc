// Package topk implements a bounded top-k selector and the classic problems
// built on it: k-th largest element, k-th largest in a stream, top-k frequent
// items/words and k closest points.
//
// What & Why
//
//   - Selector[T] keeps the k "best" elements seen so far according to a
//     caller-supplied better(a, b) policy, using a heap of at most k elements.
//   - The heap is inverted relative to the ranking: for "k largest" it is a
//     min-heap, so the root is the k-th largest, i.e. the worst retained
//     element. A new value only has to beat the root to get in, and the root is
//     exactly what must be evicted when it does.
//   - Offer returns the current root once the selector is full, which is the
//     answer to "k-th largest so far" in a stream.
//
// Complexity:
//
//   - Offer:          O(log k)
//   - N offers:       O(N log k) time, O(k) space
//   - ExtractSorted:  O(k log k), destructive
//
// Ties are resolved only by the better policy. The named policies
// ByFrequencyThenLex and CloserToOrigin are exported so their tie-break rules
// can be tested on their own.
//
// Errors:
//
//   - ErrInvalidArgument: k ≤ 0, a nil policy, or (KthLargest) k > len(values).
//
// A Selector is not safe for concurrent use; give each stream its own instance.
package topk
