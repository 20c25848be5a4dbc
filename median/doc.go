// Package median maintains the running median of an unbounded numeric stream
// with two heaps.
//
// 🚀 How it works
//
//	lower: max-heap holding the smaller half
//	upper: min-heap holding the larger half
//
//	Invariants after every Add:
//	  • every value in lower ≤ every value in upper
//	  • lower.Len() == upper.Len() or lower.Len() == upper.Len()+1
//
// Add never compares the incoming value against both roots. It always pushes
// into lower, moves lower's maximum into upper, and moves upper's minimum back
// if upper became larger. The heaps themselves decide where the value lands.
//
// Median is then lower's root for an odd count, or the mean of both roots for
// an even count, computed in float64 so integer inputs cannot overflow.
//
// Complexity:
//
//   - Add:    O(log N)
//   - Median: O(1)
//   - Space:  O(N)
//
// Errors:
//
//   - ErrEmptyState: Median was requested before any value was added.
//
// A Tracker is not safe for concurrent use; guard it externally or give each
// stream its own instance.
package median
