// Package coverrange finds the smallest interval [Lo, Hi] containing at least
// one element from each of K sorted sequences.
//
// Algorithm
//
//  1. Push a cursor for the first element of every source into a min-heap and
//     remember the largest of those first elements (curMax).
//  2. While the heap holds exactly K cursors:
//     a. the root value is curMin, and [curMin, curMax] covers every source;
//     b. keep it if it is Narrower than the best so far;
//     c. pop the root and push the next element of its source, raising curMax
//     if needed. When that source is exhausted, stop: no later window can
//     include it.
//  3. Return the best range.
//
// Advancing the global minimum is the only move that can shrink the window.
// Advancing any other cursor leaves curMin in place and can only raise
// curMax, and because sources are non-decreasing a popped value never comes
// back as a smaller candidate.
//
// Tie-break: among ranges of equal width the one with the smaller Lo wins
// (see Narrower).
//
// Complexity: O(N log K) time, O(K) space for N total elements.
//
// Errors:
//
//   - ErrNoCoveringRange: no sources, or at least one empty source.
package coverrange
