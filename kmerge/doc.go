// Package kmerge merges K independently sorted sequences into one sorted
// sequence.
//
// What & Why
//
//   - Heap strategy (Merge): keep one Cursor per non-empty source in a
//     min-heap. Pop the smallest, emit it, and push the next element of the
//     same source. The heap never holds more than K cursors, so merging N
//     elements costs O(N log K) time and O(K) extra space.
//   - Pairwise strategy (MergePairwise): split the sources in half, merge each
//     half recursively, then merge the two results with two pointers. Same
//     output multiset, O(log K) recursion depth, better locality when K is
//     small and the sources are long.
//   - Compute dispatches between the two by Options.Strategy.
//
// Special cases handled by Merge:
//
//   - empty sources are skipped and never pushed
//   - all sources empty → empty (non-nil) result, not an error
//   - one non-empty source → a copy of it
//   - two non-empty sources → MergeTwo, no heap at all
//
// The same cursor heap also backs MergeLists (linked lists, relinked in
// place), Seq (lazy merge of iter.Seq values) and KthSmallestInMatrix.
//
// Inputs are never modified, except that MergeLists reuses the input nodes.
// Stability across sources is not guaranteed; equal elements from different
// sources may interleave in any order.
package kmerge
