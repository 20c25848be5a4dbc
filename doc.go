// Package pqkit is a small toolkit of priority-queue algorithms built on one
// generic binary heap.
//
// 🚀 What is pqkit?
//
//	A zero-surprise, allocation-aware library that brings together:
//		• Heap: generic binary heap with a caller-supplied ordering
//		• Top-k: bounded selection, k-th largest, most frequent, k closest
//		• Median: running median over two balanced heaps
//		• K-way merge: slices, linked lists, lazy iterators, sorted matrices
//		• Covering range: smallest range touching every sorted source
//
// ✨ Why choose pqkit?
//
//   - One heap, many algorithms: every package reuses pq.Heap
//   - Generic: any element type with a less function, numeric helpers for Ordered types
//   - Explicit errors: sentinel errors wrapped with context, checked via errors.Is
//
// Packages:
//
//	pq/        : Heap[T]: Push, Pop, Peek, ReplaceTop, Drain, O(n) From
//	topk/      : Selector[T], Largest/Smallest, KthLargest(Stream), TopKFrequent, KClosest
//	median/    : Tracker[T]: Add, Median, Running
//	kmerge/    : Merge, MergePairwise, Compute, MergeLists, Seq, KthSmallestInMatrix
//	coverrange/: Smallest covering Range over K sorted sources
//	cmd/pqkit/ : command-line front end for all of the above
//
// Quick example:
//
//	sources: [1 4 5] [1 3 4] [2 6]
//	kmerge.MergeOrdered(sources...) → [1 1 2 3 4 4 5 6]
//
//	go get github.com/katalvlaran/pqkit
package pqkit
