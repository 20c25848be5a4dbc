package kmerge_test

import (
	"testing"

	"github.com/katalvlaran/pqkit/kmerge"
	"github.com/stretchr/testify/assert"
)

// TestFromSliceValues round-trips a list, including the empty case.
func TestFromSliceValues(t *testing.T) {
	assert.Nil(t, kmerge.FromSlice([]int{}))
	assert.Equal(t, []int{}, (*kmerge.ListNode[int])(nil).Values())
	assert.Equal(t, []int{3, 1, 2}, kmerge.FromSlice([]int{3, 1, 2}).Values())
}

// TestMergeLists merges the classic three lists.
func TestMergeLists(t *testing.T) {
	lists := []*kmerge.ListNode[int]{
		kmerge.FromSlice([]int{1, 4, 5}),
		kmerge.FromSlice([]int{1, 3, 4}),
		kmerge.FromSlice([]int{2, 6}),
	}
	got := kmerge.MergeLists(lists, intLess)
	assert.Equal(t, []int{1, 1, 2, 3, 4, 4, 5, 6}, got.Values())
}

// TestMergeLists_Empty handles no lists and nil lists.
func TestMergeLists_Empty(t *testing.T) {
	assert.Nil(t, kmerge.MergeLists[int](nil, intLess))
	assert.Nil(t, kmerge.MergeLists([]*kmerge.ListNode[int]{nil, nil}, intLess))
}

// TestMergeLists_ReusesNodes checks that no node is allocated.
func TestMergeLists_ReusesNodes(t *testing.T) {
	a := kmerge.FromSlice([]int{2})
	b := kmerge.FromSlice([]int{1, 3})
	got := kmerge.MergeLists([]*kmerge.ListNode[int]{a, nil, b}, intLess)

	assert.Same(t, b, got, "head must be the node holding 1")
	assert.Same(t, a, got.Next)
	assert.Equal(t, []int{1, 2, 3}, got.Values())
}
