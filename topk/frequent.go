package topk

// TopKFrequent returns the k most frequent items, most frequent first. Items
// with equal counts are ordered by tieBreak; with a nil tieBreak their
// relative order is unspecified. If k exceeds the number of distinct items,
// every distinct item is returned.
//
// Complexity: O(N + D log k) where D is the number of distinct items.
func TopKFrequent[T comparable](items []T, k int, tieBreak func(a, b T) bool) ([]T, error) {
	counted, err := topCounted(items, k, ByFrequency(tieBreak))
	if err != nil {
		return nil, err
	}
	out := make([]T, len(counted))
	for i, c := range counted {
		out[i] = c.Item
	}

	return out, nil
}

// TopKFrequentWords returns the k most frequent words ranked by
// ByFrequencyThenLex: higher count first, equal counts in lexicographic order.
func TopKFrequentWords(words []string, k int) ([]string, error) {
	counted, err := topCounted(words, k, ByFrequencyThenLex)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(counted))
	for i, c := range counted {
		out[i] = c.Item
	}

	return out, nil
}

// topCounted counts occurrences and selects the k best counts under better.
func topCounted[T comparable](items []T, k int, better func(a, b Counted[T]) bool) ([]Counted[T], error) {
	sel, err := New(k, better)
	if err != nil {
		return nil, err
	}

	counts := make(map[T]int, len(items))
	for _, it := range items {
		counts[it]++
	}
	for it, c := range counts {
		sel.Offer(Counted[T]{Item: it, Count: c})
	}

	return sel.ExtractSorted(), nil
}

// KClosest returns the k points nearest to the origin, nearest first. Points
// at equal distance are returned in unspecified relative order.
func KClosest(points []Point, k int) ([]Point, error) {
	sel, err := New(k, CloserToOrigin)
	if err != nil {
		return nil, err
	}
	for _, p := range points {
		sel.Offer(p)
	}

	return sel.ExtractSorted(), nil
}
