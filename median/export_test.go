package median

// Sizes exposes the heap sizes so tests can check the balance invariant.
func (t *Tracker[T]) Sizes() (lower, upper int) {
	return t.lower.Len(), t.upper.Len()
}

// Halves exposes the heap roots so tests can check the ordering invariant.
func (t *Tracker[T]) Halves() (maxLower, minUpper T, hasUpper bool) {
	maxLower, _ = t.lower.Peek()
	minUpper, hasUpper = t.upper.Peek()
	return maxLower, minUpper, hasUpper
}
