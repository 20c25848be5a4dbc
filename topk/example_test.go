package topk_test

import (
	"fmt"

	"github.com/katalvlaran/pqkit/topk"
)

// ExampleSelector_Offer streams values through a 3-largest selector and
// prints the running 3rd largest once it exists.
func ExampleSelector_Offer() {
	s, err := topk.NewLargest[int](3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range []int{4, 5, 8, 2, 3, 10} {
		if root, full := s.Offer(v); full {
			fmt.Printf("after %d: %d\n", v, root)
		}
	}
	fmt.Println(s.ExtractSorted())
	// Output:
	// after 8: 4
	// after 2: 4
	// after 3: 4
	// after 10: 5
	// [10 8 5]
}

// ExampleTopKFrequentWords shows the frequency-then-lexicographic ranking.
func ExampleTopKFrequentWords() {
	words := []string{"i", "love", "leetcode", "i", "love", "coding"}
	top, err := topk.TopKFrequentWords(words, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(top)
	// Output: [i love coding]
}

// ExampleKthLargest_invalid shows the error for an out-of-range k.
func ExampleKthLargest_invalid() {
	_, err := topk.KthLargest([]int{1, 2, 3}, 0)
	fmt.Println(err)
	// Output: topk: invalid argument: k must be positive, got 0
}
