package median_test

import (
	"fmt"

	"github.com/katalvlaran/pqkit/median"
)

// ExampleTracker feeds a short stream and prints the median after each value.
func ExampleTracker() {
	tr := median.New[int]()
	for _, v := range []int{2, 3, 4} {
		tr.Add(v)
		m, _ := tr.Median()
		fmt.Printf("%.1f ", m)
	}
	fmt.Println()
	// Output: 2.0 2.5 3.0
}

// ExampleTracker_Median_empty shows the error returned before any value arrives.
func ExampleTracker_Median_empty() {
	_, err := median.New[float64]().Median()
	fmt.Println(err)
	// Output: median: no values added
}
