package coverrange_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/pqkit/coverrange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteForce tries every candidate Lo drawn from the inputs and, for each,
// the smallest Hi that covers all sources.
func bruteForce(sources [][]int) coverrange.Range[int] {
	var best coverrange.Range[int]
	found := false
	for _, src := range sources {
		for _, lo := range src {
			hi := lo
			ok := true
			for _, other := range sources {
				i := sort.SearchInts(other, lo)
				if i == len(other) {
					ok = false
					break
				}
				if other[i] > hi {
					hi = other[i]
				}
			}
			if !ok {
				continue
			}
			cand := coverrange.Range[int]{Lo: lo, Hi: hi}
			if !found || coverrange.Narrower(cand, best) {
				best, found = cand, true
			}
		}
	}
	return best
}

// TestSmallest_Example covers the canonical three-list input.
func TestSmallest_Example(t *testing.T) {
	got, err := coverrange.Smallest([][]int{
		{4, 10, 15, 24, 26},
		{0, 9, 12, 20},
		{5, 18, 22, 30},
	})
	require.NoError(t, err)
	assert.Equal(t, coverrange.Range[int]{Lo: 20, Hi: 24}, got)
	assert.Equal(t, 4, got.Width())
	assert.Equal(t, "[20,24]", got.String())
}

// TestNarrower exercises the policy in isolation: width first, then smaller Lo.
func TestNarrower(t *testing.T) {
	assert.True(t, coverrange.Narrower(coverrange.Range[int]{Lo: 10, Hi: 12}, coverrange.Range[int]{Lo: 1, Hi: 5}),
		"narrower range wins regardless of position")
	assert.True(t, coverrange.Narrower(coverrange.Range[int]{Lo: 1, Hi: 5}, coverrange.Range[int]{Lo: 2, Hi: 6}),
		"equal width: smaller Lo wins")
	assert.False(t, coverrange.Narrower(coverrange.Range[int]{Lo: 2, Hi: 6}, coverrange.Range[int]{Lo: 1, Hi: 5}))
	assert.False(t, coverrange.Narrower(coverrange.Range[int]{Lo: 1, Hi: 5}, coverrange.Range[int]{Lo: 1, Hi: 5}),
		"policy must be strict")
}

// TestSmallest_EqualWidthTie offers exactly [1,5] and [2,6] (both width 4).
func TestSmallest_EqualWidthTie(t *testing.T) {
	got, err := coverrange.Smallest([][]int{{1, 6}, {5}, {2}})
	require.NoError(t, err)
	assert.Equal(t, coverrange.Range[int]{Lo: 1, Hi: 5}, got)
}

// TestSmallest_AdvancesUntilExhausted keeps improving until a source runs out.
func TestSmallest_AdvancesUntilExhausted(t *testing.T) {
	// Candidates in visiting order: [0,10], [3,10], [7,10], [8,10]; then {0,3,7,8} is exhausted.
	got, err := coverrange.Smallest([][]int{{0, 3, 7, 8}, {10, 11}})
	require.NoError(t, err)
	assert.Equal(t, coverrange.Range[int]{Lo: 8, Hi: 10}, got)
}

// TestSmallest_SingleSource returns a zero-width range at its first element.
func TestSmallest_SingleSource(t *testing.T) {
	got, err := coverrange.Smallest([][]int{{3, 8, 9}})
	require.NoError(t, err)
	assert.Equal(t, coverrange.Range[int]{Lo: 3, Hi: 3}, got)
}

// TestSmallest_SharedValue returns a zero-width range when all sources share a value.
func TestSmallest_SharedValue(t *testing.T) {
	got, err := coverrange.Smallest([][]int{{1, 2, 3}, {1, 2, 3}, {1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, coverrange.Range[int]{Lo: 1, Hi: 1}, got)
}

// TestSmallest_Floats works on floating-point sources.
func TestSmallest_Floats(t *testing.T) {
	got, err := coverrange.Smallest([][]float64{{0.5, 2.5}, {2.0, 9.0}})
	require.NoError(t, err)
	assert.Equal(t, coverrange.Range[float64]{Lo: 2.0, Hi: 2.5}, got)
}

// TestNarrower_FullIntegerRange compares widths that do not fit in T.
func TestNarrower_FullIntegerRange(t *testing.T) {
	full := coverrange.Range[int8]{Lo: -128, Hi: 127}
	assert.True(t, coverrange.Narrower(coverrange.Range[int8]{Lo: 0, Hi: 127}, full))
	assert.False(t, coverrange.Narrower(full, coverrange.Range[int8]{Lo: -1, Hi: 126}))
}

// TestSmallest_IntegerLimits covers sources spanning the whole value range of their type.
func TestSmallest_IntegerLimits(t *testing.T) {
	t.Run("int8", func(t *testing.T) {
		got, err := coverrange.Smallest([][]int8{{-128, 0}, {127}})
		require.NoError(t, err)
		assert.Equal(t, coverrange.Range[int8]{Lo: 0, Hi: 127}, got)
	})
	t.Run("int8 lower end", func(t *testing.T) {
		got, err := coverrange.Smallest([][]int8{{-128}, {-1, 127}})
		require.NoError(t, err)
		assert.Equal(t, coverrange.Range[int8]{Lo: -128, Hi: -1}, got)
	})
	t.Run("int", func(t *testing.T) {
		got, err := coverrange.Smallest([][]int{{math.MinInt, 0}, {math.MaxInt}})
		require.NoError(t, err)
		assert.Equal(t, coverrange.Range[int]{Lo: 0, Hi: math.MaxInt}, got)
	})
	t.Run("int64", func(t *testing.T) {
		got, err := coverrange.Smallest([][]int64{{math.MinInt64, -5}, {math.MaxInt64}, {-3, math.MaxInt64}})
		require.NoError(t, err)
		assert.Equal(t, coverrange.Range[int64]{Lo: -5, Hi: math.MaxInt64}, got)
	})
	t.Run("uint8", func(t *testing.T) {
		got, err := coverrange.Smallest([][]uint8{{0, 200}, {255}})
		require.NoError(t, err)
		assert.Equal(t, coverrange.Range[uint8]{Lo: 200, Hi: 255}, got)
	})
}

// TestSmallest_NoCoveringRange rejects empty sources and empty input.
func TestSmallest_NoCoveringRange(t *testing.T) {
	_, err := coverrange.Smallest([][]int{{1, 2}, {}, {3}})
	assert.ErrorIs(t, err, coverrange.ErrNoCoveringRange)

	_, err = coverrange.Smallest[int](nil)
	assert.ErrorIs(t, err, coverrange.ErrNoCoveringRange)
}

// TestSmallest_RandomizedAgainstBruteForce compares against an exhaustive search.
func TestSmallest_RandomizedAgainstBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for round := 0; round < 300; round++ {
		k := 1 + r.Intn(5)
		sources := make([][]int, k)
		for i := range sources {
			n := 1 + r.Intn(8)
			src := make([]int, n)
			for j := range src {
				src[j] = r.Intn(30)
			}
			sort.Ints(src)
			sources[i] = src
		}

		got, err := coverrange.Smallest(sources)
		require.NoError(t, err)
		assert.Equal(t, bruteForce(sources), got, "round %d sources %v", round, sources)
	}
}
