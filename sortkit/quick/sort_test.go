// Copyright 2026 go-sortkit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package quick

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/ajroetker/go-sortkit/sortkit"
)

// TestSortEmpty tests sorting empty slices
func TestSortEmpty(t *testing.T) {
	var empty []float64
	Sort(empty)
	if len(empty) != 0 {
		t.Errorf("Sort(empty) should not modify empty slice")
	}
}

// TestSortSingle tests sorting single element slices
func TestSortSingle(t *testing.T) {
	data := []float64{42.0}
	Sort(data)
	if data[0] != 42.0 {
		t.Errorf("Sort([42]) = %v, want [42]", data)
	}
}

// TestSortConcrete pins a known input/output pair
func TestSortConcrete(t *testing.T) {
	data := []int64{5, 3, 8, 1, 9, 2}
	want := []int64{1, 2, 3, 5, 8, 9}
	Sort(data)
	if !slices.Equal(data, want) {
		t.Errorf("Sort([5 3 8 1 9 2]) = %v, want %v", data, want)
	}
}

// TestSortAlreadySorted tests that sorted input is a fixpoint
func TestSortAlreadySorted(t *testing.T) {
	data := []int64{1, 2, 3, 4, 5, 6, 7, 8}
	want := slices.Clone(data)
	Sort(data)
	if !slices.Equal(data, want) {
		t.Errorf("Sort(sorted) = %v, want %v", data, want)
	}
}

// TestSortIdempotent tests that sorting twice equals sorting once
func TestSortIdempotent(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 9))
	data := make([]int64, 500)
	for i := range data {
		data[i] = r.Int64N(100)
	}
	Sort(data)
	once := slices.Clone(data)
	Sort(data)
	if !slices.Equal(data, once) {
		t.Errorf("second Sort changed an already-sorted slice")
	}
}

// TestSortReverse tests sorting reverse sorted data
func TestSortReverse(t *testing.T) {
	data := []float64{8, 7, 6, 5, 4, 3, 2, 1}
	Sort(data)
	if !sortkit.IsSorted(data) {
		t.Errorf("Sort(reverse) produced unsorted result: %v", data)
	}
}

// TestSortDuplicates tests sorting with duplicate elements
func TestSortDuplicates(t *testing.T) {
	data := []int64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	Sort(data)
	if !sortkit.IsSorted(data) {
		t.Errorf("Sort(duplicates) produced unsorted result: %v", data)
	}
}

// TestSortAllSame tests sorting with all identical elements
func TestSortAllSame(t *testing.T) {
	data := []int64{5, 5, 5, 5, 5, 5, 5, 5}
	Sort(data)
	if !sortkit.IsSorted(data) {
		t.Errorf("Sort(allSame) produced unsorted result: %v", data)
	}
}

// TestSortStrings tests sorting string keys
func TestSortStrings(t *testing.T) {
	data := []string{"pear", "apple", "fig", "kiwi", "apple"}
	want := []string{"apple", "apple", "fig", "kiwi", "pear"}
	Sort(data)
	if !slices.Equal(data, want) {
		t.Errorf("Sort(strings) = %v, want %v", data, want)
	}
}

// TestSortMatchesStdlib verifies Sort produces the same result as slices.Sort
func TestSortMatchesStdlib(t *testing.T) {
	r := rand.New(rand.NewPCG(12345, 0))
	sizes := []int{0, 1, 2, 7, 16, 100, 256, 1000, 10000}
	for _, n := range sizes {
		data1 := make([]float64, n)
		data2 := make([]float64, n)
		for i := range data1 {
			v := r.Float64() * 1000
			data1[i] = v
			data2[i] = v
		}

		Sort(data1)
		slices.Sort(data2)

		if !slices.Equal(data1, data2) {
			t.Errorf("Sort mismatch vs slices.Sort at n=%d", n)
		}
	}
}

// TestSort3WayConcrete pins the duplicate-heavy example
func TestSort3WayConcrete(t *testing.T) {
	data := []int64{3, 3, 3, 3, 1, 2}
	want := []int64{1, 2, 3, 3, 3, 3}
	Sort3Way(data)
	if !slices.Equal(data, want) {
		t.Errorf("Sort3Way([3 3 3 3 1 2]) = %v, want %v", data, want)
	}
}

// TestSort3WayMatchesStdlib verifies Sort3Way against slices.Sort across
// cardinalities, where the equal-band handling carries the load.
func TestSort3WayMatchesStdlib(t *testing.T) {
	r := rand.New(rand.NewPCG(777, 0))
	sizes := []int{0, 1, 2, 7, 16, 100, 256, 1000, 10000}
	for _, n := range sizes {
		for _, cardinality := range []int64{1, 2, 3, 100, 1 << 40} {
			data1 := make([]int64, n)
			data2 := make([]int64, n)
			for i := range data1 {
				v := r.Int64N(cardinality)
				data1[i] = v
				data2[i] = v
			}

			Sort3Way(data1)
			slices.Sort(data2)

			if !slices.Equal(data1, data2) {
				t.Errorf("Sort3Way mismatch vs slices.Sort at n=%d cardinality=%d", n, cardinality)
			}
		}
	}
}

// TestSort3WayStrings tests 3-way sorting over string keys
func TestSort3WayStrings(t *testing.T) {
	data := []string{"b", "a", "b", "c", "b", "a"}
	want := []string{"a", "a", "b", "b", "b", "c"}
	Sort3Way(data)
	if !slices.Equal(data, want) {
		t.Errorf("Sort3Way(strings) = %v, want %v", data, want)
	}
}

// recordRanges installs the recursion observer and returns the recorded
// partitioned ranges plus a restore func.
func recordRanges() (*[][2]int, func()) {
	var ranges [][2]int
	observe3Way = func(lo, hi int) {
		ranges = append(ranges, [2]int{lo, hi})
	}
	return &ranges, func() { observe3Way = nil }
}

// TestSort3WayAllEqualOnePass verifies an all-equal slice is handled in a
// single partitioning pass: the whole slice becomes the equal band and no
// recursion survives.
func TestSort3WayAllEqualOnePass(t *testing.T) {
	ranges, restore := recordRanges()
	defer restore()

	data := make([]int64, 100)
	for i := range data {
		data[i] = 7
	}
	Sort3Way(data)

	if len(*ranges) != 1 {
		t.Errorf("Sort3Way(all equal) partitioned %d ranges, want 1: %v", len(*ranges), *ranges)
	}
}

// TestSort3WayBandExcluded verifies the recursion never re-enters an equal
// band: with k distinct keys, each partitioning pass retires one key
// entirely, so at most k ranges are ever partitioned.
func TestSort3WayBandExcluded(t *testing.T) {
	ranges, restore := recordRanges()
	defer restore()

	data := []int64{3, 3, 3, 3, 1, 2}
	Sort3Way(data)

	const distinct = 3
	if len(*ranges) > distinct {
		t.Errorf("Sort3Way partitioned %d ranges for %d distinct keys: %v", len(*ranges), distinct, *ranges)
	}
	if !sortkit.IsSorted(data) {
		t.Errorf("Sort3Way produced unsorted result: %v", data)
	}
}

// TestSort3WayEntropyBound repeats the distinct-key bound on a larger
// random input.
func TestSort3WayEntropyBound(t *testing.T) {
	ranges, restore := recordRanges()
	defer restore()

	const distinct = 5
	r := rand.New(rand.NewPCG(21, 4))
	data := make([]int64, 2000)
	for i := range data {
		data[i] = r.Int64N(distinct)
	}
	Sort3Way(data)

	if len(*ranges) > distinct {
		t.Errorf("Sort3Way partitioned %d ranges for %d distinct keys", len(*ranges), distinct)
	}
	if !sortkit.IsSorted(data) {
		t.Errorf("Sort3Way produced unsorted result")
	}
}
