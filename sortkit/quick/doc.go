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

// Package quick provides randomized quicksort and quickselect over slices of
// ordered keys.
//
// # Algorithms
//
// Three entry points share one Hoare-style partitioning core:
//
//   - Sort: two-way quicksort. Expected ~2N ln N comparisons on every input
//     thanks to the initial shuffle.
//   - Sort3Way: quicksort with Dutch-national-flag partitioning. Keys equal
//     to the pivot land in their final position in one pass and are never
//     visited again, which makes the running time proportional to the entropy
//     of the key distribution rather than N log N; on low-cardinality inputs
//     it is linear.
//   - Select: the k-th smallest key in expected linear time, without sorting
//     the rest of the slice.
//
// All three mutate their input in place and allocate no auxiliary storage.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-sortkit/sortkit/quick"
//
//	func Median(samples []float64) (float64, error) {
//	    return quick.Select(samples, len(samples)/2)
//	}
//
// # Randomization
//
// Sort, Sort3Way and Select shuffle the slice once before the first
// partition. The shuffle is what bounds the chance of quadratic behavior, so
// none of them are deterministic in the order of equal keys or in the
// intermediate states a concurrent observer could see. The slices must not
// be read or written by other goroutines while a call is in flight.
package quick
