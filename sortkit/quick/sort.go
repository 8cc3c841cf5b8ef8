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

import "github.com/ajroetker/go-sortkit/sortkit"

// Sort sorts data in ascending order using randomized two-way quicksort.
// The slice is shuffled once up front, which bounds the probability of the
// quadratic worst case to near zero on every input. Not stable.
func Sort[T sortkit.Ordered](data []T) {
	if len(data) <= 1 {
		return
	}
	sortkit.Shuffle(data)
	quicksort(data, 0, len(data)-1)
}

// quicksort recurses on the smaller half of each split and loops on the
// larger, keeping the stack depth logarithmic even when splits are lopsided.
func quicksort[T sortkit.Ordered](data []T, lo, hi int) {
	for lo < hi {
		j := Partition(data, lo, hi)
		if j-lo < hi-j {
			quicksort(data, lo, j-1)
			lo = j + 1
		} else {
			quicksort(data, j+1, hi)
			hi = j - 1
		}
	}
}

// Sort3Way sorts data in ascending order using randomized quicksort with
// three-way partitioning. Each partitioning pass moves every key equal to
// the pivot into its final position, and the recursion skips that band
// entirely, so duplicate-heavy inputs sort in time proportional to the
// entropy of their key distribution. Not stable.
func Sort3Way[T sortkit.Ordered](data []T) {
	if len(data) <= 1 {
		return
	}
	sortkit.Shuffle(data)
	quicksort3Way(data, 0, len(data)-1)
}

func quicksort3Way[T sortkit.Ordered](data []T, lo, hi int) {
	if lo >= hi {
		return
	}
	if observe3Way != nil {
		observe3Way(lo, hi)
	}
	lt, gt := partition3Way(data, lo, hi)
	quicksort3Way(data, lo, lt-1)
	quicksort3Way(data, gt+1, hi)
}

// observe3Way, when non-nil, receives every range quicksort3Way is about to
// partition. Tests install it to watch the recursion tree; it is nil
// otherwise.
var observe3Way func(lo, hi int)
