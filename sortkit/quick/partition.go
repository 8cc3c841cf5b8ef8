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

// Partition rearranges data[lo..hi] (closed range) around the pivot data[lo]
// using Hoare's scheme: two cursors scan inward from the ends and exchange
// out-of-place keys. It returns the final pivot index j, with
//
//	data[lo..j-1] <= data[j] <= data[j+1..hi]
//
// and data[j] holding the value that was at data[lo] on entry.
//
// Both scans stop on keys equal to the pivot, not past them. That costs a
// few swaps among equal keys but keeps the two halves balanced when the input
// carries many duplicates; strict scanning would degrade to quadratic there.
//
// Callers wanting median-of-three or similar pivot tuning should move their
// chosen pivot to data[lo] before calling.
func Partition[T sortkit.Ordered](data []T, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	v := data[lo]
	i, j := lo, hi+1
	for {
		for i++; data[i] < v; i++ {
			if i == hi {
				break
			}
		}
		for j--; v < data[j]; j-- {
			if j == lo {
				break // pivot sentinel, never actually reached
			}
		}
		if i >= j {
			break
		}
		data[i], data[j] = data[j], data[i]
	}
	data[lo], data[j] = data[j], data[lo]
	return j
}

// partition3Way runs one Dutch-national-flag pass over data[lo..hi] with
// data[lo] as the pivot v. It returns (lt, gt) such that
//
//	data[lo..lt-1] < v, data[lt..gt] == v, data[gt+1..hi] > v.
//
// A key swapped down from position gt is unexamined, so the scan cursor does
// not advance in that branch.
func partition3Way[T sortkit.Ordered](data []T, lo, hi int) (int, int) {
	lt, gt := lo, hi
	v := data[lo]
	i := lo
	for i <= gt {
		if data[i] < v {
			data[lt], data[i] = data[i], data[lt]
			lt++
			i++
		} else if data[i] > v {
			data[i], data[gt] = data[gt], data[i]
			gt--
		} else {
			i++
		}
	}
	return lt, gt
}
