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

package heap

import "github.com/ajroetker/go-sortkit/sortkit"

// Sort sorts data in ascending order using heapsort. The build phase turns
// the slice into a max-heap bottom-up, sinking each internal node starting
// from the last parent (leaves are one-key heaps already). Sortdown then
// repeatedly exchanges the root with the last live key and sinks the new
// root over the shrunken prefix, growing a sorted suffix.
//
// Θ(n log n) comparisons in both the worst and average case, no auxiliary
// storage, no randomization. Not stable.
func Sort[T sortkit.Ordered](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n)
	}
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data, 0, i)
	}
}

// siftDown is sink over a 0-based prefix data[:n]: children of k sit at
// 2k+1 and 2k+2. The boundary n shrinks during sortdown and must never
// reach into the finalized suffix.
func siftDown[T sortkit.Ordered](data []T, k, n int) {
	for 2*k+1 < n {
		child := 2*k + 1
		if child+1 < n && data[child] < data[child+1] {
			child++
		}
		if data[k] >= data[child] {
			break
		}
		data[k], data[child] = data[child], data[k]
		k = child
	}
}
