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

// Package heap provides an array-backed binary max-heap: a MaxPQ priority
// queue and an in-place heapsort built on the same sink primitive.
//
// # Structure
//
// A heap is a slice read as a complete binary tree in level order. MaxPQ
// stores keys 1-based (children of k at 2k and 2k+1, parent at k/2), which
// keeps the index arithmetic to shifts and halving; Sort works directly on
// the caller's 0-based slice. The heap-order invariant is that no key
// exceeds its parent, so the maximum is always at the root.
//
// Order is restored after every mutation by one of two walks: swim carries a
// grown key toward the root, sink carries a shrunken key toward the leaves.
// Both touch at most one path through the tree, so every MaxPQ operation is
// O(log n).
//
// # Example Usage
//
//	import "github.com/ajroetker/go-sortkit/sortkit/heap"
//
//	pq := heap.NewMaxPQ[int64](16)
//	for _, v := range values {
//	    pq.Insert(v)
//	}
//	top, err := pq.DelMax()
//
// Heapsort is the one algorithm in go-sortkit with a non-probabilistic
// guarantee: Θ(n log n) comparisons worst case and average, no auxiliary
// storage. It is not stable; sortdown exchanges keys across long distances.
package heap
