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

import (
	"github.com/pkg/errors"

	"github.com/ajroetker/go-sortkit/sortkit"
)

// ErrEmpty is returned by Max and DelMax on an empty queue.
var ErrEmpty = errors.New("heap: empty priority queue")

// MaxPQ is a priority queue over ordered keys, backed by a growable slice
// holding a binary heap in 1-based level order (keys[0] is unused). The zero
// value is not usable; construct with NewMaxPQ.
//
// MaxPQ is not safe for concurrent use; callers needing shared access must
// serialize externally.
type MaxPQ[T sortkit.Ordered] struct {
	keys []T // 1-based storage, keys[1..n] are live
	n    int
}

// NewMaxPQ returns an empty queue with room for capacity keys before the
// first growth.
func NewMaxPQ[T sortkit.Ordered](capacity int) *MaxPQ[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &MaxPQ[T]{keys: make([]T, capacity+1)}
}

// Size returns the number of keys in the queue.
func (pq *MaxPQ[T]) Size() int { return pq.n }

// IsEmpty reports whether the queue holds no keys.
func (pq *MaxPQ[T]) IsEmpty() bool { return pq.n == 0 }

// Insert adds key to the queue.
func (pq *MaxPQ[T]) Insert(key T) {
	if pq.n+1 == len(pq.keys) {
		pq.grow()
	}
	pq.n++
	pq.keys[pq.n] = key
	pq.swim(pq.n)
}

// Max returns the largest key without removing it.
func (pq *MaxPQ[T]) Max() (T, error) {
	if pq.n == 0 {
		var zero T
		return zero, errors.WithStack(ErrEmpty)
	}
	return pq.keys[1], nil
}

// DelMax removes and returns the largest key.
func (pq *MaxPQ[T]) DelMax() (T, error) {
	if pq.n == 0 {
		var zero T
		return zero, errors.WithStack(ErrEmpty)
	}
	max := pq.keys[1]
	pq.keys[1] = pq.keys[pq.n]
	var zero T
	pq.keys[pq.n] = zero // do not retain the vacated slot's value
	pq.n--
	pq.sink(1)
	return max, nil
}

func (pq *MaxPQ[T]) grow() {
	next := make([]T, 2*len(pq.keys))
	copy(next, pq.keys[:pq.n+1])
	pq.keys = next
}

// swim restores heap order after the key at k grew (or was appended at the
// bottom): exchange it with its parent until the parent is no smaller.
func (pq *MaxPQ[T]) swim(k int) {
	for k > 1 && pq.keys[k/2] < pq.keys[k] {
		pq.keys[k/2], pq.keys[k] = pq.keys[k], pq.keys[k/2]
		k /= 2
	}
}

// sink restores heap order after the key at k shrank (typically the root
// after DelMax): exchange it with its larger child until neither child is
// larger. When both children are equal the right one is chosen, which fixes
// the restoration path deterministically.
func (pq *MaxPQ[T]) sink(k int) {
	for 2*k <= pq.n {
		child := 2 * k
		if child < pq.n && pq.keys[child] <= pq.keys[child+1] {
			child++
		}
		if pq.keys[k] >= pq.keys[child] {
			break
		}
		pq.keys[k], pq.keys[child] = pq.keys[child], pq.keys[k]
		k = child
	}
}
