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

// Package sortkit provides the shared pieces of the go-sortkit ordering and
// selection engine: the key constraint, uniform shuffling, and order checks.
//
// The algorithms themselves live in the subpackages:
//
//   - quick: randomized quicksort (two-way and three-way partitioning) and
//     quickselect over slices.
//   - heap: an array-backed binary max-heap priority queue and heapsort.
//
// All of them operate in place on caller-owned slices and require nothing of
// the element type beyond a total order.
package sortkit

// Floats is a constraint for floating-point keys.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer keys.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer keys.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integers is a constraint for all integer keys.
type Integers interface {
	SignedInts | UnsignedInts
}

// Ordered is a constraint for all key types the engine can order.
// Only the built-in total order (<, <=, >, >=, ==) is ever used.
type Ordered interface {
	Floats | Integers | ~string
}

// IsSorted reports whether data is in ascending order.
func IsSorted[T Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
