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

package main

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Workload shapes. "dups" draws from eight distinct keys, the regime where
// three-way partitioning beats two-way; "sorted" and "reversed" are the
// classic adversaries that the pre-sort shuffle defuses.
const (
	shapeRandom   = "random"
	shapeSorted   = "sorted"
	shapeReversed = "reversed"
	shapeDups     = "dups"
	shapeEqual    = "equal"
)

// ErrUnknownShape indicates a workload shape outside the supported set.
var ErrUnknownShape = errors.New("unknown workload shape")

func allShapes() []string {
	return []string{shapeRandom, shapeDups, shapeSorted, shapeReversed, shapeEqual}
}

// makeWorkload builds an n-key benchmark input of the given shape.
func makeWorkload(shape string, n int, r *rand.Rand) ([]int64, error) {
	data := make([]int64, n)
	switch shape {
	case shapeRandom:
		for i := range data {
			data[i] = r.Int64N(1 << 40)
		}
	case shapeSorted:
		for i := range data {
			data[i] = int64(i)
		}
	case shapeReversed:
		for i := range data {
			data[i] = int64(n - i)
		}
	case shapeDups:
		for i := range data {
			data[i] = r.Int64N(8)
		}
	case shapeEqual:
		for i := range data {
			data[i] = 7
		}
	default:
		return nil, errors.Wrapf(ErrUnknownShape, "%q (supported: %v)", shape, allShapes())
	}
	return data, nil
}
