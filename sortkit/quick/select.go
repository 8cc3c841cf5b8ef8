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
	"github.com/pkg/errors"

	"github.com/ajroetker/go-sortkit/sortkit"
)

// ErrRankOutOfRange is returned by Select when k is not a valid rank for the
// given slice.
var ErrRankOutOfRange = errors.New("quick: rank out of range")

// Select returns the k-th smallest key in data, where k = 0 is the minimum
// and k = len(data)-1 the maximum. It runs in expected linear time: after a
// shuffle, each partition narrows the search to the one half that still
// contains rank k.
//
// data is partially reordered in place. On return data[k] holds the selected
// key, everything before it is <= and everything after it is >=.
func Select[T sortkit.Ordered](data []T, k int) (T, error) {
	if k < 0 || k >= len(data) {
		var zero T
		return zero, errors.Wrapf(ErrRankOutOfRange, "rank %d of %d keys", k, len(data))
	}
	sortkit.Shuffle(data)
	lo, hi := 0, len(data)-1
	for lo < hi {
		j := Partition(data, lo, hi)
		switch {
		case j > k:
			hi = j - 1
		case j < k:
			lo = j + 1
		default:
			return data[j], nil
		}
	}
	return data[k], nil
}
