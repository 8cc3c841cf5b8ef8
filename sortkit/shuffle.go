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

package sortkit

import "math/rand/v2"

// Shuffle permutes data uniformly at random in place using a Fisher-Yates
// walk: for i from len(data)-1 down to 1, swap data[i] with a uniformly
// chosen data[j], j in [0, i].
//
// The randomized sorts in the quick subpackage shuffle the whole input once
// before the first partition. That single full pass is what turns the
// quadratic worst case into an event with near-zero probability; partial or
// repeated shuffles give no such guarantee.
func Shuffle[T Ordered](data []T) {
	for i := len(data) - 1; i >= 1; i-- {
		j := rand.IntN(i + 1)
		data[i], data[j] = data[j], data[i]
	}
}

// ShuffleRand is Shuffle over an injected source, for callers that need a
// reproducible permutation.
func ShuffleRand[T Ordered](data []T, r *rand.Rand) {
	for i := len(data) - 1; i >= 1; i-- {
		j := r.IntN(i + 1)
		data[i], data[j] = data[j], data[i]
	}
}
