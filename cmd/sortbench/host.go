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
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// hostSummary describes the machine a benchmark ran on. Sorting throughput
// is dominated by cache behavior and branch prediction, so the SIMD feature
// set is a useful shorthand for the CPU generation.
func hostSummary() string {
	var feats []string
	if cpu.X86.HasAVX2 {
		feats = append(feats, "avx2")
	}
	if cpu.X86.HasAVX512F {
		feats = append(feats, "avx512f")
	}
	if cpu.ARM64.HasASIMD {
		feats = append(feats, "neon")
	}
	featStr := "none detected"
	if len(feats) > 0 {
		featStr = strings.Join(feats, ",")
	}

	return fmt.Sprintf("host: %s/%s, %d threads, simd: %s",
		runtime.GOOS, runtime.GOARCH, runtime.GOMAXPROCS(0), featStr)
}
