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
	"io"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	sortheap "github.com/ajroetker/go-sortkit/sortkit/heap"
	"github.com/ajroetker/go-sortkit/sortkit/quick"
)

type runOptions struct {
	sizes  []int
	shapes []string
	seed   uint64
}

func newRunCommand() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time the sorting algorithms across input shapes and sizes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmarks(cmd.OutOrStdout(), opts)
		},
	}
	addRunFlags(cmd.Flags(), opts)

	return cmd
}

func addRunFlags(fs *pflag.FlagSet, opts *runOptions) {
	fs.IntSliceVar(&opts.sizes, "sizes", []int{1000, 10000, 100000}, "input sizes to benchmark")
	fs.StringSliceVar(&opts.shapes, "shapes", allShapes(), "workload shapes")
	fs.Uint64Var(&opts.seed, "seed", 1, "workload generator seed")
}

// algorithms under test, stdlib last as the baseline.
func contenders() []struct {
	name string
	sort func([]int64)
} {
	return []struct {
		name string
		sort func([]int64)
	}{
		{"quick.Sort", quick.Sort[int64]},
		{"quick.Sort3Way", quick.Sort3Way[int64]},
		{"heap.Sort", sortheap.Sort[int64]},
		{"slices.Sort", slices.Sort[[]int64]},
	}
}

func runBenchmarks(w io.Writer, opts *runOptions) error {
	fmt.Fprintln(w, hostSummary())

	r := rand.New(rand.NewPCG(opts.seed, 0))
	algos := contenders()

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	header := table.Row{"Shape", "Keys"}
	for _, a := range algos {
		header = append(header, a.name)
	}
	tbl.AppendHeader(header)

	rows := 0
	for _, shape := range opts.shapes {
		for _, n := range opts.sizes {
			base, err := makeWorkload(shape, n, r)
			if err != nil {
				return err
			}

			row := table.Row{shape, humanize.Comma(int64(n))}
			for _, a := range algos {
				row = append(row, timeSort(base, a.sort).Round(time.Microsecond))
			}
			tbl.AppendRow(row)
			rows++
		}
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d workloads", rows)})

	fmt.Fprintln(w, tbl.Render())

	return nil
}

// timeSort runs fn on a fresh copy of base so every contender sees the same
// input.
func timeSort(base []int64, fn func([]int64)) time.Duration {
	data := slices.Clone(base)
	start := time.Now()
	fn(data)
	return time.Since(start)
}
