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

	"github.com/ajroetker/go-sortkit/sortkit/quick"
)

type selectOptions struct {
	size  int
	shape string
	ranks []int
	seed  uint64
}

func newSelectCommand() *cobra.Command {
	opts := &selectOptions{}
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Pick order statistics from a generated workload without sorting it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSelect(cmd.OutOrStdout(), opts)
		},
	}
	addSelectFlags(cmd.Flags(), opts)

	return cmd
}

func addSelectFlags(fs *pflag.FlagSet, opts *selectOptions) {
	fs.IntVar(&opts.size, "size", 1000000, "number of keys in the workload")
	fs.StringVar(&opts.shape, "shape", shapeRandom, "workload shape")
	fs.IntSliceVar(&opts.ranks, "ranks", nil, "ranks to select (default: min, median, max)")
	fs.Uint64Var(&opts.seed, "seed", 1, "workload generator seed")
}

func runSelect(w io.Writer, opts *selectOptions) error {
	r := rand.New(rand.NewPCG(opts.seed, 0))
	base, err := makeWorkload(opts.shape, opts.size, r)
	if err != nil {
		return err
	}

	ranks := opts.ranks
	if len(ranks) == 0 {
		ranks = []int{0, opts.size / 2, opts.size - 1}
	}

	fmt.Fprintf(w, "selecting from %s %s keys\n", humanize.Comma(int64(opts.size)), opts.shape)

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Rank", "Key", "Time"})
	for _, k := range ranks {
		data := slices.Clone(base)
		start := time.Now()
		key, err := quick.Select(data, k)
		if err != nil {
			return err
		}
		tbl.AppendRow(table.Row{humanize.Comma(int64(k)), key, time.Since(start).Round(time.Microsecond)})
	}

	fmt.Fprintln(w, tbl.Render())

	return nil
}
