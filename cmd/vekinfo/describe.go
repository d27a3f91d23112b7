// Copyright 2026 go-vek Authors
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fpkit/go-vek/vek/contrib/stats"
)

func newDescribeCmd() *cobra.Command {
	var percentiles []float64
	cmd := &cobra.Command{
		Use:   "describe [file]",
		Short: "Summarize whitespace-separated numbers from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			data, err := readFloats(in)
			if err != nil {
				return err
			}
			if len(data) == 0 {
				return fmt.Errorf("describe: no numeric input")
			}

			out := cmd.OutOrStdout()
			d := stats.Describe(data)
			_, _ = fmt.Fprintf(out, "n        %d\n", d.N)
			_, _ = fmt.Fprintf(out, "mean     %g\n", d.Mean)
			_, _ = fmt.Fprintf(out, "stddev   %g\n", d.StdDev)
			_, _ = fmt.Fprintf(out, "min      %g\n", d.Min)
			_, _ = fmt.Fprintf(out, "max      %g\n", d.Max)
			_, _ = fmt.Fprintf(out, "skewness %g\n", d.Skewness)
			_, _ = fmt.Fprintf(out, "kurtosis %g\n", d.Kurtosis)
			for _, p := range percentiles {
				_, _ = fmt.Fprintf(out, "p%-7g %g\n", p, stats.Percentile(data, p))
			}
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&percentiles, "percentile", []float64{25, 50, 75},
		"percentiles to report")
	return cmd
}

func readFloats(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var data []float64
	for sc.Scan() {
		tok := strings.TrimSuffix(sc.Text(), ",")
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("describe: bad number %q", tok)
		}
		data = append(data, v)
	}
	return data, sc.Err()
}
