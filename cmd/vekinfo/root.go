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
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/fpkit/go-vek/vek"
)

type laneRow struct {
	typeName string
	bytes    int
	lanes    int
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vekinfo",
		Short: "Inspect the active SIMD dispatch configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "dispatch: %s\n", vek.CurrentName())
			_, _ = fmt.Fprintf(out, "register width: %d bytes\n", vek.CurrentWidth())
			if vek.NoSimdEnv() {
				_, _ = fmt.Fprintln(out, "note: VEK_NO_SIMD forces the scalar path")
			}
			_, _ = fmt.Fprintln(out)

			rows := []laneRow{
				{"float64", 8, vek.MaxLanes[float64]()},
				{"float32", 4, vek.MaxLanes[float32]()},
				{"int64", 8, vek.MaxLanes[int64]()},
				{"int32", 4, vek.MaxLanes[int32]()},
				{"int16", 2, vek.MaxLanes[int16]()},
				{"int8", 1, vek.MaxLanes[int8]()},
				{"uint8", 1, vek.MaxLanes[uint8]()},
			}
			lines := lo.Map(rows, func(r laneRow, _ int) string {
				return fmt.Sprintf("  %-8s %d bytes/elem  %2d lanes", r.typeName, r.bytes, r.lanes)
			})
			_, _ = fmt.Fprintln(out, "lanes per register:")
			_, _ = fmt.Fprintln(out, strings.Join(lines, "\n"))
			return nil
		},
	}
	cmd.AddCommand(newDescribeCmd())
	return cmd
}
