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

package stats

import (
	"math"

	"github.com/fpkit/go-vek/vek"
	"github.com/fpkit/go-vek/vek/contrib/reduce"
)

// OutliersZScore writes the indices of samples whose z-score magnitude
// exceeds threshold into dst and returns how many it found. A threshold of 3
// is the common choice.
//
// Fewer than two samples, or a zero standard deviation, leave dst untouched
// and return 0. Writing stops silently when dst fills up.
func OutliersZScore[T vek.Floats](dst []int, data []T, threshold float64) int {
	if len(data) < 2 {
		return 0
	}
	mean, variance := reduce.MeanVariance(data)
	std := math.Sqrt(float64(variance))
	if std == 0 {
		return 0
	}
	limit := T(threshold) * T(std)
	if limit < 0 {
		limit = -limit
	}
	found := 0
	for i, v := range data {
		dev := v - mean
		if dev < 0 {
			dev = -dev
		}
		if dev > limit {
			if found == len(dst) {
				return found
			}
			dst[found] = i
			found++
		}
	}
	return found
}

// OutliersIQR writes the indices of samples falling outside the Tukey fences
// [Q1 - k*IQR, Q3 + k*IQR] into dst and returns how many it found. A k of 1.5
// marks mild outliers and 3.0 marks extreme ones.
//
// Fewer than four samples leave dst untouched and return 0, since quartiles
// of tiny samples fence nothing meaningfully. Writing stops silently when dst
// fills up.
func OutliersIQR[T vek.Floats](dst []int, data []T, k float64) int {
	if len(data) < 4 {
		return 0
	}
	q := ComputeQuartiles(data)
	lo := q.Q1 - T(k)*q.IQR
	hi := q.Q3 + T(k)*q.IQR
	found := 0
	for i, v := range data {
		if v < lo || v > hi {
			if found == len(dst) {
				return found
			}
			dst[found] = i
			found++
		}
	}
	return found
}
