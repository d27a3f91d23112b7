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
	"github.com/fpkit/go-vek/vek/contrib/sort"
)

// Quartiles holds the three quartiles of a sample and their spread.
type Quartiles[T vek.Floats] struct {
	Q1     T
	Median T
	Q3     T
	IQR    T
}

// Percentile returns the p-th percentile of data using linear interpolation
// between closest ranks, the same estimator numpy calls "linear": the p-th
// percentile sits at fractional rank (n-1)*p/100 of the sorted sample.
//
// data is copied and sorted internally; the input is not reordered. Empty
// input or p outside [0, 100] yields NaN.
func Percentile[T vek.Floats](data []T, p float64) T {
	if len(data) == 0 || p < 0 || p > 100 {
		return T(math.NaN())
	}
	sorted := make([]T, len(data))
	sort.Quicksort(sorted, data)
	return interpolateRank(sorted, p)
}

// ComputeQuartiles returns Q1, the median, Q3, and the interquartile range of
// data with one sort of an internal copy. Empty input yields NaN fields.
func ComputeQuartiles[T vek.Floats](data []T) Quartiles[T] {
	if len(data) == 0 {
		nan := T(math.NaN())
		return Quartiles[T]{Q1: nan, Median: nan, Q3: nan, IQR: nan}
	}
	sorted := make([]T, len(data))
	sort.Quicksort(sorted, data)
	q := Quartiles[T]{
		Q1:     interpolateRank(sorted, 25),
		Median: interpolateRank(sorted, 50),
		Q3:     interpolateRank(sorted, 75),
	}
	q.IQR = q.Q3 - q.Q1
	return q
}

// Median returns the 50th percentile of data, or NaN for empty input.
func Median[T vek.Floats](data []T) T {
	return Percentile(data, 50)
}

// interpolateRank reads the p-th percentile out of an already sorted slice.
func interpolateRank[T vek.Floats](sorted []T, p float64) T {
	rank := float64(len(sorted)-1) * p / 100
	lo := int(math.Floor(rank))
	frac := rank - float64(lo)
	if frac == 0 || lo+1 >= len(sorted) {
		return sorted[lo]
	}
	return sorted[lo] + T(frac)*(sorted[lo+1]-sorted[lo])
}
