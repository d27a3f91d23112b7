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

// DescriptiveStats holds the first four standardized moments of a sample.
// Variance is the population variance (divisor n), and Kurtosis is excess
// kurtosis (a normal distribution scores 0).
type DescriptiveStats[T vek.Floats] struct {
	N        int
	Mean     T
	Variance T
	StdDev   T
	Skewness T
	Kurtosis T
	Min      T
	Max      T
}

// Describe computes summary statistics for data in a single fused pass over
// the raw power sums, plus one min/max pass.
//
// Empty input yields NaN in every moment field. A single sample has a defined
// mean but NaN variance, skewness, and kurtosis. Zero-variance data (all
// samples equal) yields NaN skewness and kurtosis, which are undefined there.
func Describe[T vek.Floats](data []T) DescriptiveStats[T] {
	nan := T(math.NaN())
	d := DescriptiveStats[T]{
		N:        len(data),
		Mean:     nan,
		Variance: nan,
		StdDev:   nan,
		Skewness: nan,
		Kurtosis: nan,
		Min:      nan,
		Max:      nan,
	}
	if len(data) == 0 {
		return d
	}

	m := reduce.Moments(data)
	n := T(m.N)
	mean := m.Sum / n
	d.Mean = mean
	d.Min, d.Max = reduce.MinMax(data)
	if m.N < 2 {
		return d
	}

	// Central moments from raw power sums.
	m2 := m.Sum2/n - mean*mean
	if m2 < 0 {
		m2 = 0 // rounding can push a constant sample slightly negative
	}
	d.Variance = m2
	d.StdDev = T(math.Sqrt(float64(m2)))
	if m2 == 0 {
		return d
	}

	m3 := m.Sum3/n - 3*mean*m.Sum2/n + 2*mean*mean*mean
	m4 := m.Sum4/n - 4*mean*m.Sum3/n + 6*mean*mean*m.Sum2/n - 3*mean*mean*mean*mean
	d.Skewness = m3 / (m2 * d.StdDev)
	d.Kurtosis = m4/(m2*m2) - 3
	return d
}

// Mean returns the arithmetic mean of data, or NaN for empty input.
func Mean[T vek.Floats](data []T) T {
	if len(data) == 0 {
		return T(math.NaN())
	}
	return reduce.Sum(data) / T(len(data))
}

// Variance returns the population variance of data. Inputs shorter than two
// samples yield NaN.
func Variance[T vek.Floats](data []T) T {
	if len(data) < 2 {
		return T(math.NaN())
	}
	_, v := reduce.MeanVariance(data)
	return v
}

// StdDev returns the population standard deviation of data, or NaN when
// fewer than two samples are present.
func StdDev[T vek.Floats](data []T) T {
	v := Variance(data)
	if math.IsNaN(float64(v)) {
		return v
	}
	return T(math.Sqrt(float64(v)))
}
