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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	data := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	d := Describe(data)
	require.Equal(t, 8, d.N)
	require.InDelta(t, 5.0, float64(d.Mean), 1e-12)
	require.InDelta(t, 4.0, float64(d.Variance), 1e-12)
	require.InDelta(t, 2.0, float64(d.StdDev), 1e-12)
	require.Equal(t, 2.0, d.Min)
	require.Equal(t, 9.0, d.Max)
	// Symmetric-ish sample: skewness close to the hand-computed value.
	require.InDelta(t, 0.65625, float64(d.Skewness), 1e-9)
}

func TestDescribeDegenerate(t *testing.T) {
	empty := Describe([]float64{})
	require.Equal(t, 0, empty.N)
	require.True(t, math.IsNaN(empty.Mean))
	require.True(t, math.IsNaN(empty.Variance))
	require.True(t, math.IsNaN(empty.Min))

	single := Describe([]float64{42})
	require.Equal(t, 42.0, single.Mean)
	require.True(t, math.IsNaN(single.Variance))
	require.Equal(t, 42.0, single.Min)
	require.Equal(t, 42.0, single.Max)

	constant := Describe([]float64{3, 3, 3, 3, 3})
	require.Equal(t, 3.0, constant.Mean)
	require.Equal(t, 0.0, constant.Variance)
	require.True(t, math.IsNaN(constant.Skewness))
	require.True(t, math.IsNaN(constant.Kurtosis))
}

func TestDescribeMatchesScalar(t *testing.T) {
	data := make([]float64, 257)
	seed := uint32(99)
	for i := range data {
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		data[i] = float64(seed%1000)/100 - 5
	}
	var sum float64
	for _, v := range data {
		sum += v
	}
	mean := sum / float64(len(data))
	var m2 float64
	for _, v := range data {
		d := v - mean
		m2 += d * d
	}
	m2 /= float64(len(data))

	d := Describe(data)
	require.InDelta(t, mean, d.Mean, 1e-9)
	require.InDelta(t, m2, d.Variance, 1e-9)
}

func TestPercentile(t *testing.T) {
	data := []float64{15, 20, 35, 40, 50}
	require.InDelta(t, 15.0, Percentile(data, 0), 1e-12)
	require.InDelta(t, 50.0, Percentile(data, 100), 1e-12)
	require.InDelta(t, 35.0, Percentile(data, 50), 1e-12)
	require.InDelta(t, 29.0, Percentile(data, 40), 1e-12)
	require.True(t, math.IsNaN(Percentile(data, -1)))
	require.True(t, math.IsNaN(Percentile(data, 101)))
	require.True(t, math.IsNaN(Percentile([]float64{}, 50)))
}

func TestPercentileDoesNotReorderInput(t *testing.T) {
	data := []float64{9, 1, 8, 2, 7, 3}
	orig := append([]float64(nil), data...)
	Percentile(data, 75)
	require.Equal(t, orig, data)
}

func TestQuartiles(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	q := ComputeQuartiles(data)
	require.InDelta(t, 3.0, float64(q.Q1), 1e-12)
	require.InDelta(t, 5.0, float64(q.Median), 1e-12)
	require.InDelta(t, 7.0, float64(q.Q3), 1e-12)
	require.InDelta(t, 4.0, float64(q.IQR), 1e-12)

	empty := ComputeQuartiles([]float64{})
	require.True(t, math.IsNaN(empty.Median))
}

func TestMedian(t *testing.T) {
	require.InDelta(t, 2.5, Median([]float64{1, 2, 3, 4}), 1e-12)
	require.InDelta(t, 3.0, Median([]float64{5, 3, 1}), 1e-12)
}

func TestCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}
	require.InDelta(t, 1.0, Correlation(x, y), 1e-12)

	yNeg := []float64{10, 8, 6, 4, 2}
	require.InDelta(t, -1.0, Correlation(x, yNeg), 1e-12)

	constant := []float64{7, 7, 7, 7, 7}
	require.True(t, math.IsNaN(Correlation(x, constant)))
	require.True(t, math.IsNaN(Correlation(constant, y)))
	require.True(t, math.IsNaN(Correlation([]float64{1}, []float64{2})))
}

func TestCovariance(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{2, 4, 6, 8}
	// Population covariance of these pairs is 2.5.
	require.InDelta(t, 2.5, Covariance(x, y), 1e-12)
	require.True(t, math.IsNaN(Covariance([]float64{}, []float64{})))
}

func TestLinearRegress(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}
	fit := LinearRegress(x, y)
	require.InDelta(t, 2.0, float64(fit.Slope), 1e-12)
	require.InDelta(t, 0.0, float64(fit.Intercept), 1e-12)
	require.InDelta(t, 1.0, float64(fit.R2), 1e-12)
	require.InDelta(t, 0.0, float64(fit.StdErr), 1e-12)
}

func TestLinearRegressNoisy(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{2.1, 3.9, 6.2, 7.8, 10.1, 11.9}
	fit := LinearRegress(x, y)
	require.InDelta(t, 2.0, float64(fit.Slope), 0.05)
	require.Greater(t, float64(fit.R2), 0.99)
	require.Greater(t, float64(fit.StdErr), 0.0)
}

func TestLinearRegressDegenerate(t *testing.T) {
	fit := LinearRegress([]float64{1}, []float64{2})
	require.True(t, math.IsNaN(fit.Slope))
	require.True(t, math.IsNaN(fit.R2))

	// Constant x carries no information about the slope.
	flat := LinearRegress([]float64{3, 3, 3}, []float64{1, 2, 3})
	require.True(t, math.IsNaN(flat.Slope))

	two := LinearRegress([]float64{0, 1}, []float64{5, 9})
	require.InDelta(t, 4.0, float64(two.Slope), 1e-12)
	require.InDelta(t, 5.0, float64(two.Intercept), 1e-12)
	require.Equal(t, 1.0, two.R2)
	require.Equal(t, 0.0, two.StdErr)
}

func TestOutliersZScore(t *testing.T) {
	data := []float64{10, 11, 9, 10, 10, 11, 9, 10, 100}
	dst := make([]int, len(data))
	n := OutliersZScore(dst, data, 2)
	require.Equal(t, 1, n)
	require.Equal(t, 8, dst[0])

	require.Zero(t, OutliersZScore(dst, []float64{5}, 2))
	require.Zero(t, OutliersZScore(dst, []float64{5, 5, 5, 5}, 2))
}

func TestOutliersIQR(t *testing.T) {
	data := []float64{1, 2, 2, 3, 3, 3, 4, 4, 5, 50}
	dst := make([]int, len(data))
	n := OutliersIQR(dst, data, 1.5)
	require.Equal(t, 1, n)
	require.Equal(t, 9, dst[0])

	require.Zero(t, OutliersIQR(dst, []float64{1, 2, 3}, 1.5))
}

func TestOutliersDstCapacity(t *testing.T) {
	data := []float64{0, 0, 0, 0, 100, -100, 100, -100}
	dst := make([]int, 1)
	n := OutliersIQR(dst, data, 0.5)
	require.Equal(t, 1, n)
}
