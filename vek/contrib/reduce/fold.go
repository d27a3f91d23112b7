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

package reduce

import "github.com/fpkit/go-vek/vek"

// Fused folds: each of these visits its inputs exactly once and keeps all
// partial results in registers across the traversal.

// SumSquares returns the sum of squares of all elements.
// Returns 0 for an empty slice.
func SumSquares[T vek.Lanes](v []T) T {
	var result T
	if len(v) == 0 {
		return result
	}

	acc := vek.Zero[T]()
	lanes := acc.NumLanes()

	var i int
	for i = 0; i+lanes <= len(v); i += lanes {
		va := vek.Load(v[i:])
		acc = vek.Add(acc, vek.Mul(va, va))
	}

	result = vek.ReduceSum(acc)

	for ; i < len(v); i++ {
		result += v[i] * v[i]
	}

	return result
}

// Dot returns the dot product of a and b over the first min(len(a), len(b))
// elements. Returns 0 when either slice is empty.
//
// Example:
//
//	reduce.Dot([]float32{1, 2, 3}, []float32{4, 5, 6})  // 32
func Dot[T vek.Lanes](a, b []T) T {
	var result T
	n := min(len(a), len(b))
	if n == 0 {
		return result
	}

	acc := vek.Zero[T]()
	lanes := acc.NumLanes()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		acc = vek.Add(acc, vek.Mul(vek.Load(a[i:]), vek.Load(b[i:])))
	}

	result = vek.ReduceSum(acc)

	for ; i < n; i++ {
		result += a[i] * b[i]
	}

	return result
}

// SAD returns the sum of absolute differences Σ|a[i]-b[i]| over the first
// min(len(a), len(b)) elements.
//
// For unsigned element types the difference is taken as max-min per element,
// which is the absolute difference without wraparound.
func SAD[T vek.Lanes](a, b []T) T {
	var result T
	n := min(len(a), len(b))
	if n == 0 {
		return result
	}

	acc := vek.Zero[T]()
	lanes := acc.NumLanes()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		va := vek.Load(a[i:])
		vb := vek.Load(b[i:])
		diff := vek.Sub(vek.Max(va, vb), vek.Min(va, vb))
		acc = vek.Add(acc, diff)
	}

	result = vek.ReduceSum(acc)

	for ; i < n; i++ {
		if a[i] > b[i] {
			result += a[i] - b[i]
		} else {
			result += b[i] - a[i]
		}
	}

	return result
}

// RawMoments holds the power sums of one traversal: Σx, Σx², Σx³, Σx⁴.
// The statistics layer converts these to mean, variance, skewness, and
// kurtosis only once the pass is complete.
type RawMoments[T vek.Floats] struct {
	N    int
	Sum  T
	Sum2 T
	Sum3 T
	Sum4 T
}

// Moments accumulates the first four raw power sums of v in a single fused
// pass. Four vector accumulators stay live across the loop; the remainder is
// folded in scalar.
func Moments[T vek.Floats](v []T) RawMoments[T] {
	m := RawMoments[T]{N: len(v)}
	if len(v) == 0 {
		return m
	}

	sum1 := vek.Zero[T]()
	sum2 := vek.Zero[T]()
	sum3 := vek.Zero[T]()
	sum4 := vek.Zero[T]()
	lanes := sum1.NumLanes()

	var i int
	for i = 0; i+lanes <= len(v); i += lanes {
		x := vek.Load(v[i:])
		x2 := vek.Mul(x, x)
		sum1 = vek.Add(sum1, x)
		sum2 = vek.Add(sum2, x2)
		sum3 = vek.Add(sum3, vek.Mul(x2, x))
		sum4 = vek.Add(sum4, vek.Mul(x2, x2))
	}

	m.Sum = vek.ReduceSum(sum1)
	m.Sum2 = vek.ReduceSum(sum2)
	m.Sum3 = vek.ReduceSum(sum3)
	m.Sum4 = vek.ReduceSum(sum4)

	for ; i < len(v); i++ {
		x := v[i]
		x2 := x * x
		m.Sum += x
		m.Sum2 += x2
		m.Sum3 += x2 * x
		m.Sum4 += x2 * x2
	}

	return m
}

// MeanVariance returns the mean and population variance of v in one pass.
// Returns (0, 0) for an empty slice.
func MeanVariance[T vek.Floats](v []T) (mean, variance T) {
	if len(v) == 0 {
		return 0, 0
	}

	var sum, sumSq T
	acc := vek.Zero[T]()
	accSq := vek.Zero[T]()
	lanes := acc.NumLanes()

	var i int
	for i = 0; i+lanes <= len(v); i += lanes {
		x := vek.Load(v[i:])
		acc = vek.Add(acc, x)
		accSq = vek.Add(accSq, vek.Mul(x, x))
	}

	sum = vek.ReduceSum(acc)
	sumSq = vek.ReduceSum(accSq)

	for ; i < len(v); i++ {
		sum += v[i]
		sumSq += v[i] * v[i]
	}

	n := T(len(v))
	mean = sum / n
	variance = sumSq/n - mean*mean
	if variance < 0 {
		// Guard against tiny negative values from floating-point cancellation.
		variance = 0
	}
	return mean, variance
}
