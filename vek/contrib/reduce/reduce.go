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

// Sum returns the sum of all elements in v. Returns 0 for an empty slice.
//
// Example:
//
//	data := []float32{1, 2, 3, 4}
//	result := reduce.Sum(data)  // 10
func Sum[T vek.Lanes](v []T) T {
	var result T
	if len(v) == 0 {
		return result
	}

	acc := vek.Zero[T]()
	lanes := acc.NumLanes()

	var i int
	for i = 0; i+lanes <= len(v); i += lanes {
		acc = vek.Add(acc, vek.Load(v[i:]))
	}

	result = vek.ReduceSum(acc)

	for ; i < len(v); i++ {
		result += v[i]
	}

	return result
}

// Product returns the product of all elements in v.
// Returns 1 for an empty slice (the multiplicative identity).
func Product[T vek.Lanes](v []T) T {
	result := T(1)
	if len(v) == 0 {
		return result
	}

	acc := vek.Set(T(1))
	lanes := acc.NumLanes()

	var i int
	for i = 0; i+lanes <= len(v); i += lanes {
		acc = vek.Mul(acc, vek.Load(v[i:]))
	}

	result = vek.ReduceMul(acc)

	for ; i < len(v); i++ {
		result *= v[i]
	}

	return result
}

// Min returns the minimum value in v. Returns the zero value of T for an
// empty slice.
//
// For slices containing NaN values, behavior follows Go comparison semantics
// where NaN comparisons return false.
func Min[T vek.Lanes](v []T) T {
	if len(v) == 0 {
		var zero T
		return zero
	}

	lanes := vek.MaxLanes[T]()

	if len(v) < lanes {
		result := v[0]
		for _, x := range v[1:] {
			if x < result {
				result = x
			}
		}
		return result
	}

	minVec := vek.Load(v)

	var i int
	for i = lanes; i+lanes <= len(v); i += lanes {
		minVec = vek.Min(minVec, vek.Load(v[i:]))
	}

	result := vek.ReduceMin(minVec)

	for ; i < len(v); i++ {
		if v[i] < result {
			result = v[i]
		}
	}

	return result
}

// Max returns the maximum value in v. Returns the zero value of T for an
// empty slice.
func Max[T vek.Lanes](v []T) T {
	if len(v) == 0 {
		var zero T
		return zero
	}

	lanes := vek.MaxLanes[T]()

	if len(v) < lanes {
		result := v[0]
		for _, x := range v[1:] {
			if x > result {
				result = x
			}
		}
		return result
	}

	maxVec := vek.Load(v)

	var i int
	for i = lanes; i+lanes <= len(v); i += lanes {
		maxVec = vek.Max(maxVec, vek.Load(v[i:]))
	}

	result := vek.ReduceMax(maxVec)

	for ; i < len(v); i++ {
		if v[i] > result {
			result = v[i]
		}
	}

	return result
}

// MinMax returns both the minimum and maximum in a single pass.
// Returns zero values for an empty slice.
func MinMax[T vek.Lanes](v []T) (minVal, maxVal T) {
	if len(v) == 0 {
		return minVal, maxVal
	}

	lanes := vek.MaxLanes[T]()

	if len(v) < lanes {
		minVal, maxVal = v[0], v[0]
		for _, x := range v[1:] {
			if x < minVal {
				minVal = x
			}
			if x > maxVal {
				maxVal = x
			}
		}
		return minVal, maxVal
	}

	first := vek.Load(v)
	minVec, maxVec := first, first

	var i int
	for i = lanes; i+lanes <= len(v); i += lanes {
		va := vek.Load(v[i:])
		minVec = vek.Min(minVec, va)
		maxVec = vek.Max(maxVec, va)
	}

	minVal = vek.ReduceMin(minVec)
	maxVal = vek.ReduceMax(maxVec)

	for ; i < len(v); i++ {
		if v[i] < minVal {
			minVal = v[i]
		}
		if v[i] > maxVal {
			maxVal = v[i]
		}
	}

	return minVal, maxVal
}

// ArgMin returns the index of the first minimum element, or -1 for an empty
// slice.
func ArgMin[T vek.Lanes](v []T) int {
	if len(v) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] < v[best] {
			best = i
		}
	}
	return best
}

// ArgMax returns the index of the first maximum element, or -1 for an empty
// slice.
func ArgMax[T vek.Lanes](v []T) int {
	if len(v) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}
