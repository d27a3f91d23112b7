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

package vek

import "math"

// This file provides the pure Go (scalar) implementations of the vector
// operations. SIMD backends may replace them via build tags; the scalar
// forms are the reference semantics and the fallback when VEK_NO_SIMD is set.

// Load creates a vector by loading up to MaxLanes elements from src.
func Load[T Lanes](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes a vector's lanes to dst.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// Iota creates a vector with lanes set to 0, 1, 2, ...
func Iota[T Lanes]() Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = T(i)
	}
	return Vec[T]{data: data}
}

// Add performs lane-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Sub performs lane-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: result}
}

// Mul performs lane-wise multiplication.
//
// Note that 8-bit lanes have no packed multiply on most targets; SIMD
// backends widen, multiply, and narrow, which is why the byte kernels are
// slower than their lane count suggests. The scalar semantics are identical.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

// Div performs lane-wise division. Floats only.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] / b.data[i]
	}
	return Vec[T]{data: result}
}

// Neg negates every lane. For unsigned types this is two's-complement
// wraparound negation.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	var zero T
	for i, x := range v.data {
		result[i] = zero - x
	}
	return Vec[T]{data: result}
}

// Abs computes the lane-wise absolute value. For unsigned types it is the
// identity; for floats it clears the sign bit (so Abs(-0) == 0).
func Abs[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = absHelper(x)
	}
	return Vec[T]{data: result}
}

func absHelper[T Lanes](x T) T {
	switch v := any(x).(type) {
	case float32:
		return any(float32(math.Abs(float64(v)))).(T)
	case float64:
		return any(math.Abs(v)).(T)
	case uint8, uint16, uint32, uint64:
		return x
	default:
		var zero T
		if x < zero {
			return zero - x
		}
		return x
	}
}

// Min performs lane-wise minimum. NaN handling follows Go comparison
// semantics: a NaN lane in either operand yields the b lane.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if a.data[i] < b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// Max performs lane-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if a.data[i] > b.data[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// Sqrt computes the lane-wise square root. Floats only.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(math.Sqrt(float64(x)))
	}
	return Vec[T]{data: result}
}

// Clamp limits every lane to [lo, hi].
func Clamp[T Lanes](v Vec[T], lo, hi T) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		if x < lo {
			x = lo
		} else if x > hi {
			x = hi
		}
		result[i] = x
	}
	return Vec[T]{data: result}
}

// MulAdd computes a*b + c lane-wise. Floats only.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	n := min(len(a.data), min(len(b.data), len(c.data)))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i]*b.data[i] + c.data[i]
	}
	return Vec[T]{data: result}
}

// ReduceSum returns the sum of all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for _, x := range v.data {
		sum += x
	}
	return sum
}

// ReduceMul returns the product of all lanes. Returns 1 for an empty vector.
func ReduceMul[T Lanes](v Vec[T]) T {
	prod := T(1)
	for _, x := range v.data {
		prod *= x
	}
	return prod
}

// ReduceMin returns the minimum lane. Returns the zero value for an empty
// vector.
func ReduceMin[T Lanes](v Vec[T]) T {
	if len(v.data) == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for _, x := range v.data[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// ReduceMax returns the maximum lane. Returns the zero value for an empty
// vector.
func ReduceMax[T Lanes](v Vec[T]) T {
	if len(v.data) == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for _, x := range v.data[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

// Equal returns a mask of lanes where a == b.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] == b.data[i]
	}
	return Mask[T]{bits: bits}
}

// NotEqual returns a mask of lanes where a != b.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] != b.data[i]
	}
	return Mask[T]{bits: bits}
}

// Less returns a mask of lanes where a < b.
func Less[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] < b.data[i]
	}
	return Mask[T]{bits: bits}
}

// LessEqual returns a mask of lanes where a <= b.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] <= b.data[i]
	}
	return Mask[T]{bits: bits}
}

// Greater returns a mask of lanes where a > b.
func Greater[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] > b.data[i]
	}
	return Mask[T]{bits: bits}
}

// GreaterEqual returns a mask of lanes where a >= b.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] >= b.data[i]
	}
	return Mask[T]{bits: bits}
}

// IsNaN returns a mask of lanes holding NaN. Floats only.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	bits := make([]bool, len(v.data))
	for i, x := range v.data {
		bits[i] = math.IsNaN(float64(x))
	}
	return Mask[T]{bits: bits}
}

// IfThenElse selects a's lane where the mask is active, b's lane otherwise.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if mask.GetBit(i) {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// MaskLoad loads lanes from src where the mask is active; inactive lanes are
// zero. Safe for tails: loads only as many elements as src holds.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := 0; i < n && i < len(src); i++ {
		if mask.GetBit(i) {
			data[i] = src[i]
		}
	}
	return Vec[T]{data: data}
}

// MaskStore writes lanes to dst where the mask is active; other positions in
// dst are untouched.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	n := min(len(v.data), len(dst))
	for i := 0; i < n; i++ {
		if mask.GetBit(i) {
			dst[i] = v.data[i]
		}
	}
}
