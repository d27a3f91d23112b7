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

package algo

import "github.com/fpkit/go-vek/vek"

// Map kernels. Every function processes min(len(dst), len(inputs)) elements:
// whole vectors first, then the scalar remainder.

// AXPY computes dst[i] = alpha*x[i] + y[i], the classic fused
// scale-and-accumulate.
func AXPY[T vek.Floats](dst []T, alpha T, x, y []T) {
	n := min(len(dst), min(len(x), len(y)))
	alphaVec := vek.Set(alpha)
	lanes := alphaVec.NumLanes()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		vek.Store(vek.MulAdd(alphaVec, vek.Load(x[i:]), vek.Load(y[i:])), dst[i:])
	}

	for ; i < n; i++ {
		dst[i] = alpha*x[i] + y[i]
	}
}

// Scale computes dst[i] = src[i] * factor.
func Scale[T vek.Lanes](dst, src []T, factor T) {
	n := min(len(dst), len(src))
	factorVec := vek.Set(factor)
	lanes := factorVec.NumLanes()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		vek.Store(vek.Mul(vek.Load(src[i:]), factorVec), dst[i:])
	}

	for ; i < n; i++ {
		dst[i] = src[i] * factor
	}
}

// Offset computes dst[i] = src[i] + delta.
func Offset[T vek.Lanes](dst, src []T, delta T) {
	n := min(len(dst), len(src))
	deltaVec := vek.Set(delta)
	lanes := deltaVec.NumLanes()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		vek.Store(vek.Add(vek.Load(src[i:]), deltaVec), dst[i:])
	}

	for ; i < n; i++ {
		dst[i] = src[i] + delta
	}
}

// ZipAdd computes dst[i] = a[i] + b[i].
func ZipAdd[T vek.Lanes](dst, a, b []T) {
	n := min(len(dst), min(len(a), len(b)))
	lanes := vek.MaxLanes[T]()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		vek.Store(vek.Add(vek.Load(a[i:]), vek.Load(b[i:])), dst[i:])
	}

	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

// ZipSub computes dst[i] = a[i] - b[i].
func ZipSub[T vek.Lanes](dst, a, b []T) {
	n := min(len(dst), min(len(a), len(b)))
	lanes := vek.MaxLanes[T]()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		vek.Store(vek.Sub(vek.Load(a[i:]), vek.Load(b[i:])), dst[i:])
	}

	for ; i < n; i++ {
		dst[i] = a[i] - b[i]
	}
}

// ZipMul computes dst[i] = a[i] * b[i].
func ZipMul[T vek.Lanes](dst, a, b []T) {
	n := min(len(dst), min(len(a), len(b)))
	lanes := vek.MaxLanes[T]()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		vek.Store(vek.Mul(vek.Load(a[i:]), vek.Load(b[i:])), dst[i:])
	}

	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

// Abs computes dst[i] = |src[i]|.
func Abs[T vek.Lanes](dst, src []T) {
	n := min(len(dst), len(src))
	lanes := vek.MaxLanes[T]()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		vek.Store(vek.Abs(vek.Load(src[i:])), dst[i:])
	}

	tail := vek.Abs(vek.Load(src[i:n]))
	vek.Store(tail, dst[i:n])
}

// Sqrt computes dst[i] = sqrt(src[i]). Floats only.
func Sqrt[T vek.Floats](dst, src []T) {
	n := min(len(dst), len(src))
	lanes := vek.MaxLanes[T]()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		vek.Store(vek.Sqrt(vek.Load(src[i:])), dst[i:])
	}

	tail := vek.Sqrt(vek.Load(src[i:n]))
	vek.Store(tail, dst[i:n])
}

// Clamp computes dst[i] = min(max(src[i], lo), hi).
func Clamp[T vek.Lanes](dst, src []T, lo, hi T) {
	n := min(len(dst), len(src))
	lanes := vek.MaxLanes[T]()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		vek.Store(vek.Clamp(vek.Load(src[i:]), lo, hi), dst[i:])
	}

	for ; i < n; i++ {
		x := src[i]
		if x < lo {
			x = lo
		} else if x > hi {
			x = hi
		}
		dst[i] = x
	}
}
