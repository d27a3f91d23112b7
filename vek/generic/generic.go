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

// Package generic provides type-erased higher-order operations over arbitrary
// fixed-size (POD) element types.
//
// Elements are viewed through a Container: a byte slice plus an element size.
// No type information beyond the size is retained. Operations take a callback
// and an opaque context value; the context is forwarded to every callback
// invocation and never inspected by this package.
//
// This layer exists for element types that have no specialized kernel. The
// indirect calls through callbacks cost roughly 20-30% relative to the typed
// kernels; that is the price of supporting arbitrary element types without
// per-type code generation.
package generic

import "bytes"

// Container views caller-owned memory as elements of a fixed byte size.
// It never owns or resizes the underlying storage.
type Container struct {
	data []byte
	size int
}

// NewContainer wraps data as elements of elemSize bytes. len(data) must be a
// multiple of elemSize; trailing bytes short of a full element are ignored.
func NewContainer(data []byte, elemSize int) Container {
	if elemSize <= 0 {
		return Container{}
	}
	n := len(data) / elemSize
	return Container{data: data[:n*elemSize], size: elemSize}
}

// Len returns the number of elements.
func (c Container) Len() int {
	if c.size == 0 {
		return 0
	}
	return len(c.data) / c.size
}

// ElemSize returns the element size in bytes.
func (c Container) ElemSize() int { return c.size }

// At returns the byte view of element i. The view aliases the container's
// storage; writing through it writes the element.
func (c Container) At(i int) []byte {
	off := i * c.size
	return c.data[off : off+c.size]
}

// Callback signatures. The ctx argument is the opaque context supplied at the
// call site, forwarded as-is.
type (
	// FoldFunc folds element elem into the accumulator acc in place.
	FoldFunc func(acc, elem []byte, ctx any)

	// MapFunc transforms src into dst. dst and src never alias.
	MapFunc func(dst, src []byte, ctx any)

	// PredFunc reports whether elem satisfies the predicate.
	PredFunc func(elem []byte, ctx any) bool

	// ZipFunc combines elements a and b into dst.
	ZipFunc func(dst, a, b []byte, ctx any)

	// LessFunc reports whether element a orders before element b.
	LessFunc func(a, b []byte, ctx any) bool
)

// Fold applies f(acc, elem) for each element of src in order. acc is
// caller-provided accumulator storage, updated in place.
func Fold(acc []byte, src Container, f FoldFunc, ctx any) {
	for i := 0; i < src.Len(); i++ {
		f(acc, src.At(i), ctx)
	}
}

// Map applies f to every element of src, writing results into dst. Returns
// the number of elements produced (the shorter of the two containers).
func Map(dst, src Container, f MapFunc, ctx any) int {
	n := min(dst.Len(), src.Len())
	for i := 0; i < n; i++ {
		f(dst.At(i), src.At(i), ctx)
	}
	return n
}

// Filter copies the elements of src satisfying pred into dst, in order, and
// returns the count. dst must hold up to src.Len() elements.
func Filter(dst, src Container, pred PredFunc, ctx any) int {
	out := 0
	for i := 0; i < src.Len(); i++ {
		elem := src.At(i)
		if pred(elem, ctx) {
			copy(dst.At(out), elem)
			out++
		}
	}
	return out
}

// ZipWith combines a and b element-wise into dst and returns the count
// (shortest of the three).
func ZipWith(dst, a, b Container, f ZipFunc, ctx any) int {
	n := min(dst.Len(), min(a.Len(), b.Len()))
	for i := 0; i < n; i++ {
		f(dst.At(i), a.At(i), b.At(i), ctx)
	}
	return n
}

// Partition splits src into elements satisfying pred (into matched) and the
// rest (into rest), both in original order. The returned counts sum to
// src.Len().
func Partition(matched, rest, src Container, pred PredFunc, ctx any) (int, int) {
	nMatched, nRest := 0, 0
	for i := 0; i < src.Len(); i++ {
		elem := src.At(i)
		if pred(elem, ctx) {
			copy(matched.At(nMatched), elem)
			nMatched++
		} else {
			copy(rest.At(nRest), elem)
			nRest++
		}
	}
	return nMatched, nRest
}

// Take copies the first count elements of src into dst and returns the
// number copied.
func Take(dst, src Container, count int) int {
	if count < 0 {
		count = 0
	}
	n := min(count, min(dst.Len(), src.Len()))
	copy(dst.data[:n*src.size], src.data[:n*src.size])
	return n
}

// Drop copies src without its first count elements into dst and returns the
// number copied.
func Drop(dst, src Container, count int) int {
	if count < 0 {
		count = 0
	}
	if count >= src.Len() {
		return 0
	}
	n := min(dst.Len(), src.Len()-count)
	copy(dst.data[:n*src.size], src.data[count*src.size:(count+n)*src.size])
	return n
}

// Reverse writes src in reverse element order into dst and returns the count.
func Reverse(dst, src Container) int {
	n := min(dst.Len(), src.Len())
	for i := 0; i < n; i++ {
		copy(dst.At(i), src.At(n-1-i))
	}
	return n
}

// Find returns the index of the first element satisfying pred, or -1.
func Find(src Container, pred PredFunc, ctx any) int {
	for i := 0; i < src.Len(); i++ {
		if pred(src.At(i), ctx) {
			return i
		}
	}
	return -1
}

// FindBytes returns the index of the first element equal to needle
// byte-for-byte, or -1.
func FindBytes(src Container, needle []byte) int {
	for i := 0; i < src.Len(); i++ {
		if bytes.Equal(src.At(i), needle) {
			return i
		}
	}
	return -1
}

// Compose returns f after g: the returned MapFunc applies g to the source
// element, then f to g's result. It allocates one element-sized scratch per
// invocation, which keeps the composition re-entrant.
func Compose(f, g MapFunc) MapFunc {
	return func(dst, src []byte, ctx any) {
		tmp := make([]byte, len(dst))
		g(tmp, src, ctx)
		f(dst, tmp, ctx)
	}
}
