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

package generic

// Type-erased sorts. Both copy src into dst and order dst with the caller's
// comparator; src is never written.

// insertionThreshold: ranges this size or smaller use insertion sort.
const insertionThreshold = 12

// Quicksort copies src into dst and sorts it by less. Not stable. Returns
// the number of sorted elements.
func Quicksort(dst, src Container, less LessFunc, ctx any) int {
	n := min(dst.Len(), src.Len())
	copy(dst.data[:n*src.size], src.data[:n*src.size])

	scratch := make([]byte, dst.size)
	quicksortRange(dst, 0, n, less, ctx, scratch)
	return n
}

func quicksortRange(c Container, lo, hi int, less LessFunc, ctx any, scratch []byte) {
	for hi-lo > insertionThreshold {
		p := partitionRange(c, lo, hi, less, ctx, scratch)
		// Recurse into the smaller side, loop on the larger.
		if p-lo < hi-p-1 {
			quicksortRange(c, lo, p, less, ctx, scratch)
			lo = p + 1
		} else {
			quicksortRange(c, p+1, hi, less, ctx, scratch)
			hi = p
		}
	}
	insertionRange(c, lo, hi, less, ctx, scratch)
}

// partitionRange partitions [lo, hi) around a median-of-three pivot moved to
// hi-1, returning the pivot's final index.
func partitionRange(c Container, lo, hi int, less LessFunc, ctx any, scratch []byte) int {
	mid := lo + (hi-lo)/2
	if less(c.At(mid), c.At(lo), ctx) {
		c.swap(lo, mid, scratch)
	}
	if less(c.At(hi-1), c.At(lo), ctx) {
		c.swap(lo, hi-1, scratch)
	}
	if less(c.At(hi-1), c.At(mid), ctx) {
		c.swap(mid, hi-1, scratch)
	}
	c.swap(mid, hi-1, scratch)

	pivot := hi - 1
	store := lo
	for i := lo; i < pivot; i++ {
		if less(c.At(i), c.At(pivot), ctx) {
			c.swap(i, store, scratch)
			store++
		}
	}
	c.swap(store, pivot, scratch)
	return store
}

func insertionRange(c Container, lo, hi int, less LessFunc, ctx any, scratch []byte) {
	for i := lo + 1; i < hi; i++ {
		for j := i; j > lo && less(c.At(j), c.At(j-1), ctx); j-- {
			c.swap(j, j-1, scratch)
		}
	}
}

func (c Container) swap(i, j int, scratch []byte) {
	if i == j {
		return
	}
	a, b := c.At(i), c.At(j)
	copy(scratch, a)
	copy(a, b)
	copy(b, scratch)
}

// Mergesort copies src into dst and sorts it stably by less: elements
// comparing equal keep their original relative order. tmp must provide
// src.Len() elements of the same size. Returns the number sorted.
func Mergesort(dst, tmp, src Container, less LessFunc, ctx any) int {
	n := min(dst.Len(), min(tmp.Len(), src.Len()))
	copy(dst.data[:n*src.size], src.data[:n*src.size])

	a, b := dst, tmp
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRange(b, a, lo, mid, hi, less, ctx)
		}
		a, b = b, a
	}

	if n > 0 && &a.data[0] != &dst.data[0] {
		copy(dst.data[:n*dst.size], a.data[:n*a.size])
	}
	return n
}

// mergeRange merges the sorted runs src[lo:mid] and src[mid:hi] into
// out[lo:hi]. Ties take from the left run, preserving stability.
func mergeRange(out, src Container, lo, mid, hi int, less LessFunc, ctx any) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if less(src.At(j), src.At(i), ctx) {
			copy(out.At(k), src.At(j))
			j++
		} else {
			copy(out.At(k), src.At(i))
			i++
		}
		k++
	}
	for ; i < mid; i++ {
		copy(out.At(k), src.At(i))
		k++
	}
	for ; j < hi; j++ {
		copy(out.At(k), src.At(j))
		k++
	}
}
