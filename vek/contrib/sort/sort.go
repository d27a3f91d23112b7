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

// Package sort provides non-mutating sorts over numeric slices.
//
// Both entry points copy the input into a caller-provided destination and
// sort there; the source is never written. Quicksort is an introsort variant
// (3-way partition, insertion-sort cutoff, heapsort depth fallback).
// Mergesort is stable and needs a caller-provided temp buffer of the same
// length.
package sort

import "github.com/fpkit/go-vek/vek"

// sortInsertionThreshold: use insertion sort for ranges this size or smaller.
const sortInsertionThreshold = 24

// Quicksort copies src into dst and sorts dst ascending. Equal elements keep
// no particular order. dst must be at least len(src) long; the number of
// sorted elements (len(src)) is returned.
func Quicksort[T vek.Lanes](dst, src []T) int {
	n := min(len(dst), len(src))
	copy(dst[:n], src[:n])

	// Depth limit 2*floor(log2(n)) before falling back to heapsort.
	maxDepth := 0
	for tmp := n; tmp > 0; tmp >>= 1 {
		maxDepth++
	}
	maxDepth *= 2

	quicksortImpl(dst[:n], maxDepth)
	return n
}

func quicksortImpl[T vek.Lanes](data []T, depthLimit int) {
	n := len(data)
	if n <= 1 {
		return
	}

	if n <= sortInsertionThreshold {
		sortInsertion(data)
		return
	}

	if depthLimit == 0 {
		sortHeap(data)
		return
	}

	pivot := medianOfThree(data)
	lt, gt := partition3Way(data, pivot)

	if lt > 0 {
		quicksortImpl(data[:lt], depthLimit-1)
	}
	if gt < n {
		quicksortImpl(data[gt:], depthLimit-1)
	}
}

// medianOfThree picks a pivot from the first, middle, and last elements.
func medianOfThree[T vek.Lanes](data []T) T {
	a, b, c := data[0], data[len(data)/2], data[len(data)-1]
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
		if a > b {
			b = a
		}
	}
	return b
}

// partition3Way partitions data around pivot. Returns (lt, gt) such that
// data[:lt] < pivot, data[lt:gt] == pivot, data[gt:] > pivot.
func partition3Way[T vek.Lanes](data []T, pivot T) (int, int) {
	lt, i, gt := 0, 0, len(data)
	for i < gt {
		if data[i] < pivot {
			data[lt], data[i] = data[i], data[lt]
			lt++
			i++
		} else if data[i] > pivot {
			gt--
			data[i], data[gt] = data[gt], data[i]
		} else {
			i++
		}
	}
	return lt, gt
}

func sortInsertion[T vek.Lanes](data []T) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

func sortHeap[T vek.Lanes](data []T) {
	n := len(data)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n)
	}
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data, 0, i)
	}
}

func siftDown[T vek.Lanes](data []T, root, end int) {
	for {
		child := 2*root + 1
		if child >= end {
			return
		}
		if child+1 < end && data[child+1] > data[child] {
			child++
		}
		if data[root] >= data[child] {
			return
		}
		data[root], data[child] = data[child], data[root]
		root = child
	}
}

// Mergesort copies src into dst and sorts dst ascending, stably: elements
// comparing equal keep their original relative order. tmp must be at least
// len(src) long. Returns the number of sorted elements.
func Mergesort[T vek.Lanes](dst, tmp, src []T) int {
	n := min(len(dst), min(len(tmp), len(src)))
	copy(dst[:n], src[:n])

	// Bottom-up merge, doubling the run width each pass.
	a, b := dst[:n], tmp[:n]
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRuns(b[lo:hi], a[lo:mid], a[mid:hi])
		}
		a, b = b, a
	}

	if n > 0 && &a[0] != &dst[0] {
		copy(dst[:n], a)
	}
	return n
}

// mergeRuns merges two sorted runs into out. Ties take from the left run,
// which is what makes the sort stable.
func mergeRuns[T vek.Lanes](out, left, right []T) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if right[j] < left[i] {
			out[k] = right[j]
			j++
		} else {
			out[k] = left[i]
			i++
		}
		k++
	}
	for i < len(left) {
		out[k] = left[i]
		i++
		k++
	}
	for j < len(right) {
		out[k] = right[j]
		j++
		k++
	}
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T vek.Lanes](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
