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

// Package sets provides merge-style operations over pre-sorted slices.
//
// Precondition: inputs must be sorted ascending. This is documented and
// deliberately unchecked; results on unsorted inputs are unspecified.
// All functions write into a caller-provided destination and return the
// number of elements produced.
package sets

import "github.com/fpkit/go-vek/vek"

// Unique copies src into dst with adjacent duplicates collapsed and returns
// the output length. dst must hold up to len(src) elements.
//
//	sets.Unique(dst, []int{1, 1, 2, 2, 2, 3})  // dst[:3] = [1, 2, 3]
func Unique[T vek.Lanes](dst, src []T) int {
	if len(src) == 0 {
		return 0
	}

	dst[0] = src[0]
	out := 1
	for _, x := range src[1:] {
		if x != dst[out-1] {
			dst[out] = x
			out++
		}
	}
	return out
}

// Union writes the sorted set union of a and b into dst and returns the
// output length. Duplicates within and across inputs collapse to one
// occurrence. dst must hold up to len(a)+len(b) elements.
//
//	sets.Union(dst, []int{1, 2, 3}, []int{2, 3, 4})  // dst[:4] = [1, 2, 3, 4]
func Union[T vek.Lanes](dst, a, b []T) int {
	i, j, out := 0, 0, 0

	emit := func(x T) {
		if out == 0 || dst[out-1] != x {
			dst[out] = x
			out++
		}
	}

	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			emit(a[i])
			i++
		case b[j] < a[i]:
			emit(b[j])
			j++
		default:
			emit(a[i])
			i++
			j++
		}
	}
	for ; i < len(a); i++ {
		emit(a[i])
	}
	for ; j < len(b); j++ {
		emit(b[j])
	}

	return out
}

// Intersect writes the sorted set intersection of a and b into dst and
// returns the output length. dst must hold up to min(len(a), len(b))
// elements.
//
//	sets.Intersect(dst, []int{1, 2, 3}, []int{2, 3, 4})  // dst[:2] = [2, 3]
func Intersect[T vek.Lanes](dst, a, b []T) int {
	i, j, out := 0, 0, 0

	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case b[j] < a[i]:
			j++
		default:
			if out == 0 || dst[out-1] != a[i] {
				dst[out] = a[i]
				out++
			}
			i++
			j++
		}
	}

	return out
}
