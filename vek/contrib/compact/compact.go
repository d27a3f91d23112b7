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

// Package compact provides stream compaction: producing a variable-length,
// densely packed output from a fixed-length input.
//
// Unlike the fixed-shape map kernels, output length here is data-dependent.
// The vector strategy is: evaluate the predicate as a lane mask, pack the
// matching lanes contiguously with vek.CompressStore, and advance the output
// cursor by the number of matches. The while-family additionally stops at the
// first vector containing a failing lane and resolves the exact boundary
// element from the mask.
//
// All functions preserve the relative order of emitted elements and return
// counts; callers size dst with len(src) in the worst case and must not read
// past the returned count.
package compact

import (
	"github.com/fpkit/go-vek/vek"
	"github.com/fpkit/go-vek/vek/contrib/algo"
)

// Filter writes the elements of src satisfying pred into dst, in order, and
// returns the number written. dst must hold up to len(src) elements.
func Filter[T vek.Lanes, P algo.Predicate[T]](dst, src []T, pred P) int {
	n := len(src)
	lanes := vek.MaxLanes[T]()
	out := 0

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		v := vek.Load(src[i:])
		mask := pred.Apply(v)
		out += vek.CompressStore(v, mask, dst[out:])
	}

	for ; i < n; i++ {
		if pred.Test(src[i]) {
			dst[out] = src[i]
			out++
		}
	}

	return out
}

// Partition splits src into elements satisfying pred (written to matched)
// and the rest (written to rest), both in original order. Returns the two
// counts; they always sum to len(src).
func Partition[T vek.Lanes, P algo.Predicate[T]](matched, rest, src []T, pred P) (int, int) {
	n := len(src)
	lanes := vek.MaxLanes[T]()
	nMatched, nRest := 0, 0

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		v := vek.Load(src[i:])
		mask := pred.Apply(v)
		nMatched += vek.CompressStore(v, mask, matched[nMatched:])
		nRest += vek.CompressStore(v, vek.MaskNot(mask), rest[nRest:])
	}

	for ; i < n; i++ {
		if pred.Test(src[i]) {
			matched[nMatched] = src[i]
			nMatched++
		} else {
			rest[nRest] = src[i]
			nRest++
		}
	}

	return nMatched, nRest
}

// TakeWhile copies the longest prefix of src whose elements all satisfy pred
// into dst and returns its length. The vector loop stops at the first vector
// containing a failing lane; the mask pinpoints the boundary element.
func TakeWhile[T vek.Lanes, P algo.Predicate[T]](dst, src []T, pred P) int {
	boundary := prefixLen(src, pred)
	copy(dst[:boundary], src[:boundary])
	return boundary
}

// DropWhile copies src with its longest satisfying prefix removed into dst
// and returns the number of elements written.
func DropWhile[T vek.Lanes, P algo.Predicate[T]](dst, src []T, pred P) int {
	boundary := prefixLen(src, pred)
	out := len(src) - boundary
	copy(dst[:out], src[boundary:])
	return out
}

// prefixLen returns the length of the longest prefix of src satisfying pred.
func prefixLen[T vek.Lanes, P algo.Predicate[T]](src []T, pred P) int {
	n := len(src)
	lanes := vek.MaxLanes[T]()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		mask := pred.Apply(vek.Load(src[i:]))
		if idx := vek.FindFirstFalse(mask); idx >= 0 {
			return i + idx
		}
	}

	for ; i < n; i++ {
		if !pred.Test(src[i]) {
			return i
		}
	}

	return n
}
