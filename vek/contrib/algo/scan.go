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

// prefixSumVec computes the inclusive prefix sum within a single vector
// using log2(lanes) slide-and-add steps.
func prefixSumVec[T vek.Lanes](v vek.Vec[T]) vek.Vec[T] {
	lanes := v.NumLanes()
	for k := 1; k < lanes; k *= 2 {
		v = vek.Add(v, vek.SlideUp(v, k))
	}
	return v
}

// PrefixSum writes the inclusive prefix sum of src into dst:
// dst[i] = src[0] + src[1] + ... + src[i]. src is not modified.
//
// Example:
//
//	src := []int64{1, 2, 3, 4, 5, 6, 7, 8}
//	dst := make([]int64, len(src))
//	algo.PrefixSum(dst, src)
//	// dst = [1, 3, 6, 10, 15, 21, 28, 36]
func PrefixSum[T vek.Lanes](dst, src []T) {
	n := min(len(dst), len(src))
	if n == 0 {
		return
	}

	lanes := vek.MaxLanes[T]()
	var carry T

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		prefixed := prefixSumVec(vek.Load(src[i:]))
		prefixed = vek.Add(prefixed, vek.Set(carry))
		vek.Store(prefixed, dst[i:])
		carry = vek.GetLane(prefixed, lanes-1)
	}

	for ; i < n; i++ {
		carry += src[i]
		dst[i] = carry
	}
}

// PrefixSumInPlace computes the inclusive prefix sum in place. Use PrefixSum
// to keep the original.
func PrefixSumInPlace[T vek.Lanes](data []T) {
	PrefixSum(data, data)
}
