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

package stats

import (
	"github.com/fpkit/go-vek/vek"
	"github.com/fpkit/go-vek/vek/contrib/reduce"
)

// SMA writes the simple moving average of src with the given window into dst
// and returns the number of averages written, len(src)-window+1 for valid
// input. Only the first window sum is a full reduction; subsequent windows
// slide in constant time.
//
// A window smaller than 1 or larger than len(src) writes nothing and returns
// 0. Window 1 degenerates to a copy. Writing stops when dst fills up.
func SMA[T vek.Floats](dst, src []T, window int) int {
	if window < 1 || window > len(src) {
		return 0
	}
	out := min(len(dst), len(src)-window+1)
	if out == 0 {
		return 0
	}
	inv := 1 / T(window)
	sum := reduce.Sum(src[:window])
	dst[0] = sum * inv
	for i := 1; i < out; i++ {
		sum += src[i+window-1] - src[i-1]
		dst[i] = sum * inv
	}
	return out
}

// EMA writes the exponential moving average of src into dst using smoothing
// factor alpha in (0, 1] and returns the number of values written, one per
// input sample. The series seeds with src[0]; each following value blends
// alpha of the new sample with 1-alpha of the running average.
//
// Empty input, or alpha outside (0, 1], writes nothing and returns 0.
func EMA[T vek.Floats](dst, src []T, alpha T) int {
	if len(src) == 0 || alpha <= 0 || alpha > 1 {
		return 0
	}
	out := min(len(dst), len(src))
	if out == 0 {
		return 0
	}
	prev := src[0]
	dst[0] = prev
	for i := 1; i < out; i++ {
		prev = alpha*src[i] + (1-alpha)*prev
		dst[i] = prev
	}
	return out
}

// WMA writes the linearly weighted moving average of src into dst and
// returns the number of averages written. Within each window the newest
// sample carries weight window and the oldest weight 1, normalized by the
// triangular number window*(window+1)/2.
//
// Window bounds behave as in SMA.
func WMA[T vek.Floats](dst, src []T, window int) int {
	if window < 1 || window > len(src) {
		return 0
	}
	out := min(len(dst), len(src)-window+1)
	norm := 1 / T(window*(window+1)/2)
	// weightedSum carries sum(w_j * x_j); plainSum carries sum(x_j) so the
	// window slides in constant time: dropping the oldest sample lowers
	// every remaining weight by one.
	weights := make([]T, window)
	for j := range weights {
		weights[j] = T(j + 1)
	}
	weightedSum := reduce.Dot(weights, src[:window])
	plainSum := reduce.Sum(src[:window])
	for i := 0; i < out; i++ {
		dst[i] = weightedSum * norm
		if i+window < len(src) {
			weightedSum += T(window)*src[i+window] - plainSum
			plainSum += src[i+window] - src[i]
		}
	}
	return out
}

// Rolling applies f to every length-window view of src, writing one result
// per window into dst, and returns the number of results. The view passed to
// f aliases src and must not be modified or retained.
//
// Window bounds behave as in SMA.
func Rolling[T vek.Floats](dst []T, src []T, window int, f func([]T) T) int {
	if window < 1 || window > len(src) {
		return 0
	}
	out := min(len(dst), len(src)-window+1)
	for i := 0; i < out; i++ {
		dst[i] = f(src[i : i+window])
	}
	return out
}

// RollingSum writes the sum of every length-window view of src into dst,
// sliding in constant time per step.
func RollingSum[T vek.Floats](dst, src []T, window int) int {
	if window < 1 || window > len(src) {
		return 0
	}
	out := min(len(dst), len(src)-window+1)
	if out == 0 {
		return 0
	}
	sum := reduce.Sum(src[:window])
	dst[0] = sum
	for i := 1; i < out; i++ {
		sum += src[i+window-1] - src[i-1]
		dst[i] = sum
	}
	return out
}

// RollingMin writes the minimum of every length-window view of src into dst.
// Each window is reduced independently.
func RollingMin[T vek.Floats](dst, src []T, window int) int {
	return Rolling(dst, src, window, reduce.Min[T])
}

// RollingMax writes the maximum of every length-window view of src into dst.
// Each window is reduced independently.
func RollingMax[T vek.Floats](dst, src []T, window int) int {
	return Rolling(dst, src, window, reduce.Max[T])
}

// RollingMean is SMA under the name the rolling family uses.
func RollingMean[T vek.Floats](dst, src []T, window int) int {
	return SMA(dst, src, window)
}
