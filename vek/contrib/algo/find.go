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

// Find returns the index of the first element equal to value, or -1 if not
// found. Compares a whole vector of lanes per iteration.
func Find[T vek.Lanes](slice []T, value T) int {
	n := len(slice)
	if n == 0 {
		return -1
	}

	target := vek.Set(value)
	lanes := vek.MaxLanes[T]()
	i := 0

	for ; i+lanes <= n; i += lanes {
		mask := vek.Equal(vek.Load(slice[i:]), target)
		if idx := vek.FindFirstTrue(mask); idx >= 0 {
			return i + idx
		}
	}

	for ; i < n; i++ {
		if slice[i] == value {
			return i
		}
	}

	return -1
}

// FindIndex returns the index of the first element satisfying pred, or -1.
func FindIndex[T vek.Lanes, P Predicate[T]](slice []T, pred P) int {
	n := len(slice)
	lanes := vek.MaxLanes[T]()
	i := 0

	for ; i+lanes <= n; i += lanes {
		mask := pred.Apply(vek.Load(slice[i:]))
		if idx := vek.FindFirstTrue(mask); idx >= 0 {
			return i + idx
		}
	}

	for ; i < n; i++ {
		if pred.Test(slice[i]) {
			return i
		}
	}

	return -1
}

// Count returns the number of elements equal to value.
func Count[T vek.Lanes](slice []T, value T) int {
	n := len(slice)
	if n == 0 {
		return 0
	}

	target := vek.Set(value)
	lanes := vek.MaxLanes[T]()
	count := 0
	i := 0

	for ; i+lanes <= n; i += lanes {
		count += vek.CountTrue(vek.Equal(vek.Load(slice[i:]), target))
	}

	for ; i < n; i++ {
		if slice[i] == value {
			count++
		}
	}

	return count
}

// Contains reports whether slice contains value.
func Contains[T vek.Lanes](slice []T, value T) bool {
	return Find(slice, value) >= 0
}

// All reports whether pred holds for every element. Returns true for an
// empty slice. Short-circuits on the first vector with a failing lane.
func All[T vek.Lanes, P Predicate[T]](slice []T, pred P) bool {
	n := len(slice)
	lanes := vek.MaxLanes[T]()
	i := 0

	for ; i+lanes <= n; i += lanes {
		mask := pred.Apply(vek.Load(slice[i:]))
		if !vek.AllTrue(mask) {
			return false
		}
	}

	for ; i < n; i++ {
		if !pred.Test(slice[i]) {
			return false
		}
	}

	return true
}

// Any reports whether pred holds for at least one element. Returns false for
// an empty slice. Short-circuits on the first vector with a passing lane.
func Any[T vek.Lanes, P Predicate[T]](slice []T, pred P) bool {
	n := len(slice)
	lanes := vek.MaxLanes[T]()
	i := 0

	for ; i+lanes <= n; i += lanes {
		mask := pred.Apply(vek.Load(slice[i:]))
		if mask.AnyTrue() {
			return true
		}
	}

	for ; i < n; i++ {
		if pred.Test(slice[i]) {
			return true
		}
	}

	return false
}
