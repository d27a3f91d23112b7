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

// TailMask creates a mask with the first 'count' lanes active. This is the
// shared remainder helper: every kernel that cannot finish an array in whole
// vectors masks the final n mod MaxLanes elements through it rather than
// re-deriving the remainder logic per element type.
//
// Example:
//
//	lanes := vek.MaxLanes[float32]()
//	rem := len(data) % lanes
//	if rem > 0 {
//	    mask := vek.TailMask[float32](rem)
//	    v := vek.MaskLoad(mask, data[len(data)-rem:])
//	    // ... process tail
//	}
func TailMask[T Lanes](count int) Mask[T] {
	maxLanes := MaxLanes[T]()
	if count < 0 {
		count = 0
	}
	if count > maxLanes {
		count = maxLanes
	}

	bits := make([]bool, maxLanes)
	for i := 0; i < count; i++ {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// FirstN creates a mask with the first n lanes active. Identical to TailMask
// with a name that reads better at compaction call sites.
func FirstN[T Lanes](n int) Mask[T] {
	return TailMask[T](n)
}

// ProcessWithTail drives the canonical kernel shape: fullFn(offset) for each
// whole vector, then tailFn(offset, count) once for the n mod lanes
// remainder, if any.
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	maxLanes := MaxLanes[T]()

	fullVectors := size / maxLanes
	for i := 0; i < fullVectors; i++ {
		fullFn(i * maxLanes)
	}

	remaining := size % maxLanes
	if remaining > 0 {
		tailFn(fullVectors*maxLanes, remaining)
	}
}

// AlignedSize rounds size up to the next multiple of the vector width for T.
func AlignedSize[T Lanes](size int) int {
	maxLanes := MaxLanes[T]()
	if maxLanes == 0 {
		return size
	}
	return ((size + maxLanes - 1) / maxLanes) * maxLanes
}

// IsAligned reports whether size is a multiple of the vector width for T.
func IsAligned[T Lanes](size int) bool {
	maxLanes := MaxLanes[T]()
	if maxLanes == 0 {
		return true
	}
	return size%maxLanes == 0
}
