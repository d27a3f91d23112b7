package vek

// Compaction primitives. Compress packs the lanes selected by a mask to the
// front of a vector; CompressStore writes them straight to a destination
// slice. The contrib/compact package builds filter, partition, and the
// while-family on top of these.

// Compress packs lanes where mask is true to the front, zero-filling the
// rest. Returns the compressed vector and the count of packed lanes.
// For example: v=[1,2,3,4], mask=[T,F,T,F] -> result=[1,3,0,0], count=2.
func Compress[T Lanes](v Vec[T], mask Mask[T]) (Vec[T], int) {
	n := min(len(v.data), len(mask.bits))

	result := make([]T, len(v.data))
	count := 0
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			result[count] = v.data[i]
			count++
		}
	}
	return Vec[T]{data: result}, count
}

// CompressStore packs the selected lanes directly into dst and returns the
// number of elements stored. dst must have room for CountTrue(mask) elements;
// lanes beyond len(dst) are counted but not written.
func CompressStore[T Lanes](v Vec[T], mask Mask[T], dst []T) int {
	n := min(len(v.data), len(mask.bits))

	count := 0
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			if count < len(dst) {
				dst[count] = v.data[i]
			}
			count++
		}
	}
	return count
}

// CountTrue counts true lanes in mask. Function form of Mask.CountTrue.
func CountTrue[T Lanes](mask Mask[T]) int {
	return mask.CountTrue()
}

// AllTrue reports whether all lanes are true. Function form of Mask.AllTrue.
func AllTrue[T Lanes](mask Mask[T]) bool {
	return mask.AllTrue()
}

// AllFalse reports whether no lane is true.
func AllFalse[T Lanes](mask Mask[T]) bool {
	for _, bit := range mask.bits {
		if bit {
			return false
		}
	}
	return true
}

// FindFirstTrue returns the index of the first true lane, or -1 if none.
func FindFirstTrue[T Lanes](mask Mask[T]) int {
	for i, bit := range mask.bits {
		if bit {
			return i
		}
	}
	return -1
}

// FindFirstFalse returns the index of the first false lane, or -1 if none.
// The while-family compaction kernels use it to locate the exact boundary
// element inside a mixed vector.
func FindFirstFalse[T Lanes](mask Mask[T]) int {
	for i, bit := range mask.bits {
		if !bit {
			return i
		}
	}
	return -1
}

// MaskAnd returns the lane-wise AND of two masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(a.bits), len(b.bits))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.bits[i] && b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskNot returns the lane-wise complement of a mask.
func MaskNot[T Lanes](m Mask[T]) Mask[T] {
	bits := make([]bool, len(m.bits))
	for i, bit := range m.bits {
		bits[i] = !bit
	}
	return Mask[T]{bits: bits}
}

// MaskAndNot returns a AND NOT b per lane: active where b is active and a is
// not. Used by predicate tails to ignore lanes past the end of the data.
func MaskAndNot[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(a.bits), len(b.bits))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = !a.bits[i] && b.bits[i]
	}
	return Mask[T]{bits: bits}
}
