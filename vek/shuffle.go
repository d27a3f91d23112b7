package vek

// Lane-rearranging operations used by the scan kernels.

// GetLane returns lane i of v, or the zero value if i is out of range.
func GetLane[T Lanes](v Vec[T], i int) T {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero
	}
	return v.data[i]
}

// SlideUp shifts lanes toward higher indices by k, filling vacated low lanes
// with zero: result[i] = v[i-k] for i >= k.
func SlideUp[T Lanes](v Vec[T], k int) Vec[T] {
	n := len(v.data)
	result := make([]T, n)
	if k < 0 {
		k = 0
	}
	for i := k; i < n; i++ {
		result[i] = v.data[i-k]
	}
	return Vec[T]{data: result}
}

// SlideDown shifts lanes toward lower indices by k, filling vacated high
// lanes with zero: result[i] = v[i+k] for i < n-k.
func SlideDown[T Lanes](v Vec[T], k int) Vec[T] {
	n := len(v.data)
	result := make([]T, n)
	if k < 0 {
		k = 0
	}
	for i := 0; i+k < n; i++ {
		result[i] = v.data[i+k]
	}
	return Vec[T]{data: result}
}

// ReverseLanes reverses the order of lanes in v.
func ReverseLanes[T Lanes](v Vec[T]) Vec[T] {
	n := len(v.data)
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = v.data[n-1-i]
	}
	return Vec[T]{data: result}
}
