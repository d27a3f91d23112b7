package algo

import "github.com/fpkit/go-vek/vek"

// Essential list operations. All of them copy into the caller's destination
// and return the number of elements written; the source is never modified.

// Take copies the first count elements of src into dst and returns the
// number copied (possibly fewer if src or dst is shorter).
func Take[T vek.Lanes](dst, src []T, count int) int {
	if count < 0 {
		count = 0
	}
	n := min(count, min(len(dst), len(src)))
	copy(dst[:n], src[:n])
	return n
}

// Drop copies src with its first count elements removed into dst and returns
// the number copied.
func Drop[T vek.Lanes](dst, src []T, count int) int {
	if count < 0 {
		count = 0
	}
	if count >= len(src) {
		return 0
	}
	n := min(len(dst), len(src)-count)
	copy(dst[:n], src[count:count+n])
	return n
}

// Reverse writes src in reverse order into dst and returns the number of
// elements written. Processes a vector of lanes per iteration from the back
// of src forward.
func Reverse[T vek.Lanes](dst, src []T) int {
	n := min(len(dst), len(src))
	lanes := vek.MaxLanes[T]()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		// Lanes i..i+lanes of the output come from the mirrored block at the
		// end of src, reversed in-register.
		v := vek.Load(src[n-i-lanes:])
		vek.Store(vek.ReverseLanes(v), dst[i:])
	}

	for ; i < n; i++ {
		dst[i] = src[n-1-i]
	}

	return n
}
