package algo

import (
	"math"
	"testing"

	"github.com/fpkit/go-vek/vek"
)

const epsilon64 = 1e-12

func approxEqual64(a, b, epsilon float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= epsilon
}

func makeVector64(size int, gen func(int) float64) []float64 {
	v := make([]float64, size)
	for i := range v {
		v[i] = gen(i)
	}
	return v
}

func laneBoundarySizes(lanes int) []int {
	return []int{0, 1, lanes - 1, lanes, lanes + 1, 2*lanes - 1}
}

func TestAXPY(t *testing.T) {
	lanes := vek.MaxLanes[float64]()
	for _, n := range laneBoundarySizes(lanes) {
		x := makeVector64(n, func(i int) float64 { return float64(i) })
		y := makeVector64(n, func(i int) float64 { return float64(-i) * 0.5 })
		dst := make([]float64, n)

		AXPY(dst, 2.5, x, y)

		for i := range dst {
			want := 2.5*x[i] + y[i]
			if !approxEqual64(dst[i], want, epsilon64) {
				t.Errorf("n=%d i=%d: got %v, want %v", n, i, dst[i], want)
			}
		}
	}
}

func TestScaleOffset(t *testing.T) {
	src := makeVector64(13, func(i int) float64 { return float64(i) })
	dst := make([]float64, len(src))

	Scale(dst, src, 3)
	for i := range dst {
		if dst[i] != src[i]*3 {
			t.Errorf("Scale i=%d: got %v", i, dst[i])
		}
	}

	Offset(dst, src, -2)
	for i := range dst {
		if dst[i] != src[i]-2 {
			t.Errorf("Offset i=%d: got %v", i, dst[i])
		}
	}
}

func TestZipOps(t *testing.T) {
	a := []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	b := []int32{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110}
	dst := make([]int32, len(a))

	ZipAdd(dst, a, b)
	for i := range dst {
		if dst[i] != a[i]+b[i] {
			t.Errorf("ZipAdd i=%d: got %v", i, dst[i])
		}
	}

	ZipSub(dst, b, a)
	for i := range dst {
		if dst[i] != b[i]-a[i] {
			t.Errorf("ZipSub i=%d: got %v", i, dst[i])
		}
	}

	ZipMul(dst, a, b)
	for i := range dst {
		if dst[i] != a[i]*b[i] {
			t.Errorf("ZipMul i=%d: got %v", i, dst[i])
		}
	}
}

func TestAbsSqrtClamp(t *testing.T) {
	src := []float64{-4, 1, -9, 16, -25}
	dst := make([]float64, len(src))

	Abs(dst, src)
	want := []float64{4, 1, 9, 16, 25}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("Abs i=%d: got %v, want %v", i, dst[i], want[i])
		}
	}

	Sqrt(dst, want)
	wantSqrt := []float64{2, 1, 3, 4, 5}
	for i := range wantSqrt {
		if dst[i] != wantSqrt[i] {
			t.Errorf("Sqrt i=%d: got %v, want %v", i, dst[i], wantSqrt[i])
		}
	}

	Clamp(dst, src, -5, 2)
	wantClamp := []float64{-4, 1, -5, 2, -5}
	for i := range wantClamp {
		if dst[i] != wantClamp[i] {
			t.Errorf("Clamp i=%d: got %v, want %v", i, dst[i], wantClamp[i])
		}
	}
}

func TestPrefixSum(t *testing.T) {
	tests := []struct {
		name string
		src  []int64
		want []int64
	}{
		{"empty", []int64{}, []int64{}},
		{"single", []int64{7}, []int64{7}},
		{"basic", []int64{1, 2, 3, 4, 5, 6, 7, 8}, []int64{1, 3, 6, 10, 15, 21, 28, 36}},
		{"negatives", []int64{3, -1, 4, -1, 5}, []int64{3, 2, 6, 5, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]int64, len(tt.src))
			PrefixSum(dst, tt.src)
			for i := range tt.want {
				if dst[i] != tt.want[i] {
					t.Errorf("i=%d: got %v, want %v", i, dst[i], tt.want[i])
				}
			}
		})
	}
}

func TestPrefixSumLaneBoundaries(t *testing.T) {
	lanes := vek.MaxLanes[float64]()
	for _, n := range laneBoundarySizes(lanes) {
		src := makeVector64(n, func(i int) float64 { return float64(i%7) - 3 })
		dst := make([]float64, n)
		PrefixSum(dst, src)

		var running float64
		for i := range src {
			running += src[i]
			if !approxEqual64(dst[i], running, 1e-9) {
				t.Errorf("n=%d i=%d: got %v, want %v", n, i, dst[i], running)
			}
		}
	}
}

func TestPrefixSumInPlace(t *testing.T) {
	data := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	PrefixSumInPlace(data)
	want := []int64{1, 3, 6, 10, 15, 21, 28, 36, 45}
	for i := range want {
		if data[i] != want[i] {
			t.Errorf("i=%d: got %v, want %v", i, data[i], want[i])
		}
	}
}

func TestMapsDoNotMutateInput(t *testing.T) {
	src := makeVector64(19, func(i int) float64 { return float64(i) - 9 })
	orig := make([]float64, len(src))
	copy(orig, src)

	dst := make([]float64, len(src))
	Abs(dst, src)
	Scale(dst, src, 2)
	Clamp(dst, src, -1, 1)

	for i := range src {
		if src[i] != orig[i] {
			t.Fatalf("input mutated at %d", i)
		}
	}
}
