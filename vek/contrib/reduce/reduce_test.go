package reduce

import (
	"math"
	"testing"

	"github.com/fpkit/go-vek/vek"
)

const epsilon64 = 1e-9

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

// laneBoundarySizes returns the sizes that straddle a lane boundary for T.
func laneBoundarySizes(lanes int) []int {
	return []int{0, 1, lanes - 1, lanes, lanes + 1, 2*lanes - 1}
}

func TestSum(t *testing.T) {
	tests := []struct {
		name string
		v    []float64
		want float64
	}{
		{"empty", []float64{}, 0},
		{"single", []float64{5}, 5},
		{"basic", []float64{1, 2, 3, 4}, 10},
		{"negatives", []float64{-1, 1, -2, 2, -3}, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sum(tt.v); !approxEqual64(got, tt.want, epsilon64) {
				t.Errorf("Sum(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestSumLaneBoundaries(t *testing.T) {
	lanes := vek.MaxLanes[float64]()
	for _, n := range laneBoundarySizes(lanes) {
		v := makeVector64(n, func(i int) float64 { return float64(i)*0.5 - 3 })

		var want float64
		for _, x := range v {
			want += x
		}

		if got := Sum(v); !approxEqual64(got, want, epsilon64) {
			t.Errorf("n=%d: Sum = %v, want %v", n, got, want)
		}
	}
}

func TestSumIntegerExact(t *testing.T) {
	lanes := vek.MaxLanes[int32]()
	for _, n := range laneBoundarySizes(lanes) {
		v := make([]int32, n)
		var want int32
		for i := range v {
			v[i] = int32(i - 7)
			want += v[i]
		}
		if got := Sum(v); got != want {
			t.Errorf("n=%d: Sum = %d, want %d", n, got, want)
		}
	}
}

func TestSumBytes(t *testing.T) {
	// 8-bit lanes pack the widest vectors; sweep their boundaries too.
	lanes := vek.MaxLanes[uint8]()
	for _, n := range laneBoundarySizes(lanes) {
		v := make([]uint8, n)
		var want uint8
		for i := range v {
			v[i] = uint8(i % 5)
			want += v[i]
		}
		if got := Sum(v); got != want {
			t.Errorf("n=%d: Sum = %d, want %d (mod 256)", n, got, want)
		}
	}
}

func TestProduct(t *testing.T) {
	tests := []struct {
		name string
		v    []float64
		want float64
	}{
		{"empty", []float64{}, 1},
		{"single", []float64{3}, 3},
		{"basic", []float64{1, 2, 3, 4}, 24},
		{"with zero", []float64{5, 0, 9}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Product(tt.v); !approxEqual64(got, tt.want, epsilon64) {
				t.Errorf("Product(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestMinMaxReductions(t *testing.T) {
	lanes := vek.MaxLanes[float64]()
	for _, n := range laneBoundarySizes(lanes) {
		v := makeVector64(n, func(i int) float64 {
			return math.Sin(float64(i)*1.7) * 10
		})

		if n == 0 {
			if got := Min(v); got != 0 {
				t.Errorf("Min(empty) = %v, want 0", got)
			}
			if got := Max(v); got != 0 {
				t.Errorf("Max(empty) = %v, want 0", got)
			}
			continue
		}

		wantMin, wantMax := v[0], v[0]
		for _, x := range v[1:] {
			if x < wantMin {
				wantMin = x
			}
			if x > wantMax {
				wantMax = x
			}
		}

		if got := Min(v); got != wantMin {
			t.Errorf("n=%d: Min = %v, want %v", n, got, wantMin)
		}
		if got := Max(v); got != wantMax {
			t.Errorf("n=%d: Max = %v, want %v", n, got, wantMax)
		}

		gotMin, gotMax := MinMax(v)
		if gotMin != wantMin || gotMax != wantMax {
			t.Errorf("n=%d: MinMax = (%v, %v), want (%v, %v)", n, gotMin, gotMax, wantMin, wantMax)
		}
	}
}

func TestArgMinArgMax(t *testing.T) {
	tests := []struct {
		name    string
		v       []float64
		wantMin int
		wantMax int
	}{
		{"empty", nil, -1, -1},
		{"single", []float64{2}, 0, 0},
		{"basic", []float64{3, 1, 4, 1, 5}, 1, 4},
		{"first of ties", []float64{2, 1, 1, 2}, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ArgMin(tt.v); got != tt.wantMin {
				t.Errorf("ArgMin = %d, want %d", got, tt.wantMin)
			}
			if got := ArgMax(tt.v); got != tt.wantMax {
				t.Errorf("ArgMax = %d, want %d", got, tt.wantMax)
			}
		})
	}
}

func TestReductionsDoNotMutateInput(t *testing.T) {
	v := makeVector64(37, func(i int) float64 { return float64(i) })
	orig := make([]float64, len(v))
	copy(orig, v)

	Sum(v)
	Product(v)
	Min(v)
	Max(v)
	MinMax(v)

	for i := range v {
		if v[i] != orig[i] {
			t.Fatalf("input mutated at %d: %v != %v", i, v[i], orig[i])
		}
	}
}
