package vek

import (
	"math"
	"testing"
)

func TestLoadStoreRoundTrip(t *testing.T) {
	src := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	v := Load(src)
	if v.NumLanes() > MaxLanes[float32]() {
		t.Fatalf("Load produced %d lanes, max is %d", v.NumLanes(), MaxLanes[float32]())
	}

	dst := make([]float32, v.NumLanes())
	Store(v, dst)
	for i := range dst {
		if dst[i] != src[i] {
			t.Errorf("lane %d: got %v, want %v", i, dst[i], src[i])
		}
	}
}

func TestLoadShortSlice(t *testing.T) {
	src := []float64{1, 2}
	v := Load(src)
	if v.NumLanes() != 2 {
		t.Fatalf("Load of 2 elements produced %d lanes", v.NumLanes())
	}
}

func TestSetZeroIota(t *testing.T) {
	s := Set[int32](7)
	for i, x := range s.Data() {
		if x != 7 {
			t.Errorf("Set lane %d: got %v, want 7", i, x)
		}
	}

	z := Zero[int32]()
	for i, x := range z.Data() {
		if x != 0 {
			t.Errorf("Zero lane %d: got %v, want 0", i, x)
		}
	}

	io := Iota[int32]()
	for i, x := range io.Data() {
		if x != int32(i) {
			t.Errorf("Iota lane %d: got %v, want %v", i, x, i)
		}
	}
}

func TestArithmetic(t *testing.T) {
	a := Load([]float64{1, 2, 3, 4})
	b := Load([]float64{10, 20, 30, 40})

	checks := []struct {
		name string
		got  Vec[float64]
		want []float64
	}{
		{"Add", Add(a, b), []float64{11, 22, 33, 44}},
		{"Sub", Sub(b, a), []float64{9, 18, 27, 36}},
		{"Mul", Mul(a, b), []float64{10, 40, 90, 160}},
		{"Div", Div(b, a), []float64{10, 10, 10, 10}},
		{"Min", Min(a, b), []float64{1, 2, 3, 4}},
		{"Max", Max(a, b), []float64{10, 20, 30, 40}},
	}

	for _, c := range checks {
		data := c.got.Data()
		for i := range c.want {
			if data[i] != c.want[i] {
				t.Errorf("%s lane %d: got %v, want %v", c.name, i, data[i], c.want[i])
			}
		}
	}
}

func TestAbsNeg(t *testing.T) {
	v := Load([]float64{-1, 2, -3, 4})

	abs := Abs(v).Data()
	wantAbs := []float64{1, 2, 3, 4}
	for i := range wantAbs {
		if abs[i] != wantAbs[i] {
			t.Errorf("Abs lane %d: got %v, want %v", i, abs[i], wantAbs[i])
		}
	}

	neg := Neg(v).Data()
	wantNeg := []float64{1, -2, 3, -4}
	for i := range wantNeg {
		if neg[i] != wantNeg[i] {
			t.Errorf("Neg lane %d: got %v, want %v", i, neg[i], wantNeg[i])
		}
	}
}

func TestAbsUnsigned(t *testing.T) {
	v := Load([]uint8{0, 1, 200, 255})
	got := Abs(v).Data()
	want := []uint8{0, 1, 200, 255}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Abs lane %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSqrtClamp(t *testing.T) {
	v := Load([]float64{0, 1, 4, 9})
	got := Sqrt(v).Data()
	want := []float64{0, 1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Sqrt lane %d: got %v, want %v", i, got[i], want[i])
		}
	}

	c := Clamp(Load([]float64{-5, 0.5, 2, 100}), 0, 1).Data()
	wantC := []float64{0, 0.5, 1, 1}
	for i := range wantC {
		if c[i] != wantC[i] {
			t.Errorf("Clamp lane %d: got %v, want %v", i, c[i], wantC[i])
		}
	}
}

func TestReductions(t *testing.T) {
	v := Load([]float64{1, 2, 3, 4})
	if got := ReduceSum(v); got != 10 {
		t.Errorf("ReduceSum: got %v, want 10", got)
	}
	if got := ReduceMul(v); got != 24 {
		t.Errorf("ReduceMul: got %v, want 24", got)
	}
	if got := ReduceMin(v); got != 1 {
		t.Errorf("ReduceMin: got %v, want 1", got)
	}
	if got := ReduceMax(v); got != 4 {
		t.Errorf("ReduceMax: got %v, want 4", got)
	}
}

func TestComparisonsAndSelect(t *testing.T) {
	a := Load([]int32{1, 5, 3, 7})
	b := Load([]int32{4, 4, 4, 4})

	less := Less(a, b)
	wantLess := []bool{true, false, true, false}
	for i, w := range wantLess {
		if less.GetBit(i) != w {
			t.Errorf("Less lane %d: got %v, want %v", i, less.GetBit(i), w)
		}
	}

	sel := IfThenElse(less, a, b).Data()
	wantSel := []int32{1, 4, 3, 4}
	for i := range wantSel {
		if sel[i] != wantSel[i] {
			t.Errorf("IfThenElse lane %d: got %v, want %v", i, sel[i], wantSel[i])
		}
	}
}

func TestIsNaN(t *testing.T) {
	v := Load([]float64{1, math.NaN(), 3, math.NaN()})
	m := IsNaN(v)
	want := []bool{false, true, false, true}
	for i, w := range want {
		if m.GetBit(i) != w {
			t.Errorf("IsNaN lane %d: got %v, want %v", i, m.GetBit(i), w)
		}
	}
	if m.CountTrue() != 2 {
		t.Errorf("CountTrue: got %d, want 2", m.CountTrue())
	}
}

func TestMaskLoadStore(t *testing.T) {
	lanes := MaxLanes[float32]()
	src := make([]float32, lanes)
	for i := range src {
		src[i] = float32(i + 1)
	}

	mask := TailMask[float32](3)
	v := MaskLoad(mask, src)
	for i, x := range v.Data() {
		if i < 3 && x != src[i] {
			t.Errorf("MaskLoad lane %d: got %v, want %v", i, x, src[i])
		}
		if i >= 3 && x != 0 {
			t.Errorf("MaskLoad lane %d: got %v, want 0", i, x)
		}
	}

	dst := make([]float32, lanes)
	for i := range dst {
		dst[i] = -1
	}
	MaskStore(mask, v, dst)
	for i := range dst {
		if i < 3 && dst[i] != src[i] {
			t.Errorf("MaskStore lane %d: got %v, want %v", i, dst[i], src[i])
		}
		if i >= 3 && dst[i] != -1 {
			t.Errorf("MaskStore lane %d: got %v, want untouched -1", i, dst[i])
		}
	}
}
