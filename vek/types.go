// Package vek provides portable SIMD-width-aware kernels for flat numeric
// slices.
//
// The core exposes a lane model (a portable vector handle Vec and a per-lane
// Mask), with the register width chosen at init time from the CPU's SIMD
// capabilities. Algorithm layers under vek/contrib are written against these
// primitives as generic kernels: process floor(n / lanes) full vectors, then
// finish the n mod lanes remainder with scalar code.
//
// Basic usage:
//
//	import "github.com/fpkit/go-vek/vek"
//
//	a := vek.Load(data1)
//	b := vek.Load(data2)
//	sum := vek.Add(a, b)
//	vek.Store(sum, output)
//
// Every kernel in this module is a pure function of its explicit arguments:
// inputs are never mutated, outputs go only through caller-provided slices or
// return values, and there is no mutable package state after init.
package vek

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector handle. In base (scalar) mode it wraps a slice of
// at most MaxLanes elements; SIMD backends may replace the representation.
//
// Vec instances should not be created directly; use Load, Set, or Zero.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) held by this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// Primarily for tests; not for performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's lanes to dst. Method form of vek.Store.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Mask is the result of a lane-wise comparison. Use it with IfThenElse,
// MaskLoad, MaskStore, Compress, and CompressStore.
//
// Mask instances should not be created directly; use comparison operations
// like Equal, Less, or Greater, or the TailMask/FirstN constructors.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue reports whether every lane in the mask is active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue reports whether at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}

// MaskFromBits builds a mask from explicit lane bits. Intended for custom
// predicates whose per-lane decision has no vector comparison form.
func MaskFromBits[T Lanes](bits []bool) Mask[T] {
	b := make([]bool, len(bits))
	copy(b, bits)
	return Mask[T]{bits: b}
}
