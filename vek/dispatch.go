package vek

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel identifies the SIMD instruction set selected at init.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files and immutable afterwards.
var currentLevel DispatchLevel

// currentWidth is the vector register width in bytes for the current level.
// Set by init() in dispatch_*.go files and immutable afterwards.
var currentWidth int

// currentName is the human-readable name of the current SIMD level.
var currentName string

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
func CurrentName() string {
	return currentName
}

// NoSimdEnv checks the VEK_NO_SIMD environment variable. When set, the
// library uses the scalar fallback regardless of CPU capabilities, which is
// useful for testing and for pinning lane widths in reproducible runs.
func NoSimdEnv() bool {
	val := os.Getenv("VEK_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxLanes returns the number of lanes for type T at the current register
// width. With a 32-byte (AVX2) register:
//   - 8-byte elements (float64, int64): 4 lanes
//   - 4-byte elements (float32, int32): 8 lanes
//   - 2-byte elements (int16): 16 lanes
//   - 1-byte elements (int8): 32 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}
