//go:build amd64

package vek

import "golang.org/x/sys/cpu"

// Assembly kernels that use the 256-bit or 512-bit registers selected here
// must execute VZEROUPPER on every exit path before returning to scalar Go
// code; leaving the upper register halves dirty triggers the AVX/SSE
// transition penalty on subsequent legacy-encoded instructions. The portable
// Go kernels in this module never leave wide state live, so the rule only
// binds replacement backends.

func init() {
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		currentWidth = 16
		currentName = "scalar"
		return
	}

	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512DQ && cpu.X86.HasAVX512BW:
		currentLevel = DispatchAVX512
		currentWidth = 64
		currentName = "avx512"
	case cpu.X86.HasAVX2:
		currentLevel = DispatchAVX2
		currentWidth = 32
		currentName = "avx2"
	default:
		// SSE2 is part of the amd64 baseline.
		currentLevel = DispatchSSE2
		currentWidth = 16
		currentName = "sse2"
	}
}
