//go:build arm64

package vek

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		currentWidth = 16
		currentName = "scalar"
		return
	}

	// NEON (ASIMD) is part of the ARMv8-A base architecture, so the feature
	// check only matters for exotic configurations.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16
		currentName = "neon"
	} else {
		currentLevel = DispatchScalar
		currentWidth = 16
		currentName = "scalar"
	}
}
