//go:build !amd64 && !arm64

package vek

func init() {
	// Other architectures fall back to scalar mode with a 16-byte nominal
	// width so the lane model stays consistent.
	currentLevel = DispatchScalar
	currentWidth = 16
	currentName = "scalar"
}
