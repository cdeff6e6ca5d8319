//go:build amd64 && goexperiment.simd

package streamvbyte

import (
	"golang.org/x/sys/cpu"
)

// With GOEXPERIMENT=simd, simd_decode_amd64.go's quad decoder additionally
// routes its 16-byte load/store through simd/archsimd's typed vector, so we
// require the same SSSE3 capability check before advertising it.
func init() {
	if cpu.X86.HasSSSE3 {
		currentLevel = DispatchSSSE3
	} else {
		currentLevel = DispatchScalar
	}
}
