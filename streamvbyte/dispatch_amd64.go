//go:build amd64 && !goexperiment.simd

package streamvbyte

import "golang.org/x/sys/cpu"

// Fallback for when GOEXPERIMENT=simd is not enabled: the table-driven
// bulk decoder still runs (it is portable Go, see simd_decode.go), but we
// only advertise DispatchSSSE3 when the host CPU actually has it, matching
// what a real PSHUFB-backed build would require.
func init() {
	if cpu.X86.HasSSSE3 {
		currentLevel = DispatchSSSE3
	} else {
		currentLevel = DispatchScalar
	}
}
