//go:build !amd64

package streamvbyte

// Non-amd64 builds report DispatchScalar, so DefaultStrategy runs the scalar
// core throughout. StrategySIMD still runs the portable table-driven bulk
// decoder (simd_decode.go); there is no architecture-specific shuffle here.
func init() {
	currentLevel = DispatchScalar
}
