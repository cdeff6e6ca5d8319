package streamvbyte

// Strategy selects which decoder core Decode uses for the bulk (four
// integers at a time) portion of a stream. StrategyScalar and StrategySIMD
// pin the choice for a caller that has done its own capability check;
// DefaultStrategy lets the package pick from CurrentLevel(), which the
// package sets at init from a CPU feature check on amd64 (see dispatch.go).
type Strategy int

const (
	// DefaultStrategy uses the SIMD-class decoder when CurrentLevel() is
	// not DispatchScalar (amd64 with SSSE3 detected on the host), scalar
	// otherwise.
	DefaultStrategy Strategy = iota
	// StrategyScalar forces the scalar decoder for the entire stream.
	StrategyScalar
	// StrategySIMD forces the table-driven bulk decoder for the
	// four-integers-at-a-time portion, with the mandatory scalar tail.
	StrategySIMD
)

// quadDecoder is the hot inner operation of the decoder: decode one full
// quad (four integers) from a control byte and a data-stream window,
// writing into out[0:4] and reporting the number of data bytes consumed.
// The scalar and SIMD cores are both quadDecoders; surrounding driver code
// (quad iteration, tail handling, error checking) is written once and
// parameterized over this capability rather than branching per integer.
type quadDecoder interface {
	decodeQuad(c byte, data []byte, out []uint32) int
}
