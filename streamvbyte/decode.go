package streamvbyte

// scalarQuad is the scalar quadDecoder: the mandatory tail for the SIMD
// bulk decoder, and the sole core used by StrategyScalar / DecodeScalar.
type scalarQuad struct{}

func (scalarQuad) decodeQuad(c byte, data []byte, out []uint32) int {
	l0, l1, l2, l3 := quadLengths(c)
	off := 0
	out[0] = getLE(data[off:], l0)
	off += l0
	out[1] = getLE(data[off:], l1)
	off += l1
	out[2] = getLE(data[off:], l2)
	off += l2
	out[3] = getLE(data[off:], l3)
	off += l3
	return off
}

// getLE reads the low l little-endian bytes of src, zero-extended to u32.
func getLE(src []byte, l int) uint32 {
	var x uint32
	for i := 0; i < l; i++ {
		x |= uint32(src[i]) << (uint(i) * 8)
	}
	return x
}

// Decode writes n integers decoded from input into output, returning the
// number of encoded bytes consumed. It uses the SIMD-class bulk decoder
// when this build supports it (see dispatch.go), falling back to the
// scalar decoder for the trailing tail and, if no vector support was
// compiled in, for the entire stream.
func Decode(input []byte, n int, output []uint32) (int, error) {
	return DecodeWithStrategy(DefaultStrategy, input, n, output)
}

// DecodeScalar decodes using only the scalar core. It is the mandatory
// fallback the SIMD decoder defers to for its tail, and is exposed
// directly so callers (and tests asserting SIMD ≡ scalar) can force it.
func DecodeScalar(input []byte, n int, output []uint32) (int, error) {
	return DecodeWithStrategy(StrategyScalar, input, n, output)
}

// DecodeWithStrategy decodes using the requested Strategy. Only
// DefaultStrategy consults the dispatch level; StrategySIMD always runs the
// table-driven bulk decoder (portable Go where no vector support is
// available) and produces the same output as the scalar core.
func DecodeWithStrategy(s Strategy, input []byte, n int, output []uint32) (int, error) {
	ctrlLen, dataNeeded, err := checkDecodeInputs(n, input, output)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}

	ctrl := input[:ctrlLen]
	data := input[ctrlLen : ctrlLen+dataNeeded]

	useSIMD := s == StrategySIMD || (s == DefaultStrategy && simdAvailable())

	full := n / 4

	quadsDone := 0
	dataOff := 0
	if useSIMD {
		quadsDone, dataOff = simdDecodeQuads(ctrl, data, output, full)
	}

	var tail quadDecoder = scalarQuad{}
	for q := quadsDone; q < full; q++ {
		dataOff += tail.decodeQuad(ctrl[q], data[dataOff:], output[q*4:q*4+4])
	}

	if r := n % 4; r != 0 {
		base := full * 4
		c := ctrl[full]
		off := dataOff
		for i := 0; i < r; i++ {
			l := int((c>>(uint(i)*2))&0x03) + 1
			output[base+i] = getLE(data[off:], l)
			off += l
		}
		dataOff = off
	}

	return ctrlLen + dataOff, nil
}

// checkDecodeInputs validates n and the buffer capacities, and computes the
// exact number of data-stream bytes the control stream declares, so a
// truncated input is rejected before any output is written.
func checkDecodeInputs(n int, input []byte, output []uint32) (ctrlLen, dataNeeded int, err error) {
	if n < 0 {
		return 0, 0, ErrInvalidCount
	}
	if len(output) < n {
		return 0, 0, ErrCapacityInsufficient
	}
	ctrlLen = ControlStreamLen(n)
	if len(input) < ctrlLen {
		return 0, 0, errTruncatedControl(n, len(input))
	}
	if n == 0 {
		return 0, 0, nil
	}

	ctrl := input[:ctrlLen]
	full := n / 4
	for q := 0; q < full; q++ {
		dataNeeded += quadPayloadLen(ctrl[q])
	}
	if r := n % 4; r != 0 {
		c := ctrl[full]
		for i := 0; i < r; i++ {
			dataNeeded += int((c>>(uint(i)*2))&0x03) + 1
		}
	}

	total := ctrlLen + dataNeeded
	if len(input) < total {
		return ctrlLen, dataNeeded, &TruncatedInputError{Expected: total, Available: len(input)}
	}
	return ctrlLen, dataNeeded, nil
}
