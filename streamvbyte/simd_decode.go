package streamvbyte

import "encoding/binary"

// simdQuad is the table-driven quadDecoder: for a full quad it loads a
// 16-byte window from the data stream, applies the shuffle mask for that
// quad's control byte, and reads out four little-endian uint32 lanes in
// one pass instead of branching per integer. This is the portable
// implementation; simd_decode_amd64.go additionally routes the same
// window through simd/archsimd's vector load/store when built with
// GOEXPERIMENT=simd, without changing the shuffle logic itself.
type simdQuad struct{}

func (simdQuad) decodeQuad(c byte, data []byte, out []uint32) int {
	var window [16]byte
	copy(window[:], data[:16])
	shuffled := shuffleWindow(window, &shuffleMask[c])
	out[0] = binary.LittleEndian.Uint32(shuffled[0:4])
	out[1] = binary.LittleEndian.Uint32(shuffled[4:8])
	out[2] = binary.LittleEndian.Uint32(shuffled[8:12])
	out[3] = binary.LittleEndian.Uint32(shuffled[12:16])
	return int(payloadLen[c])
}

// shuffleWindow is the byte-shuffle step a real SSSE3 PSHUFB performs:
// result[i] = window[mask[i]], or zero when mask[i] has its high bit set.
// mask[i] with the high bit set is the zero sentinel (0x80).
func shuffleWindow(window [16]byte, mask *[16]byte) [16]byte {
	var result [16]byte
	for i, idx := range mask {
		if idx&0x80 == 0 {
			result[i] = window[idx]
		}
	}
	return result
}

// simdDecodeQuads runs the table-driven bulk decoder over ctrl[:numFullQuads],
// stopping at the first quad whose speculative 16-byte load would read past
// the end of data — the in-bounds guard that keeps the bulk decoder from
// ever reading outside the data stream. It returns the number of quads it
// decoded and the data-stream offset reached; the caller finishes any
// remaining full quads and the trailing partial quad with the scalar core.
func simdDecodeQuads(ctrl []byte, data []byte, output []uint32, numFullQuads int) (quadsDone, dataOff int) {
	for q := 0; q < numFullQuads; q++ {
		if dataOff+16 > len(data) {
			break
		}
		consumed := bulkQuadDecode(ctrl[q], data[dataOff:], output[q*4:q*4+4])
		dataOff += consumed
		quadsDone++
	}
	return quadsDone, dataOff
}
