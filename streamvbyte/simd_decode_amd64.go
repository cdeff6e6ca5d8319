//go:build amd64 && goexperiment.simd

package streamvbyte

import (
	"encoding/binary"
	"simd/archsimd"
)

// decodeQuadVector is the GOEXPERIMENT=simd counterpart to simdQuad.decodeQuad:
// it routes the same 16-byte window through an archsimd.Uint8x16 load/store
// pair instead of a plain array copy. The shuffle itself is still the
// table lookup in shuffleWindow — the teacher's own AVX2-tagged shuffle
// code (hwy/shuffle_avx2.go) computes its result with a scalar Go loop and
// only uses archsimd for the typed load/store, never a hardware shuffle
// intrinsic, and this follows the same shape for the byte-shuffle case the
// generic hwy.TableLookupBytes never specialized.
func decodeQuadVector(c byte, data []byte, out []uint32) int {
	v := archsimd.LoadUint8x16Slice(data[:16])
	var window [16]byte
	v.StoreSlice(window[:])

	shuffled := shuffleWindow(window, &shuffleMask[c])

	sv := archsimd.LoadUint8x16Slice(shuffled[:])
	var stored [16]byte
	sv.StoreSlice(stored[:])

	out[0] = binary.LittleEndian.Uint32(stored[0:4])
	out[1] = binary.LittleEndian.Uint32(stored[4:8])
	out[2] = binary.LittleEndian.Uint32(stored[8:12])
	out[3] = binary.LittleEndian.Uint32(stored[12:16])
	return int(payloadLen[c])
}

// bulkQuadDecode is the quad-decode call simdDecodeQuads makes for every
// full quad in the bulk portion of the stream. This build was compiled
// with GOEXPERIMENT=simd on amd64, so the bulk decoder actually routes
// through archsimd rather than the plain array-copy path.
func bulkQuadDecode(c byte, data []byte, out []uint32) int {
	return decodeQuadVector(c, data, out)
}
