//go:build !(amd64 && goexperiment.simd)

package streamvbyte

// bulkQuadDecode is the quad-decode call simdDecodeQuads makes for every
// full quad in the bulk portion of the stream. This build has no
// simd/archsimd support compiled in, so it resolves to the portable
// table-driven core directly.
func bulkQuadDecode(c byte, data []byte, out []uint32) int {
	return simdQuad{}.decodeQuad(c, data, out)
}
