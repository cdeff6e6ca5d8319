//go:build amd64 && goexperiment.simd

package streamvbyte

import "testing"

func TestDecodeQuadVectorMatchesScalar(t *testing.T) {
	vals := [4]uint32{1, 256, 65536, 16777216}
	buf := make([]byte, MaxEncodedLen(4))
	n, err := Encode(vals[:], buf)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	ctrlLen := ControlStreamLen(4)
	c := buf[0]
	data := buf[ctrlLen:n]
	padded := make([]byte, 16)
	copy(padded, data)

	var gotScalar, gotVector [4]uint32
	simdQuad{}.decodeQuad(c, padded, gotScalar[:])
	decodeQuadVector(c, padded, gotVector[:])

	if gotScalar != gotVector {
		t.Errorf("decodeQuadVector = %v, want %v (scalar table lookup)", gotVector, gotScalar)
	}
	if gotVector != vals {
		t.Errorf("decodeQuadVector = %v, want %v", gotVector, vals)
	}
}
