package streamvbyte

import "testing"

// TestTableMatchesQuadPayloadLen checks that the generated payloadLen table
// agrees with quadPayloadLen computed directly from the control byte's bit
// fields, for every one of the 256 possible control bytes.
func TestTableMatchesQuadPayloadLen(t *testing.T) {
	for c := 0; c < 256; c++ {
		want := quadPayloadLen(byte(c))
		if got := int(payloadLen[c]); got != want {
			t.Errorf("payloadLen[%#02x] = %d, want %d", c, got, want)
		}
	}
}

// TestTableShuffleMask checks every entry's shuffle mask against the
// algorithm: for integer i, output byte j, the source index is the running
// payload offset plus j when j < length(i), else the zero sentinel 0x80.
func TestTableShuffleMask(t *testing.T) {
	for c := 0; c < 256; c++ {
		l0, l1, l2, l3 := quadLengths(byte(c))
		lens := [4]int{l0, l1, l2, l3}
		offs := [4]int{0, l0, l0 + l1, l0 + l1 + l2}

		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				idx := i*4 + j
				got := shuffleMask[c][idx]
				if j < lens[i] {
					want := byte(offs[i] + j)
					if got != want {
						t.Errorf("shuffleMask[%#02x][%d] = %#02x, want %#02x", c, idx, got, want)
					}
				} else if got&0x80 == 0 {
					t.Errorf("shuffleMask[%#02x][%d] = %#02x, want zero sentinel (high bit set)", c, idx, got)
				}
			}
		}
	}
}

// TestTablePayloadRange checks property 2 of the format: payload length per
// quad ranges over [4,16].
func TestTablePayloadRange(t *testing.T) {
	for c := 0; c < 256; c++ {
		p := payloadLen[c]
		if p < 4 || p > 16 {
			t.Errorf("payloadLen[%#02x] = %d, out of [4,16]", c, p)
		}
	}
}
