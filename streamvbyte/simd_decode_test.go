package streamvbyte

import "testing"

func TestShuffleWindow(t *testing.T) {
	window := [16]byte{}
	for i := range window {
		window[i] = byte(i)
	}
	// control byte 0xE4 = lengths 1,2,3,4
	got := shuffleWindow(window, &shuffleMask[0xE4])
	want := [16]byte{
		0, 0x80, 0x80, 0x80,
		1, 2, 0x80, 0x80,
		3, 4, 5, 0x80,
		6, 7, 8, 9,
	}
	for i := range want {
		if want[i]&0x80 != 0 {
			want[i] = 0
		}
	}
	if got != want {
		t.Errorf("shuffleWindow = %v, want %v", got, want)
	}
}

// TestSIMDDecodeQuadsStopsAtBoundary exercises the in-bounds guard: the
// bulk decoder must stop before a quad whose 16-byte read would overrun
// data, deferring that quad (and everything after it) to the scalar tail.
//
// 20 single-byte-valued integers (all control bytes 0x00, 4 payload bytes
// per quad) over exactly 20 data bytes: quads 0 and 1 have their full
// 16-byte windows inside the 20-byte buffer (offsets 0 and 4), quad 2's
// window (offset 8, needing bytes [8,24)) does not.
func TestSIMDDecodeQuadsStopsAtBoundary(t *testing.T) {
	in := make([]uint32, 20)
	for i := range in {
		in[i] = uint32(i)
	}
	buf := make([]byte, MaxEncodedLen(len(in)))
	n, err := Encode(in, buf)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	ctrlLen := ControlStreamLen(len(in))
	ctrl := buf[:ctrlLen]
	data := buf[ctrlLen:n]
	if len(data) != 20 {
		t.Fatalf("test setup: want 20 data bytes, got %d", len(data))
	}

	out := make([]uint32, len(in))
	quadsDone, dataOff := simdDecodeQuads(ctrl, data, out, len(in)/4)

	if quadsDone != 2 {
		t.Fatalf("quadsDone = %d, want 2 (quad 2's window would overrun the 20-byte buffer)", quadsDone)
	}
	if dataOff != 8 {
		t.Fatalf("dataOff = %d, want 8", dataOff)
	}
	for i := 0; i < 8; i++ {
		if out[i] != in[i] {
			t.Errorf("out[%d] = %d, want %d", i, out[i], in[i])
		}
	}
}
