package streamvbyte

import "testing"

func TestPackAndQuadLengths(t *testing.T) {
	tests := []struct {
		l0, l1, l2, l3 int
		want           byte
	}{
		{1, 1, 1, 1, 0x00},
		{1, 1, 1, 2, 0x40},
		{1, 2, 3, 4, 0xE4},
		{4, 4, 4, 4, 0xFF},
	}
	for _, tt := range tests {
		c := packControl(tt.l0, tt.l1, tt.l2, tt.l3)
		if c != tt.want {
			t.Errorf("packControl(%d,%d,%d,%d) = %#02x, want %#02x", tt.l0, tt.l1, tt.l2, tt.l3, c, tt.want)
		}
		l0, l1, l2, l3 := quadLengths(c)
		if l0 != tt.l0 || l1 != tt.l1 || l2 != tt.l2 || l3 != tt.l3 {
			t.Errorf("quadLengths(%#02x) = %d,%d,%d,%d, want %d,%d,%d,%d", c, l0, l1, l2, l3, tt.l0, tt.l1, tt.l2, tt.l3)
		}
	}
}

func TestQuadPayloadLen(t *testing.T) {
	if got := quadPayloadLen(0x00); got != 4 {
		t.Errorf("quadPayloadLen(0x00) = %d, want 4", got)
	}
	if got := quadPayloadLen(0xFF); got != 16 {
		t.Errorf("quadPayloadLen(0xFF) = %d, want 16", got)
	}
	if got := quadPayloadLen(0xE4); got != 10 {
		t.Errorf("quadPayloadLen(0xE4) = %d, want 10", got)
	}
}
