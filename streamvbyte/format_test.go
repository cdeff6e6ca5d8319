package streamvbyte

import "testing"

func TestByteLength(t *testing.T) {
	tests := []struct {
		x    uint32
		want int
	}{
		{0, 1},
		{1, 1},
		{255, 1},
		{256, 2},
		{65535, 2},
		{65536, 3},
		{16777215, 3},
		{16777216, 4},
		{0xFFFFFFFF, 4},
	}
	for _, tt := range tests {
		if got := byteLength(tt.x); got != tt.want {
			t.Errorf("byteLength(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestMaxEncodedLen(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 1 + 4},
		{4, 1 + 16},
		{5, 2 + 20},
		{5000, 1250 + 20000},
	}
	for _, tt := range tests {
		if got := MaxEncodedLen(tt.n); got != tt.want {
			t.Errorf("MaxEncodedLen(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestControlStreamLen(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 0}, {1, 1}, {2, 1}, {3, 1}, {4, 1}, {5, 2}, {8, 2}, {9, 3},
	}
	for _, tt := range tests {
		if got := ControlStreamLen(tt.n); got != tt.want {
			t.Errorf("ControlStreamLen(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
