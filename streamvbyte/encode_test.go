package streamvbyte

import (
	"encoding/hex"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// scenarios mirrors the end-to-end table: input integers and their
// expected encoded bytes. Scenario 5's control byte is derived from the
// bit layout ([1:0]=x0, [3:2]=x1, [5:4]=x2, [7:6]=x3, field value b means
// byte length b+1) rather than taken literally — see DESIGN.md for why.
var scenarios = []struct {
	name string
	in   []uint32
	hex  string
}{
	{"empty", []uint32{}, ""},
	{"single zero", []uint32{0}, "0000"},
	{"four zeros", []uint32{0, 0, 0, 0}, "0000000000"},
	{"growing lengths", []uint32{1, 256, 65536, 16777216}, "e401000100000100000001"},
	{"lengths 1,1,1,2", []uint32{0, 100, 200, 300}, "400064c82c01"},
}

func TestEncodeScenarios(t *testing.T) {
	for _, tt := range scenarios {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, MaxEncodedLen(len(tt.in)))
			n, err := Encode(tt.in, buf)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			want, err := hex.DecodeString(tt.hex)
			if err != nil {
				t.Fatalf("bad fixture hex: %v", err)
			}
			got := buf[:n]
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Encode(%v) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestEncodeCapacityInsufficient(t *testing.T) {
	in := []uint32{1, 2, 3, 4, 5}
	buf := make([]byte, MaxEncodedLen(len(in))-1)
	if _, err := Encode(in, buf); err != ErrCapacityInsufficient {
		t.Errorf("Encode with short buffer: err = %v, want ErrCapacityInsufficient", err)
	}
}

func TestEncodeMinimality(t *testing.T) {
	in := []uint32{0, 1, 255, 256, 65535, 65536, 16777215, 16777216, 0xFFFFFFFF}
	buf := make([]byte, MaxEncodedLen(len(in)))
	n, err := Encode(in, buf)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	ctrlLen := ControlStreamLen(len(in))
	wantDataLen := 0
	for _, x := range in {
		wantDataLen += byteLength(x)
	}
	if n != ctrlLen+wantDataLen {
		t.Errorf("Encode wrote %d bytes, want %d", n, ctrlLen+wantDataLen)
	}
}
