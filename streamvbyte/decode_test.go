package streamvbyte

import (
	"math/rand"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeScenarios(t *testing.T) {
	for _, tt := range scenarios {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, MaxEncodedLen(len(tt.in)))
			n, err := Encode(tt.in, buf)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			out := make([]uint32, len(tt.in))
			consumed, err := Decode(buf[:n], len(tt.in), out)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if consumed != n {
				t.Errorf("Decode consumed %d bytes, want %d", consumed, n)
			}
			if diff := cmp.Diff(tt.in, out); diff != "" {
				t.Errorf("Decode mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeZeroCount(t *testing.T) {
	n, err := Decode(nil, 0, nil)
	if err != nil || n != 0 {
		t.Errorf("Decode(nil, 0, nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestDecodeCapacityInsufficient(t *testing.T) {
	in := []uint32{1, 2, 3, 4, 5}
	buf := make([]byte, MaxEncodedLen(len(in)))
	n, _ := Encode(in, buf)
	out := make([]uint32, len(in)-1)
	if _, err := Decode(buf[:n], len(in), out); err != ErrCapacityInsufficient {
		t.Errorf("Decode with short output: err = %v, want ErrCapacityInsufficient", err)
	}
}

func TestDecodeTruncatedInput(t *testing.T) {
	in := []uint32{1, 256, 65536, 16777216, 42}
	buf := make([]byte, MaxEncodedLen(len(in)))
	n, _ := Encode(in, buf)
	out := make([]uint32, len(in))

	for cut := n - 1; cut >= ControlStreamLen(len(in)); cut-- {
		_, err := Decode(buf[:cut], len(in), out)
		var te *TruncatedInputError
		if err == nil {
			t.Fatalf("Decode(cut=%d): err = nil, want truncation error", cut)
		}
		if !errorsAs(err, &te) {
			t.Fatalf("Decode(cut=%d): err = %v (%T), want *TruncatedInputError", cut, err, err)
		}
		if te.Available != cut {
			t.Errorf("Decode(cut=%d): Available = %d, want %d", cut, te.Available, cut)
		}
	}
}

func TestDecodeNegativeCount(t *testing.T) {
	if _, err := Decode(nil, -1, nil); err != ErrInvalidCount {
		t.Errorf("Decode with n=-1: err = %v, want ErrInvalidCount", err)
	}
}

func TestRoundTripBoundaries(t *testing.T) {
	for n := 0; n <= 9; n++ {
		in := make([]uint32, n)
		for i := range in {
			in[i] = uint32(i) * 1000003
		}
		roundTrip(t, in)
	}
}

func TestRoundTripAllMax(t *testing.T) {
	in := make([]uint32, 17)
	for i := range in {
		in[i] = 0xFFFFFFFF
	}
	roundTrip(t, in)
}

func TestRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(600)
		in := make([]uint32, n)
		for i := range in {
			switch rng.Intn(4) {
			case 0:
				in[i] = uint32(rng.Intn(256))
			case 1:
				in[i] = uint32(rng.Intn(1 << 16))
			case 2:
				in[i] = uint32(rng.Intn(1 << 24))
			default:
				in[i] = rng.Uint32()
			}
		}
		roundTrip(t, in)
	}
}

// roundTrip encodes in, decodes it back with every strategy, and checks
// that DefaultStrategy/StrategyScalar/StrategySIMD all agree with in and
// with each other's byte-consumption count.
func roundTrip(t *testing.T, in []uint32) {
	t.Helper()
	buf := make([]byte, MaxEncodedLen(len(in)))
	n, err := Encode(in, buf)
	if err != nil {
		t.Fatalf("Encode(%d ints): %v", len(in), err)
	}

	for _, s := range []Strategy{DefaultStrategy, StrategyScalar, StrategySIMD} {
		out := make([]uint32, len(in))
		consumed, err := DecodeWithStrategy(s, buf[:n], len(in), out)
		if err != nil {
			t.Fatalf("DecodeWithStrategy(%v, %d ints): %v", s, len(in), err)
		}
		if consumed != n {
			t.Errorf("DecodeWithStrategy(%v): consumed %d, want %d", s, consumed, n)
		}
		if diff := cmp.Diff(in, out); diff != "" {
			t.Errorf("DecodeWithStrategy(%v) mismatch (-want +got):\n%s", s, diff)
		}
	}
}

func TestReferenceFixture(t *testing.T) {
	want := make([]uint32, 5000)
	for k := range want {
		want[k] = uint32(k) * 100
	}

	encoded, err := os.ReadFile("../testdata/data.bin")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	out := make([]uint32, len(want))
	consumed, err := Decode(encoded, len(want), out)
	if err != nil {
		t.Fatalf("Decode fixture: %v", err)
	}
	if consumed != len(encoded) {
		t.Errorf("Decode fixture consumed %d bytes, want %d (all of it)", consumed, len(encoded))
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("Decode fixture mismatch (-want +got):\n%s", diff)
	}

	buf := make([]byte, MaxEncodedLen(len(want)))
	n, err := Encode(want, buf)
	if err != nil {
		t.Fatalf("Encode fixture: %v", err)
	}
	if diff := cmp.Diff(encoded, buf[:n]); diff != "" {
		t.Errorf("Encode fixture mismatch (-want +got):\n%s", diff)
	}
}

// errorsAs is a tiny local wrapper so this file doesn't need a second
// "errors" import alongside go-cmp in every test above.
func errorsAs(err error, target **TruncatedInputError) bool {
	te, ok := err.(*TruncatedInputError)
	if !ok {
		return false
	}
	*target = te
	return true
}
