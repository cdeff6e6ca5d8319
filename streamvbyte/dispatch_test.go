package streamvbyte

import "testing"

func TestDispatchLevelString(t *testing.T) {
	if DispatchScalar.String() != "scalar" {
		t.Errorf("DispatchScalar.String() = %q, want scalar", DispatchScalar.String())
	}
	if DispatchSSSE3.String() != "ssse3" {
		t.Errorf("DispatchSSSE3.String() = %q, want ssse3", DispatchSSSE3.String())
	}
}

func TestCurrentLevelConsistentWithHasSIMD(t *testing.T) {
	if HasSIMD() != (CurrentLevel() != DispatchScalar) {
		t.Errorf("HasSIMD() = %v inconsistent with CurrentLevel() = %v", HasSIMD(), CurrentLevel())
	}
}
