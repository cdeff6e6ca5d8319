package main

import "testing"

func TestBuildDeterministic(t *testing.T) {
	g := &Generator{PackageName: "streamvbyte"}
	a := g.Build()
	b := g.Build()
	if a != b {
		t.Fatalf("Build() is not deterministic across calls")
	}
}

func TestBuildPayloadLenRange(t *testing.T) {
	g := &Generator{PackageName: "streamvbyte"}
	t_ := g.Build()
	for c := 0; c < 256; c++ {
		if t_.len[c] < 4 || t_.len[c] > 16 {
			t.Errorf("payload len for control %#02x = %d, out of [4,16]", c, t_.len[c])
		}
	}
}

func TestBuildKnownControlBytes(t *testing.T) {
	g := &Generator{PackageName: "streamvbyte"}
	tbl := g.Build()

	// lengths 1,1,1,1 -> control 0x00, payload 4; each lane takes one source
	// byte and its three high bytes are zero sentinels.
	if tbl.len[0x00] != 4 {
		t.Errorf("payloadLen[0x00] = %d, want 4", tbl.len[0x00])
	}
	for i, b := range tbl.mask[0x00] {
		want := byte(zeroSentinel)
		if i%4 == 0 {
			want = byte(i / 4)
		}
		if b != want {
			t.Errorf("mask[0x00][%d] = %#02x, want %#02x (every field is length 1)", i, b, want)
		}
	}

	// lengths 4,4,4,4 -> control 0xFF, payload 16, identity mapping.
	if tbl.len[0xFF] != 16 {
		t.Errorf("payloadLen[0xFF] = %d, want 16", tbl.len[0xFF])
	}
	for i, b := range tbl.mask[0xFF] {
		if b != byte(i) {
			t.Errorf("mask[0xFF][%d] = %#02x, want %#02x (identity)", i, b, i)
		}
	}

	// lengths 1,2,3,4 -> control 0xE4, payload 10.
	if tbl.len[0xE4] != 10 {
		t.Errorf("payloadLen[0xE4] = %d, want 10", tbl.len[0xE4])
	}
}

func TestRenderFormatsCleanly(t *testing.T) {
	g := &Generator{PackageName: "streamvbyte"}
	src, err := g.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(src) == 0 {
		t.Fatal("Render produced no output")
	}
}
