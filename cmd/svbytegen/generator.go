package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
)

// Generator computes the 256-entry shuffle-mask table and renders it as a
// Go source file.
type Generator struct {
	PackageName string
}

// quadTable holds the generated table in memory, mirroring the layout
// streamvbyte.shuffleMask/payloadLen expect.
type quadTable struct {
	mask [256][16]byte
	len  [256]uint8
}

const zeroSentinel = 0x80

// Build computes the table from the control-byte algorithm: each control
// byte's four 2-bit fields give the byte length of the corresponding
// integer (field value b means length b+1); the shuffle mask for output
// byte j of integer i is the running payload offset plus j when j is
// within that integer's length, else the zero sentinel.
func (g *Generator) Build() quadTable {
	var t quadTable
	for c := 0; c < 256; c++ {
		lens := [4]int{
			int(c&0x03) + 1,
			int((c>>2)&0x03) + 1,
			int((c>>4)&0x03) + 1,
			int((c>>6)&0x03) + 1,
		}
		offs := [4]int{0, lens[0], lens[0] + lens[1], lens[0] + lens[1] + lens[2]}

		var mask [16]byte
		total := 0
		for i := 0; i < 4; i++ {
			total += lens[i]
			for j := 0; j < 4; j++ {
				idx := i*4 + j
				if j < lens[i] {
					mask[idx] = byte(offs[i] + j)
				} else {
					mask[idx] = zeroSentinel
				}
			}
		}
		t.mask[c] = mask
		t.len[c] = uint8(total)
	}
	return t
}

// Render renders the table as formatted Go source.
func (g *Generator) Render() ([]byte, error) {
	t := g.Build()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by cmd/svbytegen. DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "//\n")
	fmt.Fprintf(&buf, "// shuffleMask[c] gives, for control byte c, the 16 source-byte indices into\n")
	fmt.Fprintf(&buf, "// a 16-byte payload window that produce four little-endian uint32 lanes;\n")
	fmt.Fprintf(&buf, "// payloadLen[c] gives the total payload bytes that control byte consumes\n")
	fmt.Fprintf(&buf, "// (4..16). Absent high bytes are marked with the zero sentinel 0x80: any\n")
	fmt.Fprintf(&buf, "// source index with the high bit set reads as zero once a real SSSE3\n")
	fmt.Fprintf(&buf, "// PSHUFB (or this package's portable equivalent, see simd_decode.go)\n")
	fmt.Fprintf(&buf, "// applies the mask.\n")
	fmt.Fprintf(&buf, "package %s\n\n", g.PackageName)

	fmt.Fprintf(&buf, "var shuffleMask = [256][16]byte{\n")
	for c := 0; c < 256; c++ {
		fmt.Fprintf(&buf, "\t{")
		for j, b := range t.mask[c] {
			if j > 0 {
				fmt.Fprintf(&buf, ", ")
			}
			fmt.Fprintf(&buf, "0x%02x", b)
		}
		fmt.Fprintf(&buf, "},\n")
	}
	fmt.Fprintf(&buf, "}\n\n")

	fmt.Fprintf(&buf, "var payloadLen = [256]uint8{\n")
	for c := 0; c < 256; c += 16 {
		fmt.Fprintf(&buf, "\t")
		for j := 0; j < 16; j++ {
			if j > 0 {
				fmt.Fprintf(&buf, ", ")
			}
			fmt.Fprintf(&buf, "%d", t.len[c+j])
		}
		fmt.Fprintf(&buf, ",\n")
	}
	fmt.Fprintf(&buf, "}\n")

	return format.Source(buf.Bytes())
}

// WriteFile renders the table and writes it to path.
func (g *Generator) WriteFile(path string) error {
	src, err := g.Render()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Verify recomputes the table and reports whether it matches the bytes at
// path, without writing anything.
func (g *Generator) Verify(path string) (bool, error) {
	want, err := g.Render()
	if err != nil {
		return false, fmt.Errorf("render table: %w", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	return bytes.Equal(want, got), nil
}
