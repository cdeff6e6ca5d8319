// Package streamvbyte implements the Stream VByte variable-length integer
// coding: a control stream of 2-bit length tags separated from a data stream
// of little-endian payload bytes, laid out so that bulk decoding can be
// driven by a 256-entry shuffle-mask table (see table.go).
package streamvbyte

import "math/bits"

// byteLength returns the minimal number of little-endian bytes needed to
// hold x: 1 for zero, otherwise ceil(bits.Len32(x) / 8).
func byteLength(x uint32) int {
	if x == 0 {
		return 1
	}
	return (bits.Len32(x) + 7) / 8
}

// MaxEncodedLen returns the worst-case number of bytes Encode can write for
// n integers: every integer consuming the full 4 payload bytes.
func MaxEncodedLen(n int) int {
	return ControlStreamLen(n) + 4*n
}

// ControlStreamLen returns ceil(n/4), the number of control bytes a stream
// of n integers occupies.
func ControlStreamLen(n int) int {
	return (n + 3) / 4
}
