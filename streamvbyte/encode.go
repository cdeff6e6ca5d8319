package streamvbyte

// Encode writes the Stream VByte encoding of input into output and returns
// the total number of bytes written: a control stream of
// ControlStreamLen(len(input)) bytes followed immediately by the data
// stream. output must have capacity at least MaxEncodedLen(len(input));
// ErrCapacityInsufficient is returned before anything is written otherwise.
//
// Writes are sequential and non-overlapping; Encode allocates nothing.
func Encode(input []uint32, output []byte) (int, error) {
	n := len(input)
	if len(output) < MaxEncodedLen(n) {
		return 0, ErrCapacityInsufficient
	}

	ctrlLen := ControlStreamLen(n)
	ctrl := output[:ctrlLen]
	data := output[ctrlLen:]
	dataOff := 0

	full := n / 4
	for q := 0; q < full; q++ {
		base := q * 4
		l0 := byteLength(input[base])
		l1 := byteLength(input[base+1])
		l2 := byteLength(input[base+2])
		l3 := byteLength(input[base+3])
		ctrl[q] = packControl(l0, l1, l2, l3)
		dataOff += putLE(data[dataOff:], input[base], l0)
		dataOff += putLE(data[dataOff:], input[base+1], l1)
		dataOff += putLE(data[dataOff:], input[base+2], l2)
		dataOff += putLE(data[dataOff:], input[base+3], l3)
	}

	if r := n % 4; r != 0 {
		base := full * 4
		var c byte
		for i := 0; i < r; i++ {
			l := byteLength(input[base+i])
			c |= byte(l-1) << (uint(i) * 2)
			dataOff += putLE(data[dataOff:], input[base+i], l)
		}
		ctrl[full] = c
	}

	return ctrlLen + dataOff, nil
}

// putLE writes the low l little-endian bytes of x to dst and returns l.
func putLE(dst []byte, x uint32, l int) int {
	for i := 0; i < l; i++ {
		dst[i] = byte(x >> (uint(i) * 8))
	}
	return l
}
