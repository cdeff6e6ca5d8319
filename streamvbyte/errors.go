package streamvbyte

import (
	"errors"
	"fmt"
)

// ErrCapacityInsufficient is returned by Encode when the destination buffer
// is smaller than MaxEncodedLen(n), and by Decode when the destination
// integer slice is smaller than n. Signaled before any byte is written.
var ErrCapacityInsufficient = errors.New("streamvbyte: destination capacity insufficient")

// ErrInvalidCount is returned by Decode when n is negative. A count too large
// for the supplied input is reported as a *TruncatedInputError instead.
var ErrInvalidCount = errors.New("streamvbyte: invalid count")

// TruncatedInputError is returned by Decode when the input is shorter than
// the count requires: either the control stream itself is short, or the data
// stream ends before the control stream's declared payload bytes.
type TruncatedInputError struct {
	Expected  int // encoded-stream bytes required: control + data, or just the control stream length when that is short
	Available int // total encoded-stream bytes actually present in input
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("streamvbyte: truncated input: expected %d bytes, have %d", e.Expected, e.Available)
}

// errTruncatedControl reports that the control stream itself is shorter
// than ControlStreamLen(n) requires.
func errTruncatedControl(n, have int) error {
	return &TruncatedInputError{Expected: ControlStreamLen(n), Available: have}
}
