// Package encoding marshals and unmarshals the fixed-width ASCII numeral
// and text fields used throughout the ISO 2709 leader and directory:
// zero-padded record lengths and offsets, and space-padded text. Adapted
// from the teacher's ECMA-119 binary marshalling package of the same
// name, which padded/truncated fixed-width fields for volume descriptors
// the same structural way; the dual little/big-endian integer codec that
// package carried has no ISO 2709 equivalent (the interchange format is
// all-ASCII) and is not carried forward (see DESIGN.md).
package encoding

import "fmt"

// PadDigits renders n as zero-padded ASCII decimal digits exactly width
// bytes wide. n is clamped to [0, 10^width-1] first: callers that must
// reject an out-of-range value outright, rather than silently clamp it,
// check the range themselves before calling, as the ISO 2709 writer does
// for base-address and record-length overflow (§4.7).
func PadDigits(n, width int) []byte {
	max := 1
	for i := 0; i < width; i++ {
		max *= 10
	}
	if n < 0 {
		n = 0
	}
	if n > max-1 {
		n = max - 1
	}
	return []byte(fmt.Sprintf("%0*d", width, n))
}

// ParseDigits decodes an all-ASCII-digit byte slice as an unsigned
// integer, failing on the first non-digit byte.
func ParseDigits(b []byte) (int, error) {
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("non-numeric byte %q in %q", c, b)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

// PadString truncates or space-pads s to exactly length bytes, the
// fixed-width text field convention the leader's reserved bytes use.
func PadString(s string, length int) []byte {
	if len(s) > length {
		s = s[:length]
	}
	b := make([]byte, length)
	n := copy(b, s)
	for i := n; i < length; i++ {
		b[i] = ' '
	}
	return b
}


