// Package boundary locates MARC record terminators (0x1D) in a byte
// buffer so callers can split a multi-record stream into per-record
// slices without parsing each record first.
package boundary

import (
	"bytes"
	"errors"

	"github.com/bgrewell/marc-kit/pkg/consts"
)

// ErrEmptyBuffer is returned by Scan/ScanLimited when the input buffer has
// zero length.
var ErrEmptyBuffer = errors.New("buffer is empty")

// ErrNoCompleteRecords is returned when the buffer contains no 0x1D
// terminator at all.
var ErrNoCompleteRecords = errors.New("no complete MARC records found (no 0x1D record terminators)")

// Span is one (offset, length) record boundary; length includes the
// terminating 0x1D byte.
type Span struct {
	Offset int
	Length int
}

// Scanner scans a buffer for record boundaries, reusing its internal
// slice across calls so repeated scans (one per pipeline chunk) do not
// each pay for a fresh allocation.
type Scanner struct {
	spans []Span
}

// New returns a ready-to-use Scanner.
func New() *Scanner {
	return &Scanner{}
}

// Clear empties the scanner's reusable boundary slice without releasing
// its backing array.
func (s *Scanner) Clear() {
	s.spans = s.spans[:0]
}

// Capacity exposes the current backing capacity of the reusable boundary
// slice, useful for pool sizing.
func (s *Scanner) Capacity() int {
	return cap(s.spans)
}

// Scan finds every record boundary in buf. Bytes after the last 0x1D are a
// partial trailing record and are not covered by any returned span.
func (s *Scanner) Scan(buf []byte) ([]Span, error) {
	return s.scanLimited(buf, -1)
}

// ScanLimited behaves like Scan but stops after collecting at most n
// boundaries.
func (s *Scanner) ScanLimited(buf []byte, n int) ([]Span, error) {
	return s.scanLimited(buf, n)
}

func (s *Scanner) scanLimited(buf []byte, limit int) ([]Span, error) {
	if len(buf) == 0 {
		return nil, ErrEmptyBuffer
	}

	s.Clear()
	start := 0
	for {
		if limit >= 0 && len(s.spans) >= limit {
			break
		}
		idx := bytes.IndexByte(buf[start:], consts.RecordTerminator)
		if idx < 0 {
			break
		}
		length := idx + 1
		s.spans = append(s.spans, Span{Offset: start, Length: length})
		start += length
	}

	if len(s.spans) == 0 {
		return nil, ErrNoCompleteRecords
	}
	return s.spans, nil
}

// CountRecords counts the 0x1D bytes in buf without allocating a boundary
// list.
func CountRecords(buf []byte) int {
	count := 0
	idx := 0
	for {
		i := bytes.IndexByte(buf[idx:], consts.RecordTerminator)
		if i < 0 {
			return count
		}
		count++
		idx += i + 1
	}
}
