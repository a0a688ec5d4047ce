// Package marckit provides a reader, writer, and in-memory object model for
// MARC 21 bibliographic, authority, and holdings records carried in the
// ISO 2709 interchange format.
package marckit

import "fmt"

// Kind tags the broad category of a MarcError without requiring callers to
// type-switch on a concrete error type. It mirrors the distinct failure
// categories that the reader/writer and codec layers can produce.
type Kind int

const (
	// KindInvalidRecord covers structural violations that are not specific
	// to a single sub-part: an empty buffer, no record terminators found,
	// an unreadable directory entry.
	KindInvalidRecord Kind = iota
	// KindInvalidLeader covers any leader-level violation: too-short bytes,
	// non-numeric length, indicator count != 2, record length or base
	// address below 24.
	KindInvalidLeader
	// KindInvalidField covers field-level violations: missing indicators,
	// malformed subfield structure, a non-graphic subfield code.
	KindInvalidField
	// KindEncoding covers MARC-8/UTF-8 conversion failures raised by the
	// advisory encoding validator (the decoder itself never errors; it
	// substitutes U+FFFD).
	KindEncoding
	// KindParse covers any bytes-to-structure failure not covered above.
	KindParse
	// KindTruncated means bytes ended before the declared length.
	KindTruncated
	// KindIO covers failures from the underlying byte source or sink.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindInvalidRecord:
		return "InvalidRecord"
	case KindInvalidLeader:
		return "InvalidLeader"
	case KindInvalidField:
		return "InvalidField"
	case KindEncoding:
		return "Encoding"
	case KindParse:
		return "Parse"
	case KindTruncated:
		return "Truncated"
	case KindIO:
		return "Io"
	default:
		return "Unknown"
	}
}

// MarcError is the single error type surfaced across package boundaries.
// Kind lets callers branch without string matching; Unwrap exposes the
// underlying cause for errors.Is/errors.As chains.
type MarcError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *MarcError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *MarcError) Unwrap() error {
	return e.Cause
}

// NewError builds a MarcError with no wrapped cause.
func NewError(kind Kind, message string) *MarcError {
	return &MarcError{Kind: kind, Message: message}
}

// WrapError builds a MarcError wrapping an underlying cause with %w-style
// chaining semantics (Unwrap returns cause).
func WrapError(kind Kind, message string, cause error) *MarcError {
	return &MarcError{Kind: kind, Message: message, Cause: cause}
}

// IsKind reports whether err is a *MarcError of the given kind, unwrapping
// as errors.As would.
func IsKind(err error, kind Kind) bool {
	var me *MarcError
	for err != nil {
		if e, ok := err.(*MarcError); ok {
			me = e
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return me != nil && me.Kind == kind
}
