// Package recovery implements the partial-record salvage policies the
// reader applies when a record's body is truncated or malformed,
// grounded in the original implementation's recovery.rs.
package recovery

import (
	"fmt"

	marckit "github.com/bgrewell/marc-kit"
)

// Mode selects how aggressively the reader tolerates malformed input.
type Mode int

const (
	// Strict surfaces any malformation as an error (the default).
	Strict Mode = iota
	// Lenient skips malformed directory entries and fields that fail to
	// decode, and stops at a cut-short directory entry or a field whose
	// data region overruns the body, keeping the fields read before it.
	// It records a message for each anomaly.
	Lenient
	// Permissive is Lenient plus tolerating a field whose data region
	// overruns the body — whatever is available is parsed.
	Permissive
)

// String names mode for log output.
func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	case Permissive:
		return "permissive"
	default:
		return "unknown"
	}
}

// Context accumulates human-readable recovery messages for one record
// read under a non-strict Mode: every anomaly it tolerates adds one
// message, and the caller stops walking the record the moment Recover
// reports the anomaly could not be salvaged.
type Context struct {
	Mode     Mode
	Messages []string
}

// New returns a Context for mode.
func New(mode Mode) *Context {
	return &Context{Mode: mode}
}

// HasRecoveries reports whether any anomaly was tolerated.
func (c *Context) HasRecoveries() bool {
	return len(c.Messages) > 0
}

func (c *Context) note(format string, args ...any) {
	c.Messages = append(c.Messages, fmt.Sprintf(format, args...))
}

// Recover decides, given cause and a human description of where it
// occurred, whether the anomaly can be tolerated under c.Mode. In
// Strict mode it always returns cause unchanged (the caller should
// treat any non-nil return as fatal and stop). In Lenient/Permissive
// mode it records a message and returns nil; how the walk goes on is up
// to the caller (see Lenient and Permissive).
func (c *Context) Recover(cause error, context string) error {
	if c.Mode == Strict {
		return cause
	}
	c.note("%s: %v", context, cause)
	return nil
}

// AllowsOverrun reports whether a field whose data region overruns the
// body should be truncated to what's available rather than rejected.
// Only Permissive mode allows this.
func (c *Context) AllowsOverrun() bool {
	return c.Mode == Permissive
}

// NewTruncatedError wraps cause as a KindTruncated MarcError, the shape
// every Recover caller feeds in for a truncation anomaly.
func NewTruncatedError(context string, cause error) error {
	return marckit.WrapError(marckit.KindTruncated, context, cause)
}
