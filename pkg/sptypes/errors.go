// Package sptypes defines the shared value types for rsparam.
// This file contains the error taxonomy surfaced by the parser and
// query engine. Each error carries enough context for the presentation
// layer to report a precise message without the core formatting
// anything user-facing itself.
package sptypes

import "fmt"

// DecodeError reports bytes that could not be decoded under the
// requested encoding, or an encoding name that is not recognized.
// It aborts the whole parse.
type DecodeError struct {
	Encoding string
	Err      error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode input as %s: %v", e.Encoding, e.Err)
}

// Unwrap returns the underlying decode failure.
func (e *DecodeError) Unwrap() error { return e.Err }

// MalformedLineError reports a data line that could not be tokenized
// into the minimum field count for its record kind, or whose fields
// failed record-level validation. Parsing aborts on the first such
// error: partial structural records are not safely usable downstream.
type MalformedLineError struct {
	LineNumber int
	RawText    string
	Reason     string
}

// Error implements the error interface.
func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.LineNumber, e.Reason, e.RawText)
}

// PatternError reports an unparseable regular expression passed to a
// find operation. It fails that call only; already-parsed files stay
// valid.
type PatternError struct {
	Pattern string
	Reason  string
}

// Error implements the error interface.
func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %s", e.Pattern, e.Reason)
}
