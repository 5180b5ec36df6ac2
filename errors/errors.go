// Copyright 2018 The CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errors defines the engine's closed, non-overlapping error
// taxonomy (spec section 7): advance-stuck-row, advance-stuck-tokenize,
// null-token, feature-error, end-of-input and runtime-misuse. Parsing
// aborts on any fatal kind, so unlike the teacher's errors.List (which
// accumulates many syntax diagnostics for a single file) this package's
// ParseError always describes exactly one fault.
package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/srccircumflex/syntax-parser-prototype/token"
)

// Kind tags one of the error taxonomy's members.
type Kind uint8

const (
	// AdvanceStuckRow: an iteration completed without advancing
	// (row_no, viewpoint) and without producing an end token.
	AdvanceStuckRow Kind = iota
	// AdvanceStuckTokenize: a sub-tokenization call returned without
	// consuming from its designated substream.
	AdvanceStuckTokenize
	// NullToken: a zero-width required-progress token (a Mask, most
	// commonly) was encountered where zero width would loop forever.
	NullToken
	// FeatureError: a feature pipeline shrank a token's range below zero
	// width, or tried to strip more than was available.
	FeatureError
	// EndOfInput: propagated internally when the row buffer is exhausted;
	// surfaced to users only through iterator views.
	EndOfInput
	// RuntimeMisuse: a configuration error such as adding Root as a
	// sub-phrase, or calling Root.Starts directly.
	RuntimeMisuse
)

func (k Kind) String() string {
	switch k {
	case AdvanceStuckRow:
		return "advance-stuck-row"
	case AdvanceStuckTokenize:
		return "advance-stuck-tokenize"
	case NullToken:
		return "null-token"
	case FeatureError:
		return "feature-error"
	case EndOfInput:
		return "end-of-input"
	case RuntimeMisuse:
		return "runtime-misuse"
	default:
		return "unknown"
	}
}

// ParseError is the single error type the engine returns. Its fields beyond
// Kind/Position/message are accessed through the typed accessors below,
// mirroring the teacher's "Error reports the message; Positions reports
// where" split (cue/errors.Error) rather than exposing a grab-bag struct.
type ParseError struct {
	kind Kind
	pos  token.Position
	msg  string
	args []any

	// Context fields; which are populated depends on Kind.
	node       *token.Node
	rowNo      int
	row        string
	unparsed   string
	designated string
	offending  *token.Token
	wrapped    error
}

// New constructs a ParseError of the given kind.
func New(kind Kind, pos token.Position, format string, args ...any) *ParseError {
	return &ParseError{kind: kind, pos: pos, msg: format, args: args}
}

// Kind reports the taxonomy member.
func (e *ParseError) Kind() Kind { return e.kind }

// Position reports the primary position of the error.
func (e *ParseError) Position() token.Position { return e.pos }

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf(e.msg, e.args...)
	return fmt.Sprintf("%s: %s (at %s)", e.kind, msg, e.pos)
}

// Unwrap supports errors.Is/errors.As against a wrapped cause.
func (e *ParseError) Unwrap() error { return e.wrapped }

// WithNode attaches the stuck/offending node, for AdvanceStuckRow and
// AdvanceStuckTokenize.
func (e *ParseError) WithNode(n *token.Node) *ParseError {
	e.node = n
	return e
}

// Node returns the node attached via WithNode, if any.
func (e *ParseError) Node() *token.Node { return e.node }

// WithRow attaches the row number and row content, for AdvanceStuckRow.
func (e *ParseError) WithRow(rowNo int, row string) *ParseError {
	e.rowNo, e.row = rowNo, row
	return e
}

// Row returns the row number and row content attached via WithRow.
func (e *ParseError) Row() (int, string) { return e.rowNo, e.row }

// WithUnparsed attaches the unparsed tail, for AdvanceStuckRow.
func (e *ParseError) WithUnparsed(s string) *ParseError {
	e.unparsed = s
	return e
}

// Unparsed returns the unparsed tail attached via WithUnparsed.
func (e *ParseError) Unparsed() string { return e.unparsed }

// WithDesignated attaches the sub-stream's designated content, for
// AdvanceStuckTokenize.
func (e *ParseError) WithDesignated(s string) *ParseError {
	e.designated = s
	return e
}

// Designated returns the designated content attached via WithDesignated.
func (e *ParseError) Designated() string { return e.designated }

// WithToken attaches the offending token, for FeatureError.
func (e *ParseError) WithToken(t *token.Token) *ParseError {
	e.offending = t
	return e
}

// OffendingToken returns the token attached via WithToken.
func (e *ParseError) OffendingToken() *token.Token { return e.offending }

// WithWrapped attaches an underlying cause.
func (e *ParseError) WithWrapped(err error) *ParseError {
	e.wrapped = err
	return e
}

// IsFatal reports whether kind aborts the parse outright. Every kind is
// fatal except EndOfInput, which is local to iterator views (spec section
// 7, "Propagation").
func (k Kind) IsFatal() bool { return k != EndOfInput }

// Sanitize is a light pass-through kept for API symmetry with the teacher's
// errors.Sanitize; since this package never accumulates a list of errors (a
// parse aborts on the first fatal kind) there is nothing to deduplicate, but
// downstream code that handles both a single error and (hypothetically) an
// aggregate keeps working unchanged if the engine ever grows one.
func Sanitize(err error) error { return err }

// Print writes a short, human-readable rendering of err to w, in the spirit
// of the teacher's errors.Print/Details helpers.
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(w, err.Error())
	if pe, ok := err.(*ParseError); ok {
		if pe.row != "" {
			fmt.Fprintf(w, "    row %d: %s\n", pe.rowNo, strings.TrimRight(pe.row, "\r\n"))
		}
		if pe.unparsed != "" {
			fmt.Fprintf(w, "    unparsed: %q\n", pe.unparsed)
		}
		if pe.designated != "" {
			fmt.Fprintf(w, "    designated: %q\n", pe.designated)
		}
	}
}

// Details is a convenience wrapper for Print that returns the text directly.
func Details(err error) string {
	var b strings.Builder
	Print(&b, err)
	return b.String()
}
