// Copyright (c) 2024 The toml Authors
// See LICENSE for licensing information

package toml

import "fmt"

// ErrorKind classifies why a parse or write operation failed.
type ErrorKind int

// The list of all possible error kinds.
const (
	_ ErrorKind = iota
	SyntaxError
	UnterminatedString
	InvalidEscape
	InvalidUTF8
	DuplicateKey
	DuplicateTable
	TypeConflict
	ExtendSealed
	HeterogenousArray
	InvalidNumber
	InvalidDateTime
	UnknownValueType
)

var errKindNames = map[ErrorKind]string{
	SyntaxError:        "SyntaxError",
	UnterminatedString: "UnterminatedString",
	InvalidEscape:      "InvalidEscape",
	InvalidUTF8:        "InvalidUtf8",
	DuplicateKey:       "DuplicateKey",
	DuplicateTable:     "DuplicateTable",
	TypeConflict:       "TypeConflict",
	ExtendSealed:       "ExtendSealed",
	HeterogenousArray:  "HeterogenousArray",
	InvalidNumber:      "InvalidNumber",
	InvalidDateTime:    "InvalidDateTime",
	UnknownValueType:   "UnknownValueType",
}

func (k ErrorKind) String() string {
	if s, ok := errKindNames[k]; ok {
		return s
	}
	return "UnknownError"
}

// Position describes a location within a source document.
type Position struct {
	Offset int // byte offset, starting at 0
	Line   int // line number, starting at 1
	Column int // column number, starting at 1 (in bytes)
}

// Error is the error type returned by Parse and the Writer for any
// violation of the codec's syntax or invariants. An Error from Parse
// carries the 1-based line number of the offending input; an Error from the
// Writer has a zero Position, since there is no source text to point at. A
// single Error aborts the whole operation and no partial value is ever
// returned alongside it.
type Error struct {
	Position
	Kind ErrorKind
	Text string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Column, e.Kind, e.Text)
}

func newError(pos Position, kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Position: pos, Kind: kind, Text: fmt.Sprintf(format, args...)}
}
