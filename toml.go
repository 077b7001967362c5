// Copyright (c) 2024 The toml Authors
// See LICENSE for licensing information

// Package toml implements a tokenizer, parser, value model, and canonical
// writer for the TOML configuration language (v0.5, with the v1.0
// relaxation that permits heterogeneous arrays by default).
package toml

import (
	"bytes"
	"unicode/utf8"
)

// Parse decodes a UTF-8 TOML document into a Table.
// The returned error is always a *Error carrying the offending Position
// and ErrorKind; decoding stops at the first error encountered.
func Parse(src []byte, opts ...Option) (*Table, error) {
	if !utf8.Valid(src) {
		return nil, newError(invalidUTF8Position(src), InvalidUTF8, "document is not valid UTF-8")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := newParser()
	defer freeParser(p)
	p.reset(src, o)
	p.parseDocument()
	if p.err != nil {
		return nil, p.err
	}
	return p.root, nil
}

// invalidUTF8Position scans src for the first byte that breaks UTF-8
// encoding and reports its line and column, tracking newlines the same way
// the tokenizer does so the reported position lines up with later errors.
func invalidUTF8Position(src []byte) Position {
	line, lineStart, pos := 1, 0, 0
	for pos < len(src) {
		r, size := utf8.DecodeRune(src[pos:])
		if r == utf8.RuneError && size == 1 {
			return Position{Offset: pos, Line: line, Column: pos - lineStart + 1}
		}
		if r == '\n' {
			line++
			lineStart = pos + size
		}
		pos += size
	}
	return Position{Offset: pos, Line: line, Column: pos - lineStart + 1}
}

// ParseString is a convenience wrapper around Parse for callers holding a
// document as a string rather than a byte slice.
func ParseString(src string, opts ...Option) (*Table, error) {
	return Parse([]byte(src), opts...)
}

// ToTOML serializes root to its canonical TOML form.
func ToTOML(root *Table, opts ...Option) (string, error) {
	var buf bytes.Buffer
	if err := Fwrite(&buf, root, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Marshal is an alias for ToTOML returning a byte slice, following the
// naming convention of the encoding/* packages in the standard library.
func Marshal(root *Table, opts ...Option) ([]byte, error) {
	s, err := ToTOML(root, opts...)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// Codec bundles a fixed set of Options so a caller can share one
// configuration across many Decode/Encode calls.
type Codec struct {
	opts []Option
}

// NewCodec returns a Codec configured with opts.
func NewCodec(opts ...Option) *Codec {
	return &Codec{opts: append([]Option(nil), opts...)}
}

// Decode parses src using the codec's configured options.
func (c *Codec) Decode(src []byte) (*Table, error) {
	return Parse(src, c.opts...)
}

// Encode serializes root using the codec's configured options.
func (c *Codec) Encode(root *Table) (string, error) {
	return ToTOML(root, c.opts...)
}
