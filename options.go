// Copyright (c) 2024 The toml Authors
// See LICENSE for licensing information

package toml

// Option configures Parse, the Writer, and Codec. Not every option applies
// in both directions: InflateDateTime and InflateBoolean only affect
// parsing; a Writer simply never consults them. This single
// functional-option type models the parse-time mapping callbacks as
// closures stored directly in the options struct.
type Option func(*options)

type options struct {
	inflateDateTime func(raw string, kind DateTimeKind) Value
	inflateBoolean  func(b bool) Value
	strictArrays    bool
}

func defaultOptions() options {
	return options{
		inflateDateTime: func(raw string, kind DateTimeKind) Value {
			return DateTime{Kind: kind, Raw: raw}
		},
		inflateBoolean: func(b bool) Value {
			return Bool(b)
		},
	}
}

// InflateDateTime installs a callback invoked for every datetime token
// during Parse; its return value replaces the default DateTime
// representation. Per the carrier-type decision recorded in DESIGN.md, the
// callback must return a Value from the codec's closed set (most commonly
// a DateTime with a caller-normalized Raw, or a String).
func InflateDateTime(fn func(raw string, kind DateTimeKind) Value) Option {
	return func(o *options) { o.inflateDateTime = fn }
}

// InflateBoolean installs a callback invoked for every boolean token
// during Parse; its return value replaces the default Bool representation.
func InflateBoolean(fn func(b bool) Value) Option {
	return func(o *options) { o.inflateBoolean = fn }
}

// StrictArrays enables or disables TOML v0.5 strict array-homogeneity
// checking. Applied at parse time (arrays are checked as each one closes)
// and at write time (an array the caller built by hand is checked before
// being serialized).
func StrictArrays(strict bool) Option {
	return func(o *options) { o.strictArrays = strict }
}
