// Copyright (c) 2024 The toml Authors
// See LICENSE for licensing information

package toml

// Value is the tagged union at the heart of the codec: every node in a
// parsed document, and every node a caller hands to the writer, is one of
// the concrete types below. The interface's unexported marker method keeps
// the set closed, so a type switch over Value can be exhaustive and the
// compiler catches an unhandled variant — see strict.go and writer.go.
type Value interface {
	tomlValue()
}

// Table is an ordered mapping from non-empty string keys to Values. Key
// order reflects first insertion, which is required for deterministic
// re-serialization of input that round-trips through a Table built by hand
// (the Writer itself always emits lexicographic order regardless; see
// writer.go).
type Table struct {
	keys   []string
	values map[string]Value

	// explicit records whether this table was introduced by its own
	// [header], as opposed to being created implicitly by a dotted key or
	// by a descendant's header. Only an explicit table can conflict with a
	// later, duplicate [header] for the same path.
	explicit bool

	// sealed marks a table closed by inline-table syntax ({ ... }). A
	// sealed table cannot gain new keys from subsequent dotted keys or
	// headers.
	sealed bool
}

// NewTable returns an empty, unsealed, implicit Table.
func NewTable() *Table {
	return &Table{values: make(map[string]Value)}
}

func (*Table) tomlValue() {}

// Keys returns the table's keys in insertion order.
func (t *Table) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Get returns the value stored at key, if any.
func (t *Table) Get(key string) (Value, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Len reports the number of direct children of t.
func (t *Table) Len() int { return len(t.keys) }

// Explicit reports whether t was introduced by its own [header].
func (t *Table) Explicit() bool { return t.explicit }

// Sealed reports whether t is an inline table closed by '}'.
func (t *Table) Sealed() bool { return t.sealed }

// Set installs v at key, overwriting any prior value. Set does not enforce
// the parser's duplicate-key invariant: it is a builder primitive for
// callers constructing a tree to hand to the Writer, not a parser helper.
func (t *Table) Set(key string, v Value) {
	if t.values == nil {
		t.values = make(map[string]Value)
	}
	if _, exists := t.values[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.values[key] = v
}

// Array is an ordered, possibly heterogeneous sequence of Values.
type Array struct {
	elems []Value

	// isAOT marks an array built by repeated [[path]] headers (an
	// "array-of-tables"). Only an isAOT array may be appended to by a
	// later [[path]] header; any other array is sealed against that
	// syntax and a later [[path]] on the same path is a TypeConflict.
	isAOT bool
}

// NewArray returns an empty Array.
func NewArray() *Array { return &Array{} }

func (*Array) tomlValue() {}

// Elems returns the array's elements in order.
func (a *Array) Elems() []Value {
	out := make([]Value, len(a.elems))
	copy(out, a.elems)
	return out
}

// Len reports the number of elements in a.
func (a *Array) Len() int { return len(a.elems) }

// IsArrayOfTables reports whether a was produced by [[path]] headers.
func (a *Array) IsArrayOfTables() bool { return a.isAOT }

// Append adds v to the end of a.
func (a *Array) Append(v Value) { a.elems = append(a.elems, v) }

// String is a Unicode string value.
type String string

func (String) tomlValue() {}

// Bool is a boolean value.
type Bool bool

func (Bool) tomlValue() {}

// Float is an IEEE-754 double. The sentinels +inf, -inf and nan are
// represented the ordinary Go way, via math.Inf and math.NaN; TOML's "sign
// of nan is not preserved" rule falls out for free since math.NaN() carries
// no meaningful sign bit as far as this codec is concerned.
type Float float64

func (Float) tomlValue() {}

// DateTimeKind distinguishes the date/time sub-variants by which of
// {date, time, offset} are present.
type DateTimeKind int

const (
	// OffsetDateTime is a full date + time + offset: a real instant.
	OffsetDateTime DateTimeKind = iota
	// LocalDateTime is a full date + time with no offset: the floating zone.
	LocalDateTime
	// LocalDate is a date with no time component.
	LocalDate
	// LocalTime is a time with no date component.
	LocalTime
)

var dateTimeKindNames = map[DateTimeKind]string{
	OffsetDateTime: "OffsetDateTime",
	LocalDateTime:  "LocalDateTime",
	LocalDate:      "LocalDate",
	LocalTime:      "LocalTime",
}

func (k DateTimeKind) String() string {
	if s, ok := dateTimeKindNames[k]; ok {
		return s
	}
	return "UnknownDateTimeKind"
}

// DateTime carries one of TOML's four date/time literal shapes as the
// original RFC-3339-shaped string, normalized so that equality is plain
// string equality: the 'T'/space date-time separator is collapsed to 'T',
// and the 'Z' UTC offset marker is upper-cased. A caller-supplied
// Option (InflateDateTime) may replace this default representation during
// parsing.
type DateTime struct {
	Kind DateTimeKind
	Raw  string
}

func (DateTime) tomlValue() {}

// Equal reports whether a and b are structurally identical TOML values:
// same variant, and recursively identical contents. Table key order is not
// significant to Equal, only key/value membership: preserving insertion
// order is not required for semantic equivalence.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case *Table:
		bv, ok := b.(*Table)
		if !ok || len(av.keys) != len(bv.keys) {
			return false
		}
		for _, k := range av.keys {
			bval, ok := bv.values[k]
			if !ok || !Equal(av.values[k], bval) {
				return false
			}
		}
		return true
	case *Array:
		bv, ok := b.(*Array)
		if !ok || len(av.elems) != len(bv.elems) {
			return false
		}
		for i, e := range av.elems {
			if !Equal(e, bv.elems[i]) {
				return false
			}
		}
		return true
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Integer:
		bv, ok := b.(Integer)
		return ok && av.Cmp(bv) == 0
	case Float:
		bv, ok := b.(Float)
		if !ok {
			return false
		}
		if isNaN(float64(av)) && isNaN(float64(bv)) {
			return true
		}
		return av == bv
	case DateTime:
		bv, ok := b.(DateTime)
		return ok && av.Kind == bv.Kind && av.Raw == bv.Raw
	default:
		return false
	}
}

func isNaN(f float64) bool { return f != f }
