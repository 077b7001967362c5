// Copyright (c) 2024 The toml Authors
// See LICENSE for licensing information

package toml

// sameTOMLType reports whether a and b share a type for the purposes of
// strict array-homogeneity checking. The DateTime sub-variants count as
// distinct types from one another; a plain table and
// an inline table are the same type, since both are represented by *Table.
func sameTOMLType(a, b Value) bool {
	switch av := a.(type) {
	case *Table:
		_, ok := b.(*Table)
		return ok
	case *Array:
		_, ok := b.(*Array)
		return ok
	case String:
		_, ok := b.(String)
		return ok
	case Bool:
		_, ok := b.(Bool)
		return ok
	case Integer:
		_, ok := b.(Integer)
		return ok
	case Float:
		_, ok := b.(Float)
		return ok
	case DateTime:
		bv, ok := b.(DateTime)
		return ok && bv.Kind == av.Kind
	default:
		return false
	}
}

// isHomogeneous reports whether every element of arr shares one TOML type.
// An array of fewer than two elements is trivially homogeneous.
func isHomogeneous(arr *Array) bool {
	if len(arr.elems) < 2 {
		return true
	}
	first := arr.elems[0]
	for _, e := range arr.elems[1:] {
		if !sameTOMLType(first, e) {
			return false
		}
	}
	return true
}

// allTables reports whether arr is non-empty and every element is a
// *Table — the shape produced by a run of [[path]] headers.
func allTables(arr *Array) bool {
	if len(arr.elems) == 0 {
		return false
	}
	for _, e := range arr.elems {
		if _, ok := e.(*Table); !ok {
			return false
		}
	}
	return true
}

// mixedArray reports whether arr has at least one *Table element and at
// least one non-table element — the shape the writer splits across an
// inline array and a run of [[path]] headers; see DESIGN.md's notes on
// mixed-type arrays.
func mixedArray(arr *Array) bool {
	hasTable, hasOther := false, false
	for _, e := range arr.elems {
		if _, ok := e.(*Table); ok {
			hasTable = true
		} else {
			hasOther = true
		}
	}
	return hasTable && hasOther
}
