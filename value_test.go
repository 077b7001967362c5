// Copyright (c) 2024 The toml Authors
// See LICENSE for licensing information

package toml

import (
	"math"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"
)

func TestTableSetGet(t *testing.T) {
	c := qt.New(t)
	tbl := NewTable()
	tbl.Set("a", NewInteger(1))
	tbl.Set("b", NewInteger(2))
	tbl.Set("a", NewInteger(3)) // overwrite, key order unaffected

	if diff := cmp.Diff([]string{"a", "b"}, tbl.Keys()); diff != "" {
		t.Fatalf("Keys() mismatch (-want +got):\n%s", diff)
	}
	v, ok := tbl.Get("a")
	c.Assert(ok, qt.IsTrue)
	n, _ := v.(Integer).Int64()
	c.Assert(n, qt.Equals, int64(3))
}

func TestArrayAppend(t *testing.T) {
	c := qt.New(t)
	arr := NewArray()
	arr.Append(NewInteger(1))
	arr.Append(String("two"))
	c.Assert(arr.Len(), qt.Equals, 2)
	c.Assert(arr.IsArrayOfTables(), qt.IsFalse)
}

func TestEqualTables(t *testing.T) {
	c := qt.New(t)
	a := NewTable()
	a.Set("x", NewInteger(1))
	b := NewTable()
	b.Set("x", NewInteger(1))
	c.Assert(Equal(a, b), qt.IsTrue)

	b.Set("y", NewInteger(2))
	c.Assert(Equal(a, b), qt.IsFalse)
}

func TestEqualIgnoresKeyOrder(t *testing.T) {
	c := qt.New(t)
	a := NewTable()
	a.Set("x", NewInteger(1))
	a.Set("y", NewInteger(2))
	b := NewTable()
	b.Set("y", NewInteger(2))
	b.Set("x", NewInteger(1))
	c.Assert(Equal(a, b), qt.IsTrue)
}

func TestEqualFloatNaN(t *testing.T) {
	c := qt.New(t)
	nan1 := Float(math.NaN())
	nan2 := Float(math.NaN())
	c.Assert(Equal(nan1, nan2), qt.IsTrue)
	c.Assert(Equal(nan1, Float(1.0)), qt.IsFalse)
}

func TestEqualDateTime(t *testing.T) {
	c := qt.New(t)
	a := DateTime{Kind: LocalDate, Raw: "1979-05-27"}
	b := DateTime{Kind: LocalDate, Raw: "1979-05-27"}
	d := DateTime{Kind: LocalTime, Raw: "1979-05-27"}
	c.Assert(Equal(a, b), qt.IsTrue)
	c.Assert(Equal(a, d), qt.IsFalse)
}

func TestEqualDifferentTypes(t *testing.T) {
	c := qt.New(t)
	c.Assert(Equal(String("1"), NewInteger(1)), qt.IsFalse)
}
