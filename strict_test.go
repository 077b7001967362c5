// Copyright (c) 2024 The toml Authors
// See LICENSE for licensing information

package toml

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestSameTOMLType(t *testing.T) {
	c := qt.New(t)
	c.Assert(sameTOMLType(NewInteger(1), NewInteger(2)), qt.IsTrue)
	c.Assert(sameTOMLType(NewInteger(1), Float(1)), qt.IsFalse)
	c.Assert(sameTOMLType(NewTable(), NewTable()), qt.IsTrue)
	c.Assert(sameTOMLType(NewTable(), NewArray()), qt.IsFalse)

	odt := DateTime{Kind: OffsetDateTime}
	ldt := DateTime{Kind: LocalDateTime}
	c.Assert(sameTOMLType(odt, odt), qt.IsTrue)
	c.Assert(sameTOMLType(odt, ldt), qt.IsFalse)
}

func TestIsHomogeneous(t *testing.T) {
	c := qt.New(t)
	homo := NewArray()
	homo.Append(NewInteger(1))
	homo.Append(NewInteger(2))
	c.Assert(isHomogeneous(homo), qt.IsTrue)

	mixed := NewArray()
	mixed.Append(NewInteger(1))
	mixed.Append(String("x"))
	c.Assert(isHomogeneous(mixed), qt.IsFalse)

	c.Assert(isHomogeneous(NewArray()), qt.IsTrue)
}

func TestAllTablesAndMixedArray(t *testing.T) {
	c := qt.New(t)
	allT := NewArray()
	allT.Append(NewTable())
	allT.Append(NewTable())
	c.Assert(allTables(allT), qt.IsTrue)
	c.Assert(mixedArray(allT), qt.IsFalse)

	mix := NewArray()
	mix.Append(NewTable())
	mix.Append(NewInteger(1))
	c.Assert(allTables(mix), qt.IsFalse)
	c.Assert(mixedArray(mix), qt.IsTrue)

	c.Assert(allTables(NewArray()), qt.IsFalse)
}
