// Copyright (c) 2024 The toml Authors
// See LICENSE for licensing information

package toml

import (
	"math"
	"math/big"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestParseNumberIntegers(t *testing.T) {
	c := qt.New(t)
	tests := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"42", 42},
		{"+42", 42},
		{"-17", -17},
		{"1_000_000", 1000000},
		{"0xDEAD_BEEF", 0xDEADBEEF},
		{"0o755", 0o755},
		{"0b1101_0110", 0xD6},
	}
	for _, tc := range tests {
		v, kind := parseNumber(tc.in)
		c.Assert(kind, qt.Equals, ErrorKind(0), qt.Commentf("input %q", tc.in))
		iv, ok := v.(Integer)
		c.Assert(ok, qt.IsTrue, qt.Commentf("input %q produced %T", tc.in, v))
		got, fits := iv.Int64()
		c.Assert(fits, qt.IsTrue)
		c.Assert(got, qt.Equals, tc.want, qt.Commentf("input %q", tc.in))
	}
}

func TestParseNumberBigInteger(t *testing.T) {
	c := qt.New(t)
	v, kind := parseNumber("99999999999999999999999999999999")
	c.Assert(kind, qt.Equals, ErrorKind(0))
	iv, ok := v.(Integer)
	c.Assert(ok, qt.IsTrue)
	c.Assert(iv.Wide(), qt.IsTrue)
	want, _ := new(big.Int).SetString("99999999999999999999999999999999", 10)
	c.Assert(iv.BigInt().Cmp(want), qt.Equals, 0)
}

func TestParseNumberRejectsLeadingZero(t *testing.T) {
	c := qt.New(t)
	_, kind := parseNumber("007")
	c.Assert(kind, qt.Equals, InvalidNumber)
}

func TestParseNumberRejectsNegativeHex(t *testing.T) {
	c := qt.New(t)
	_, kind := parseNumber("-0xFF")
	c.Assert(kind, qt.Equals, InvalidNumber)
}

func TestParseNumberRejectsPositiveHex(t *testing.T) {
	c := qt.New(t)
	for _, in := range []string{"+0x1F", "+0o755", "+0b101"} {
		_, kind := parseNumber(in)
		c.Assert(kind, qt.Equals, InvalidNumber, qt.Commentf("input %q", in))
	}
}

func TestParseNumberFloats(t *testing.T) {
	c := qt.New(t)
	tests := []struct {
		in   string
		want float64
	}{
		{"3.14", 3.14},
		{"-0.5", -0.5},
		{"1e10", 1e10},
		{"1E+10", 1e10},
		{"6.626e-34", 6.626e-34},
		{"1_000.5", 1000.5},
	}
	for _, tc := range tests {
		v, kind := parseNumber(tc.in)
		c.Assert(kind, qt.Equals, ErrorKind(0), qt.Commentf("input %q", tc.in))
		fv, ok := v.(Float)
		c.Assert(ok, qt.IsTrue)
		c.Assert(float64(fv), qt.Equals, tc.want)
	}
}

func TestParseNumberSpecialFloats(t *testing.T) {
	c := qt.New(t)
	v, kind := parseNumber("inf")
	c.Assert(kind, qt.Equals, ErrorKind(0))
	c.Assert(math.IsInf(float64(v.(Float)), 1), qt.IsTrue)

	v, kind = parseNumber("-inf")
	c.Assert(kind, qt.Equals, ErrorKind(0))
	c.Assert(math.IsInf(float64(v.(Float)), -1), qt.IsTrue)

	v, kind = parseNumber("nan")
	c.Assert(kind, qt.Equals, ErrorKind(0))
	c.Assert(math.IsNaN(float64(v.(Float))), qt.IsTrue)
}

func TestStripUnderscoresRejectsBadPlacement(t *testing.T) {
	c := qt.New(t)
	_, ok := stripUnderscores("_1", isDecDigit)
	c.Assert(ok, qt.IsFalse)
	_, ok = stripUnderscores("1_", isDecDigit)
	c.Assert(ok, qt.IsFalse)
	_, ok = stripUnderscores("1__2", isDecDigit)
	c.Assert(ok, qt.IsFalse)
	got, ok := stripUnderscores("1_2_3", isDecDigit)
	c.Assert(ok, qt.IsTrue)
	c.Assert(got, qt.Equals, "123")
}

func TestIntegerCmp(t *testing.T) {
	c := qt.New(t)
	a := NewInteger(10)
	b := NewInteger(20)
	c.Assert(a.Cmp(b), qt.Equals, -1)
	c.Assert(b.Cmp(a), qt.Equals, 1)
	c.Assert(a.Cmp(a), qt.Equals, 0)

	big1 := NewBigInteger(big.NewInt(10))
	c.Assert(big1.Wide(), qt.IsFalse) // fits in int64, stays small
	c.Assert(a.Cmp(big1), qt.Equals, 0)
}
