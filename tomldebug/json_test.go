// Copyright (c) 2024 The toml Authors
// See LICENSE for licensing information

package tomldebug_test

import (
	"bytes"
	"testing"

	qt "github.com/frankban/quicktest"

	"mvdan.cc/toml"
	"mvdan.cc/toml/tomldebug"
)

func TestRoundtrip(t *testing.T) {
	c := qt.New(t)

	root, err := toml.ParseString(`
title = "example"
nums = [1, 2, 3]

[owner]
name = "tom"
dob = 1979-05-27T07:32:00Z
`)
	c.Assert(err, qt.IsNil)

	var buf bytes.Buffer
	c.Assert(tomldebug.Encode(&buf, root), qt.IsNil)

	got, err := tomldebug.Decode(&buf)
	c.Assert(err, qt.IsNil)
	c.Assert(toml.Equal(root, got), qt.IsTrue)
}

func TestDecodeRejectsNonTableRoot(t *testing.T) {
	c := qt.New(t)
	_, err := tomldebug.Decode(bytes.NewReader([]byte(`{"type":"integer","int":"1"}`)))
	c.Assert(err, qt.Not(qt.IsNil))
}
