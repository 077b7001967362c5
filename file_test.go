// Copyright (c) 2024 The toml Authors
// See LICENSE for licensing information

package toml

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestEncodeDecodeFileRoundTrip(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	root := NewTable()
	root.Set("name", String("tom"))
	root.Set("age", NewInteger(37))

	err := EncodeFile(path, root, 0o644)
	c.Assert(err, qt.IsNil)

	got, err := DecodeFile(path)
	c.Assert(err, qt.IsNil)
	c.Assert(Equal(root, got), qt.IsTrue)
}

func TestDecodeFileMissing(t *testing.T) {
	c := qt.New(t)
	_, err := DecodeFile(filepath.Join(t.TempDir(), "missing.toml"))
	c.Assert(err, qt.Not(qt.IsNil))
	c.Assert(os.IsNotExist(err), qt.IsTrue)
}
