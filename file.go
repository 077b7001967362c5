// Copyright (c) 2024 The toml Authors
// See LICENSE for licensing information

package toml

import (
	"os"

	maybeio "github.com/google/renameio/v2/maybe"
)

// DecodeFile reads and parses the TOML document at path.
func DecodeFile(path string, opts ...Option) (*Table, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(src, opts...)
}

// EncodeFile serializes root and writes it to path. The write is atomic:
// the new content lands via a temp-file-then-rename, so a reader never
// observes a partially written file, and a crash mid-write leaves the
// previous content intact. This mirrors shfmt's own formatted-file write
// path (cmd/shfmt/main.go), grounded on the same dependency.
func EncodeFile(path string, root *Table, perm os.FileMode, opts ...Option) error {
	out, err := Marshal(root, opts...)
	if err != nil {
		return err
	}
	return maybeio.WriteFile(path, out, perm)
}
