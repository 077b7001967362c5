// Copyright (c) 2024 The toml Authors
// See LICENSE for licensing information

package toml

import (
	"testing"

	"github.com/rogpeppe/go-internal/diff"
)

// assertTOMLEqual fails t with a unified diff when got and want differ,
// rather than dumping both strings in full. Grounded on cmd/shfmt's use of
// go-internal/diff to report formatting mismatches.
func assertTOMLEqual(t *testing.T, got, want string) {
	t.Helper()
	if got == want {
		return
	}
	d := diff.Diff("want", []byte(want), "got", []byte(got))
	t.Fatalf("TOML output mismatch:\n%s", d)
}
