package depverify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	cases := []struct {
		language, raw, want string
	}{
		{"python", "os.path", "os"},
		{"python", "requests", "requests"},
		{"python", "..sibling.mod", "sibling"},
		{"javascript", "@scope/pkg/sub", "@scope/pkg"},
		{"javascript", "lodash/fp", "lodash"},
		{"typescript", "express", "express"},
		{"go", "github.com/foo/bar/baz", "github.com/foo/bar"},
		{"go", "github.com/foo/bar", "github.com/foo/bar"},
		{"rust", "serde::Deserialize", "serde"},
		{"rust", "tokio", "tokio"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Canonicalize(c.language, c.raw), "Canonicalize(%q, %q)", c.language, c.raw)
	}
}

func TestIsStdlib(t *testing.T) {
	cases := []struct {
		language, name, crate string
		want                  bool
	}{
		{"python", "os", "", true},
		{"python", "collections", "", true},
		{"python", "requests", "", false},
		{"javascript", "fs", "", true},
		{"javascript", "node:fs", "", true},
		{"javascript", "lodash", "", false},
		{"go", "fmt", "", true},
		{"go", "github.com/foo/bar", "", false},
		{"rust", "std", "", true},
		{"rust", "mycrate", "mycrate", true},
		{"rust", "serde", "mycrate", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsStdlib(c.language, c.name, c.crate), "IsStdlib(%q, %q, %q)", c.language, c.name, c.crate)
	}
}
