package langs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowcheck/hollowcheck/pkg/model"
)

func TestClassifyTodoText(t *testing.T) {
	tests := []struct {
		comment    string
		wantMarker string
		wantHollow bool
	}{
		{"// TODO: implement this", "TODO", true},
		{"// TODO", "TODO", true},
		{"// TODO:", "TODO", true},
		{"// TODO: implement rate limiting per RFC-6585", "TODO", false},
		{"// FIXME: race condition in the connection pool teardown", "FIXME", false},
		{"// HACK add something here", "HACK", true},
		{"# XXX fix later", "XXX", true},
		{"/* TODO: see issue #123 for context */", "TODO", false},
		{"// just a regular comment", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.comment, func(t *testing.T) {
			marker, hollow := classifyTodoText(tt.comment)
			assert.Equal(t, tt.wantMarker, marker)
			assert.Equal(t, tt.wantHollow, hollow)
		})
	}
}

func TestExtractTodos(t *testing.T) {
	src := []byte("package main\n\n// TODO: implement this\nfunc f() {}\n")
	pf := &model.ParsedFile{Source: src, LineOffsets: lineOffsets(src)}
	extractTodos(pf)

	require.Len(t, pf.Todos, 1)
	assert.True(t, pf.Todos[0].IsHollow, "expected hollow TODO")
	assert.Equal(t, 3, pf.Todos[0].Line)
}
