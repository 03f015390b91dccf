package facts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowcheck/hollowcheck/pkg/model"
)

func sampleFiles() []*model.ParsedFile {
	return []*model.ParsedFile{
		{
			RelPath: "b.go",
			Declarations: []model.Declaration{
				{Name: "Beta", Kind: model.KindFunction, Complexity: 1},
			},
		},
		{
			RelPath: "a.go",
			Declarations: []model.Declaration{
				{Name: "Alpha", Kind: model.KindFunction, Complexity: 3},
			},
			Todos: []model.Todo{{Text: "TODO: implement this", Line: 2, IsHollow: true}},
		},
	}
}

func TestStore_OrderedByPath(t *testing.T) {
	s := New(sampleFiles(), nil)
	files := s.Files()
	require.Len(t, files, 2)
	assert.Equal(t, "a.go", files[0].RelPath)
	assert.Equal(t, "b.go", files[1].RelPath)
}

func TestStore_FindDeclaration(t *testing.T) {
	s := New(sampleFiles(), nil)

	d, file := s.FindDeclaration("Alpha", model.KindFunction, "")
	require.NotNil(t, d)
	assert.Equal(t, "a.go", file)

	d, _ = s.FindDeclaration("Alpha", model.KindFunction, "b.go")
	assert.Nil(t, d, "expected no match when scoped to wrong file")

	d, _ = s.FindDeclaration("Missing", model.KindFunction, "")
	assert.Nil(t, d, "expected no match for missing symbol")
}

func TestStore_Todos(t *testing.T) {
	s := New(sampleFiles(), nil)
	count := 0
	s.Todos(func(file *model.ParsedFile, td *model.Todo) {
		count++
		assert.Equal(t, "a.go", file.RelPath, "todo found in unexpected file")
	})
	assert.Equal(t, 1, count)
}

func TestStore_Exists(t *testing.T) {
	s := New(sampleFiles(), []string{"README.md"})
	assert.True(t, s.Exists("README.md"), "expected README.md to exist via scanned set")
	assert.True(t, s.Exists("a.go"), "expected a.go to exist via parsed files")
	assert.False(t, s.Exists("missing.md"), "did not expect missing.md to exist")
}

func TestStore_ParseWarnings(t *testing.T) {
	files := sampleFiles()
	files[0].ParseWarning = "partial parse"
	s := New(files, nil)
	warnings := s.ParseWarnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, 0, warnings[0].Points, "parse warning should carry 0 points")
}
