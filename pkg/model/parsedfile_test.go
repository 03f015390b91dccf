package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsedFile_Line(t *testing.T) {
	pf := &ParsedFile{
		LineOffsets: []int{0, 5, 12, 20},
	}

	tests := []struct {
		offset int
		want   int
	}{
		{0, 1},
		{4, 1},
		{5, 2},
		{11, 2},
		{12, 3},
		{25, 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, pf.Line(tt.offset), "Line(%d)", tt.offset)
	}
}

func TestParsedFile_FindDeclaration(t *testing.T) {
	pf := &ParsedFile{
		Declarations: []Declaration{
			{Name: "HandleRequest", Kind: KindFunction},
			{Name: "Widget", Kind: KindInterface},
		},
	}

	require.NotNil(t, pf.FindDeclaration("HandleRequest", KindFunction))

	// A request for KindType matches interface/enum/type-shaped kinds too.
	require.NotNil(t, pf.FindDeclaration("Widget", KindType), "expected KindType to match an interface declaration")

	assert.Nil(t, pf.FindDeclaration("Missing", KindFunction))
}
